package forum

import (
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// 實體 ID 類型定義
// ===========================

// 類型安全保證：
// - QuestionID 和 AnswerID 是不同類型（編譯器強制檢查）
// - 不能將 QuestionID 賦值給 AnswerID 變量

// ===========================
// QuestionID - 問題 ID
// ===========================

// QuestionMarker 是 QuestionID 的標記類型
type QuestionMarker struct{}

// QuestionID 問題的唯一標識符
type QuestionID = shared.EntityID[QuestionMarker]

// NewQuestionID 生成新的問題 ID
func NewQuestionID() QuestionID {
	return shared.NewEntityID[QuestionMarker]()
}

// QuestionIDFromString 從字串還原問題 ID
//
// 使用場景：
// - 從資料庫讀取 ID
// - 從 HTTP 請求解析 ID
func QuestionIDFromString(s string) (QuestionID, error) {
	return shared.EntityIDFromString[QuestionMarker](s, ErrInvalidQuestionID)
}

// ===========================
// AnswerID - 回答 ID
// ===========================

// AnswerMarker 是 AnswerID 的標記類型
type AnswerMarker struct{}

// AnswerID 回答的唯一標識符
type AnswerID = shared.EntityID[AnswerMarker]

// NewAnswerID 生成新的回答 ID
func NewAnswerID() AnswerID {
	return shared.NewEntityID[AnswerMarker]()
}

// AnswerIDFromString 從字串還原回答 ID
func AnswerIDFromString(s string) (AnswerID, error) {
	return shared.EntityIDFromString[AnswerMarker](s, ErrInvalidAnswerID)
}

// ===========================
// AuthorID - 作者 ID
// ===========================

// AuthorMarker 是 AuthorID 的標記類型
//
// 作者屬於身分系統，論壇只保存其 ID
type AuthorMarker struct{}

// AuthorID 作者的唯一標識符
type AuthorID = shared.EntityID[AuthorMarker]

// AuthorIDFromString 從字串還原作者 ID
func AuthorIDFromString(s string) (AuthorID, error) {
	return shared.EntityIDFromString[AuthorMarker](s, ErrInvalidAuthorID)
}

// ===========================
// 評論 ID
// ===========================

type QuestionCommentMarker struct{}

// QuestionCommentID 問題評論的唯一標識符
type QuestionCommentID = shared.EntityID[QuestionCommentMarker]

// QuestionCommentIDFromString 從字串還原問題評論 ID
func QuestionCommentIDFromString(s string) (QuestionCommentID, error) {
	return shared.EntityIDFromString[QuestionCommentMarker](s, ErrInvalidCommentID)
}

type AnswerCommentMarker struct{}

// AnswerCommentID 回答評論的唯一標識符
type AnswerCommentID = shared.EntityID[AnswerCommentMarker]

// AnswerCommentIDFromString 從字串還原回答評論 ID
func AnswerCommentIDFromString(s string) (AnswerCommentID, error) {
	return shared.EntityIDFromString[AnswerCommentMarker](s, ErrInvalidCommentID)
}

// ===========================
// 附件 ID
// ===========================

// AttachmentMarker 是 AttachmentID 的標記類型（上傳後的檔案）
type AttachmentMarker struct{}

type AttachmentID = shared.EntityID[AttachmentMarker]

// AttachmentIDFromString 從字串還原附件 ID
func AttachmentIDFromString(s string) (AttachmentID, error) {
	return shared.EntityIDFromString[AttachmentMarker](s, ErrInvalidAttachmentID)
}

// AttachmentIDsFromStrings 批次還原附件 ID，任一失敗即返回錯誤
func AttachmentIDsFromStrings(values []string) ([]AttachmentID, error) {
	ids := make([]AttachmentID, 0, len(values))
	for _, v := range values {
		id, err := AttachmentIDFromString(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type QuestionAttachmentMarker struct{}

// QuestionAttachmentID 問題與附件關聯列的 ID
type QuestionAttachmentID = shared.EntityID[QuestionAttachmentMarker]

type AnswerAttachmentMarker struct{}

// AnswerAttachmentID 回答與附件關聯列的 ID
type AnswerAttachmentID = shared.EntityID[AnswerAttachmentMarker]
