package forum

import "github.com/jackyeh168/qa_forum/src/internal/domain/shared"

// ===========================
// 預定義錯誤
// ===========================

// 錯誤代碼沿用 shared 的分類，errors.Is 以代碼判斷：
//   errors.Is(ErrQuestionNotFound, shared.ErrResourceNotFound) == true

// ID 相關錯誤
var (
	ErrInvalidQuestionID = &shared.DomainError{
		Code:    shared.ErrCodeInvalidID,
		Message: "無效的問題 ID",
	}

	ErrInvalidAnswerID = &shared.DomainError{
		Code:    shared.ErrCodeInvalidID,
		Message: "無效的回答 ID",
	}

	ErrInvalidAuthorID = &shared.DomainError{
		Code:    shared.ErrCodeInvalidID,
		Message: "無效的作者 ID",
	}

	ErrInvalidCommentID = &shared.DomainError{
		Code:    shared.ErrCodeInvalidID,
		Message: "無效的評論 ID",
	}

	ErrInvalidAttachmentID = &shared.DomainError{
		Code:    shared.ErrCodeInvalidID,
		Message: "無效的附件 ID",
	}
)

// 內容驗證錯誤
var (
	ErrEmptyTitle = &shared.DomainError{
		Code:    shared.ErrCodeInvalidArgument,
		Message: "問題標題不能為空",
	}

	ErrEmptyContent = &shared.DomainError{
		Code:    shared.ErrCodeInvalidArgument,
		Message: "內容不能為空",
	}
)

// 查找錯誤（Repository 返回）
var (
	ErrQuestionNotFound = &shared.DomainError{
		Code:    shared.ErrCodeResourceNotFound,
		Message: "question not found",
	}

	ErrAnswerNotFound = &shared.DomainError{
		Code:    shared.ErrCodeResourceNotFound,
		Message: "answer not found",
	}

	ErrQuestionCommentNotFound = &shared.DomainError{
		Code:    shared.ErrCodeResourceNotFound,
		Message: "question comment not found",
	}

	ErrAnswerCommentNotFound = &shared.DomainError{
		Code:    shared.ErrCodeResourceNotFound,
		Message: "answer comment not found",
	}
)
