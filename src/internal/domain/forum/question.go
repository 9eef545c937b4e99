package forum

import (
	"strings"
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// Question 聚合根
// ===========================

// excerptLength 摘要長度（字元）
const excerptLength = 120

// newQuestionWindow 視為「新問題」的時間範圍
const newQuestionWindow = 3 * 24 * time.Hour

// Question 問題聚合根
//
// 設計原則：
// 1. 身分與事件緩衝由嵌入的 shared.AggregateRoot 提供
// 2. slug 隨標題重新產生
// 3. 附件以 WatchedList 追蹤，Repository 保存時只套用差異
// 4. 每個 setter 更新 updatedAt
//
// 事件：
// - 選出（或更換）最佳回答時發布 QuestionBestAnswerChosenEvent
type Question struct {
	shared.AggregateRoot[QuestionMarker]

	authorID     AuthorID
	bestAnswerID AnswerID // 空值表示尚未選出
	title        string
	content      string
	slug         Slug
	attachments  *QuestionAttachmentList

	createdAt time.Time
	updatedAt *time.Time
}

// ===========================
// 建構函數（工廠方法）
// ===========================

// NewQuestion 創建新的問題
//
// 業務規則：
// - 標題與內容不能為空白
// - slug 由標題產生；標題沒有任何可用字元（例如全為中文）時改用問題 ID
// - 附件清單以空基準建立
func NewQuestion(authorID AuthorID, title, content string) (*Question, error) {
	if authorID.IsEmpty() {
		return nil, ErrInvalidAuthorID.WithContext("reason", "authorID cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	question := &Question{
		AggregateRoot: shared.NewAggregateRoot(QuestionID{}),
		authorID:      authorID,
		title:         title,
		content:       content,
		attachments:   NewQuestionAttachmentList(nil),
		createdAt:     time.Now(),
	}
	question.slug = question.slugFor(title)
	return question, nil
}

// ReconstructQuestion 從資料庫重建問題（不發布事件）
//
// attachments 為 nil 時以空清單代替
func ReconstructQuestion(
	id QuestionID,
	authorID AuthorID,
	bestAnswerID AnswerID,
	title string,
	content string,
	slug Slug,
	attachments *QuestionAttachmentList,
	createdAt time.Time,
	updatedAt *time.Time,
) *Question {
	if attachments == nil {
		attachments = NewQuestionAttachmentList(nil)
	}
	return &Question{
		AggregateRoot: shared.NewAggregateRoot(id),
		authorID:      authorID,
		bestAnswerID:  bestAnswerID,
		title:         title,
		content:       content,
		slug:          slug,
		attachments:   attachments,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ===========================
// 查詢方法（Getters）
// ===========================

func (q *Question) AuthorID() AuthorID                   { return q.authorID }
func (q *Question) BestAnswerID() AnswerID               { return q.bestAnswerID }
func (q *Question) Title() string                        { return q.title }
func (q *Question) Content() string                      { return q.content }
func (q *Question) Slug() Slug                           { return q.slug }
func (q *Question) Attachments() *QuestionAttachmentList { return q.attachments }
func (q *Question) CreatedAt() time.Time                 { return q.createdAt }
func (q *Question) UpdatedAt() *time.Time                { return q.updatedAt }

// HasBestAnswer 是否已選出最佳回答
func (q *Question) HasBestAnswer() bool {
	return !q.bestAnswerID.IsEmpty()
}

// IsAuthoredBy 判斷問題作者
func (q *Question) IsAuthoredBy(authorID AuthorID) bool {
	return q.authorID.Equals(authorID)
}

// IsNew 建立三天內的問題
func (q *Question) IsNew() bool {
	return time.Since(q.createdAt) <= newQuestionWindow
}

// Excerpt 內容摘要（前 120 字元 + "..."）
func (q *Question) Excerpt() string {
	return shared.Excerpt(q.content, excerptLength)
}

// ===========================
// 修改方法
// ===========================

// SetTitle 修改標題並重新產生 slug
func (q *Question) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	q.title = title
	q.slug = q.slugFor(title)
	q.touch()
	return nil
}

// SetContent 修改內容
func (q *Question) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	q.content = content
	q.touch()
	return nil
}

// SetAttachments 替換附件清單
func (q *Question) SetAttachments(attachments *QuestionAttachmentList) {
	q.attachments = attachments
	q.touch()
}

// SetBestAnswerID 選出最佳回答
//
// 新的最佳回答與目前不同時發布 QuestionBestAnswerChosenEvent；
// 重複選擇同一回答不發布事件。
func (q *Question) SetBestAnswerID(answerID AnswerID) {
	if !answerID.IsEmpty() && !answerID.Equals(q.bestAnswerID) {
		q.AddDomainEvent(NewQuestionBestAnswerChosenEvent(q, answerID))
	}
	q.bestAnswerID = answerID
	q.touch()
}

// slugFor 由標題產生 slug，結果為空時退回問題 ID
func (q *Question) slugFor(title string) Slug {
	slug := NewSlugFromText(title)
	if slug.IsEmpty() {
		return SlugFromString(q.ID().String())
	}
	return slug
}

func (q *Question) touch() {
	now := time.Now()
	q.updatedAt = &now
}
