package forum

import (
	"strings"
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// Answer 聚合根
// ===========================

// Answer 回答聚合根
//
// 事件：
// - 新建立的回答發布 AnswerCreatedEvent（重建時不發布）
type Answer struct {
	shared.AggregateRoot[AnswerMarker]

	authorID    AuthorID
	questionID  QuestionID
	content     string
	attachments *AnswerAttachmentList

	createdAt time.Time
	updatedAt *time.Time
}

// NewAnswer 創建新的回答並發布 AnswerCreatedEvent
func NewAnswer(authorID AuthorID, questionID QuestionID, content string) (*Answer, error) {
	if authorID.IsEmpty() {
		return nil, ErrInvalidAuthorID.WithContext("reason", "authorID cannot be empty")
	}
	if questionID.IsEmpty() {
		return nil, ErrInvalidQuestionID.WithContext("reason", "questionID cannot be empty")
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	answer := &Answer{
		AggregateRoot: shared.NewAggregateRoot(AnswerID{}),
		authorID:      authorID,
		questionID:    questionID,
		content:       content,
		attachments:   NewAnswerAttachmentList(nil),
		createdAt:     time.Now(),
	}
	answer.AddDomainEvent(NewAnswerCreatedEvent(answer))

	return answer, nil
}

// ReconstructAnswer 從資料庫重建回答（不發布事件）
func ReconstructAnswer(
	id AnswerID,
	authorID AuthorID,
	questionID QuestionID,
	content string,
	attachments *AnswerAttachmentList,
	createdAt time.Time,
	updatedAt *time.Time,
) *Answer {
	if attachments == nil {
		attachments = NewAnswerAttachmentList(nil)
	}
	return &Answer{
		AggregateRoot: shared.NewAggregateRoot(id),
		authorID:      authorID,
		questionID:    questionID,
		content:       content,
		attachments:   attachments,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (a *Answer) AuthorID() AuthorID                 { return a.authorID }
func (a *Answer) QuestionID() QuestionID             { return a.questionID }
func (a *Answer) Content() string                    { return a.content }
func (a *Answer) Attachments() *AnswerAttachmentList { return a.attachments }
func (a *Answer) CreatedAt() time.Time               { return a.createdAt }
func (a *Answer) UpdatedAt() *time.Time              { return a.updatedAt }

// IsAuthoredBy 判斷回答作者
func (a *Answer) IsAuthoredBy(authorID AuthorID) bool {
	return a.authorID.Equals(authorID)
}

// Excerpt 內容摘要（前 120 字元 + "..."）
func (a *Answer) Excerpt() string {
	return shared.Excerpt(a.content, excerptLength)
}

// SetContent 修改內容
func (a *Answer) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	a.content = content
	a.touch()
	return nil
}

// SetAttachments 替換附件清單
func (a *Answer) SetAttachments(attachments *AnswerAttachmentList) {
	a.attachments = attachments
	a.touch()
}

func (a *Answer) touch() {
	now := time.Now()
	a.updatedAt = &now
}
