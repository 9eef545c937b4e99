package forum

import (
	"strings"
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// 評論共用元件
// ===========================

// comment 問題評論與回答評論共用的屬性
type comment struct {
	authorID  AuthorID
	content   string
	createdAt time.Time
	updatedAt *time.Time
}

func newComment(authorID AuthorID, content string) (comment, error) {
	if authorID.IsEmpty() {
		return comment{}, ErrInvalidAuthorID.WithContext("reason", "authorID cannot be empty")
	}
	if strings.TrimSpace(content) == "" {
		return comment{}, ErrEmptyContent
	}
	return comment{authorID: authorID, content: content, createdAt: time.Now()}, nil
}

func (c *comment) AuthorID() AuthorID    { return c.authorID }
func (c *comment) Content() string       { return c.content }
func (c *comment) CreatedAt() time.Time  { return c.createdAt }
func (c *comment) UpdatedAt() *time.Time { return c.updatedAt }

// IsAuthoredBy 判斷評論作者
func (c *comment) IsAuthoredBy(authorID AuthorID) bool {
	return c.authorID.Equals(authorID)
}

// SetContent 修改評論內容
func (c *comment) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	c.content = content
	now := time.Now()
	c.updatedAt = &now
	return nil
}

// ===========================
// QuestionComment 聚合根
// ===========================

// QuestionComment 問題評論
//
// 新建立的評論發布 QuestionCommentCreatedEvent
type QuestionComment struct {
	shared.AggregateRoot[QuestionCommentMarker]
	comment
	questionID QuestionID
}

// NewQuestionComment 創建問題評論
func NewQuestionComment(authorID AuthorID, questionID QuestionID, content string) (*QuestionComment, error) {
	if questionID.IsEmpty() {
		return nil, ErrInvalidQuestionID.WithContext("reason", "questionID cannot be empty")
	}
	body, err := newComment(authorID, content)
	if err != nil {
		return nil, err
	}

	qc := &QuestionComment{
		AggregateRoot: shared.NewAggregateRoot(QuestionCommentID{}),
		comment:       body,
		questionID:    questionID,
	}
	qc.AddDomainEvent(NewQuestionCommentCreatedEvent(qc))
	return qc, nil
}

// ReconstructQuestionComment 從資料庫重建（不發布事件）
func ReconstructQuestionComment(
	id QuestionCommentID,
	authorID AuthorID,
	questionID QuestionID,
	content string,
	createdAt time.Time,
	updatedAt *time.Time,
) *QuestionComment {
	return &QuestionComment{
		AggregateRoot: shared.NewAggregateRoot(id),
		comment: comment{
			authorID:  authorID,
			content:   content,
			createdAt: createdAt,
			updatedAt: updatedAt,
		},
		questionID: questionID,
	}
}

func (c *QuestionComment) QuestionID() QuestionID { return c.questionID }

// ===========================
// AnswerComment 聚合根
// ===========================

// AnswerComment 回答評論
//
// 新建立的評論發布 AnswerCommentCreatedEvent
type AnswerComment struct {
	shared.AggregateRoot[AnswerCommentMarker]
	comment
	answerID AnswerID
}

// NewAnswerComment 創建回答評論
func NewAnswerComment(authorID AuthorID, answerID AnswerID, content string) (*AnswerComment, error) {
	if answerID.IsEmpty() {
		return nil, ErrInvalidAnswerID.WithContext("reason", "answerID cannot be empty")
	}
	body, err := newComment(authorID, content)
	if err != nil {
		return nil, err
	}

	ac := &AnswerComment{
		AggregateRoot: shared.NewAggregateRoot(AnswerCommentID{}),
		comment:       body,
		answerID:      answerID,
	}
	ac.AddDomainEvent(NewAnswerCommentCreatedEvent(ac))
	return ac, nil
}

// ReconstructAnswerComment 從資料庫重建（不發布事件）
func ReconstructAnswerComment(
	id AnswerCommentID,
	authorID AuthorID,
	answerID AnswerID,
	content string,
	createdAt time.Time,
	updatedAt *time.Time,
) *AnswerComment {
	return &AnswerComment{
		AggregateRoot: shared.NewAggregateRoot(id),
		comment: comment{
			authorID:  authorID,
			content:   content,
			createdAt: createdAt,
			updatedAt: updatedAt,
		},
		answerID: answerID,
	}
}

func (c *AnswerComment) AnswerID() AnswerID { return c.answerID }
