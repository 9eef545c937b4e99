package forum

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// 論壇領域事件
// ===========================
//
// 事件攜帶建立當下的值快照，不持有聚合指標；
// 之後對聚合的修改不會反映到已建立的事件。

// AnswerCreatedEvent 新回答建立事件
type AnswerCreatedEvent struct {
	eventID    string
	occurredAt time.Time
	answerID   AnswerID
	questionID QuestionID
	authorID   AuthorID
	content    string
	excerpt    string
}

// NewAnswerCreatedEvent 創建新回答事件
func NewAnswerCreatedEvent(answer *Answer) *AnswerCreatedEvent {
	return &AnswerCreatedEvent{
		eventID:    uuid.New().String(),
		occurredAt: time.Now(),
		answerID:   answer.ID(),
		questionID: answer.QuestionID(),
		authorID:   answer.AuthorID(),
		content:    answer.Content(),
		excerpt:    answer.Excerpt(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *AnswerCreatedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *AnswerCreatedEvent) EventType() shared.EventKind {
	return shared.EventKindAnswerCreated
}

// OccurredAt 實現 DomainEvent 介面
func (e *AnswerCreatedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *AnswerCreatedEvent) AggregateID() string {
	return e.answerID.String()
}

func (e *AnswerCreatedEvent) AnswerID() AnswerID     { return e.answerID }
func (e *AnswerCreatedEvent) QuestionID() QuestionID { return e.questionID }
func (e *AnswerCreatedEvent) AuthorID() AuthorID     { return e.authorID }
func (e *AnswerCreatedEvent) Content() string        { return e.content }
func (e *AnswerCreatedEvent) Excerpt() string        { return e.excerpt }

// AnswerCommentCreatedEvent 回答收到新評論事件
type AnswerCommentCreatedEvent struct {
	eventID    string
	occurredAt time.Time
	commentID  AnswerCommentID
	answerID   AnswerID
	authorID   AuthorID
	content    string
}

// NewAnswerCommentCreatedEvent 創建回答評論事件
func NewAnswerCommentCreatedEvent(comment *AnswerComment) *AnswerCommentCreatedEvent {
	return &AnswerCommentCreatedEvent{
		eventID:    uuid.New().String(),
		occurredAt: time.Now(),
		commentID:  comment.ID(),
		answerID:   comment.AnswerID(),
		authorID:   comment.AuthorID(),
		content:    comment.Content(),
	}
}

func (e *AnswerCommentCreatedEvent) EventID() string { return e.eventID }

func (e *AnswerCommentCreatedEvent) EventType() shared.EventKind {
	return shared.EventKindAnswerCommentCreated
}

func (e *AnswerCommentCreatedEvent) OccurredAt() time.Time { return e.occurredAt }

// AggregateID 評論本身是產生事件的聚合
func (e *AnswerCommentCreatedEvent) AggregateID() string {
	return e.commentID.String()
}

func (e *AnswerCommentCreatedEvent) CommentID() AnswerCommentID { return e.commentID }
func (e *AnswerCommentCreatedEvent) AnswerID() AnswerID         { return e.answerID }
func (e *AnswerCommentCreatedEvent) AuthorID() AuthorID         { return e.authorID }
func (e *AnswerCommentCreatedEvent) Content() string            { return e.content }

// QuestionCommentCreatedEvent 問題收到新評論事件
type QuestionCommentCreatedEvent struct {
	eventID    string
	occurredAt time.Time
	commentID  QuestionCommentID
	questionID QuestionID
	authorID   AuthorID
	content    string
}

// NewQuestionCommentCreatedEvent 創建問題評論事件
func NewQuestionCommentCreatedEvent(comment *QuestionComment) *QuestionCommentCreatedEvent {
	return &QuestionCommentCreatedEvent{
		eventID:    uuid.New().String(),
		occurredAt: time.Now(),
		commentID:  comment.ID(),
		questionID: comment.QuestionID(),
		authorID:   comment.AuthorID(),
		content:    comment.Content(),
	}
}

func (e *QuestionCommentCreatedEvent) EventID() string { return e.eventID }

func (e *QuestionCommentCreatedEvent) EventType() shared.EventKind {
	return shared.EventKindQuestionCommentCreated
}

func (e *QuestionCommentCreatedEvent) OccurredAt() time.Time { return e.occurredAt }

func (e *QuestionCommentCreatedEvent) AggregateID() string {
	return e.commentID.String()
}

func (e *QuestionCommentCreatedEvent) CommentID() QuestionCommentID { return e.commentID }
func (e *QuestionCommentCreatedEvent) QuestionID() QuestionID       { return e.questionID }
func (e *QuestionCommentCreatedEvent) AuthorID() AuthorID           { return e.authorID }
func (e *QuestionCommentCreatedEvent) Content() string              { return e.content }

// QuestionBestAnswerChosenEvent 問題作者選出最佳回答事件
type QuestionBestAnswerChosenEvent struct {
	eventID          string
	occurredAt       time.Time
	questionID       QuestionID
	questionAuthorID AuthorID
	questionTitle    string
	bestAnswerID     AnswerID
}

// NewQuestionBestAnswerChosenEvent 創建最佳回答事件
func NewQuestionBestAnswerChosenEvent(question *Question, bestAnswerID AnswerID) *QuestionBestAnswerChosenEvent {
	return &QuestionBestAnswerChosenEvent{
		eventID:          uuid.New().String(),
		occurredAt:       time.Now(),
		questionID:       question.ID(),
		questionAuthorID: question.AuthorID(),
		questionTitle:    question.Title(),
		bestAnswerID:     bestAnswerID,
	}
}

func (e *QuestionBestAnswerChosenEvent) EventID() string { return e.eventID }

func (e *QuestionBestAnswerChosenEvent) EventType() shared.EventKind {
	return shared.EventKindQuestionBestAnswerChosen
}

func (e *QuestionBestAnswerChosenEvent) OccurredAt() time.Time { return e.occurredAt }

func (e *QuestionBestAnswerChosenEvent) AggregateID() string {
	return e.questionID.String()
}

func (e *QuestionBestAnswerChosenEvent) QuestionID() QuestionID     { return e.questionID }
func (e *QuestionBestAnswerChosenEvent) QuestionAuthorID() AuthorID { return e.questionAuthorID }
func (e *QuestionBestAnswerChosenEvent) QuestionTitle() string      { return e.questionTitle }
func (e *QuestionBestAnswerChosenEvent) BestAnswerID() AnswerID     { return e.bestAnswerID }
