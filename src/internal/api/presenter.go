package api

import (
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
)

// ===========================
// 回應 DTO（領域物件 → JSON）
// ===========================

// QuestionDTO 問題
type QuestionDTO struct {
	ID            string     `json:"id"`
	AuthorID      string     `json:"author_id"`
	BestAnswerID  string     `json:"best_answer_id,omitempty"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Slug          string     `json:"slug"`
	AttachmentIDs []string   `json:"attachment_ids"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// AnswerDTO 回答
type AnswerDTO struct {
	ID            string     `json:"id"`
	AuthorID      string     `json:"author_id"`
	QuestionID    string     `json:"question_id"`
	Content       string     `json:"content"`
	AttachmentIDs []string   `json:"attachment_ids"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// CommentDTO 問題或回答的評論（只填其中一個父 ID）
type CommentDTO struct {
	ID         string     `json:"id"`
	AuthorID   string     `json:"author_id"`
	QuestionID string     `json:"question_id,omitempty"`
	AnswerID   string     `json:"answer_id,omitempty"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// NotificationDTO 通知
type NotificationDTO struct {
	ID          string     `json:"id"`
	RecipientID string     `json:"recipient_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func presentQuestion(q *forum.Question) QuestionDTO {
	attachmentIDs := []string{}
	for _, a := range q.Attachments().GetItems() {
		attachmentIDs = append(attachmentIDs, a.AttachmentID().String())
	}
	dto := QuestionDTO{
		ID:            q.ID().String(),
		AuthorID:      q.AuthorID().String(),
		Title:         q.Title(),
		Content:       q.Content(),
		Slug:          q.Slug().String(),
		AttachmentIDs: attachmentIDs,
		CreatedAt:     q.CreatedAt(),
		UpdatedAt:     q.UpdatedAt(),
	}
	if q.HasBestAnswer() {
		dto.BestAnswerID = q.BestAnswerID().String()
	}
	return dto
}

func presentQuestions(questions []*forum.Question) []QuestionDTO {
	dtos := make([]QuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, presentQuestion(q))
	}
	return dtos
}

func presentAnswer(a *forum.Answer) AnswerDTO {
	attachmentIDs := []string{}
	for _, item := range a.Attachments().GetItems() {
		attachmentIDs = append(attachmentIDs, item.AttachmentID().String())
	}
	return AnswerDTO{
		ID:            a.ID().String(),
		AuthorID:      a.AuthorID().String(),
		QuestionID:    a.QuestionID().String(),
		Content:       a.Content(),
		AttachmentIDs: attachmentIDs,
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func presentAnswers(answers []*forum.Answer) []AnswerDTO {
	dtos := make([]AnswerDTO, 0, len(answers))
	for _, a := range answers {
		dtos = append(dtos, presentAnswer(a))
	}
	return dtos
}

func presentQuestionComment(c *forum.QuestionComment) CommentDTO {
	return CommentDTO{
		ID:         c.ID().String(),
		AuthorID:   c.AuthorID().String(),
		QuestionID: c.QuestionID().String(),
		Content:    c.Content(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

func presentQuestionComments(comments []*forum.QuestionComment) []CommentDTO {
	dtos := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, presentQuestionComment(c))
	}
	return dtos
}

func presentAnswerComment(c *forum.AnswerComment) CommentDTO {
	return CommentDTO{
		ID:        c.ID().String(),
		AuthorID:  c.AuthorID().String(),
		AnswerID:  c.AnswerID().String(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func presentAnswerComments(comments []*forum.AnswerComment) []CommentDTO {
	dtos := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, presentAnswerComment(c))
	}
	return dtos
}

func presentNotification(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().String(),
		RecipientID: n.RecipientID().String(),
		Title:       n.Title(),
		Content:     n.Content(),
		ReadAt:      n.ReadAt(),
		CreatedAt:   n.CreatedAt(),
	}
}
