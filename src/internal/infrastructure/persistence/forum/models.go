package forum

import (
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM Models
// ===========================

// 設計原則：
// - 僅用於 Infrastructure Layer（不暴露給 Domain Layer）
// - 與 Domain 聚合分離（Mapper 轉換）
// - updated_at 由 Domain 控制（只在編輯時設定），關閉 GORM 自動時間戳

// QuestionGORM 問題資料表模型
type QuestionGORM struct {
	ID           string     `gorm:"column:id;type:varchar(36);primaryKey"`
	AuthorID     string     `gorm:"column:author_id;type:varchar(64);index;not null"`
	BestAnswerID *string    `gorm:"column:best_answer_id;type:varchar(36)"` // Nullable
	Title        string     `gorm:"column:title;type:varchar(255);not null"`
	Content      string     `gorm:"column:content;type:text;not null"`
	Slug         string     `gorm:"column:slug;type:varchar(255);index;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;index;not null"`
	UpdatedAt    *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (QuestionGORM) TableName() string { return "questions" }

// AnswerGORM 回答資料表模型
type AnswerGORM struct {
	ID         string     `gorm:"column:id;type:varchar(36);primaryKey"`
	AuthorID   string     `gorm:"column:author_id;type:varchar(64);index;not null"`
	QuestionID string     `gorm:"column:question_id;type:varchar(36);index;not null"`
	Content    string     `gorm:"column:content;type:text;not null"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt  *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (AnswerGORM) TableName() string { return "answers" }

// QuestionCommentGORM 問題評論資料表模型
type QuestionCommentGORM struct {
	ID         string     `gorm:"column:id;type:varchar(36);primaryKey"`
	AuthorID   string     `gorm:"column:author_id;type:varchar(64);not null"`
	QuestionID string     `gorm:"column:question_id;type:varchar(36);index;not null"`
	Content    string     `gorm:"column:content;type:text;not null"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt  *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (QuestionCommentGORM) TableName() string { return "question_comments" }

// AnswerCommentGORM 回答評論資料表模型
type AnswerCommentGORM struct {
	ID        string     `gorm:"column:id;type:varchar(36);primaryKey"`
	AuthorID  string     `gorm:"column:author_id;type:varchar(64);not null"`
	AnswerID  string     `gorm:"column:answer_id;type:varchar(36);index;not null"`
	Content   string     `gorm:"column:content;type:text;not null"`
	CreatedAt time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (AnswerCommentGORM) TableName() string { return "answer_comments" }

// QuestionAttachmentGORM 問題與附件的關聯列
type QuestionAttachmentGORM struct {
	ID           string `gorm:"column:id;type:varchar(36);primaryKey"`
	QuestionID   string `gorm:"column:question_id;type:varchar(36);index;not null"`
	AttachmentID string `gorm:"column:attachment_id;type:varchar(64);not null"`
}

func (QuestionAttachmentGORM) TableName() string { return "question_attachments" }

// AnswerAttachmentGORM 回答與附件的關聯列
type AnswerAttachmentGORM struct {
	ID           string `gorm:"column:id;type:varchar(36);primaryKey"`
	AnswerID     string `gorm:"column:answer_id;type:varchar(36);index;not null"`
	AttachmentID string `gorm:"column:attachment_id;type:varchar(64);not null"`
}

func (AnswerAttachmentGORM) TableName() string { return "answer_attachments" }

// AutoMigrate 建立或更新論壇的所有資料表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&QuestionGORM{},
		&AnswerGORM{},
		&QuestionCommentGORM{},
		&AnswerCommentGORM{},
		&QuestionAttachmentGORM{},
		&AnswerAttachmentGORM{},
	)
}

// ===========================
// Mapper Functions
// ===========================

// toQuestionGORM 將 Domain 模型轉換為 GORM 模型（空的最佳回答 → NULL）
func toQuestionGORM(q *forum.Question) *QuestionGORM {
	var bestAnswerID *string
	if q.HasBestAnswer() {
		id := q.BestAnswerID().String()
		bestAnswerID = &id
	}

	return &QuestionGORM{
		ID:           q.ID().String(),
		AuthorID:     q.AuthorID().String(),
		BestAnswerID: bestAnswerID,
		Title:        q.Title(),
		Content:      q.Content(),
		Slug:         q.Slug().String(),
		CreatedAt:    q.CreatedAt(),
		UpdatedAt:    q.UpdatedAt(),
	}
}

// toDomain 重建問題聚合（附件清單由呼叫者另外載入）
func (m *QuestionGORM) toDomain(attachments []*forum.QuestionAttachment) (*forum.Question, error) {
	id, err := forum.QuestionIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	authorID, err := forum.AuthorIDFromString(m.AuthorID)
	if err != nil {
		return nil, err
	}

	var bestAnswerID forum.AnswerID
	if m.BestAnswerID != nil {
		bestAnswerID, err = forum.AnswerIDFromString(*m.BestAnswerID)
		if err != nil {
			return nil, err
		}
	}

	return forum.ReconstructQuestion(
		id,
		authorID,
		bestAnswerID,
		m.Title,
		m.Content,
		forum.SlugFromString(m.Slug),
		forum.NewQuestionAttachmentList(attachments),
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toAnswerGORM(a *forum.Answer) *AnswerGORM {
	return &AnswerGORM{
		ID:         a.ID().String(),
		AuthorID:   a.AuthorID().String(),
		QuestionID: a.QuestionID().String(),
		Content:    a.Content(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func (m *AnswerGORM) toDomain(attachments []*forum.AnswerAttachment) (*forum.Answer, error) {
	id, err := forum.AnswerIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	authorID, err := forum.AuthorIDFromString(m.AuthorID)
	if err != nil {
		return nil, err
	}
	questionID, err := forum.QuestionIDFromString(m.QuestionID)
	if err != nil {
		return nil, err
	}

	return forum.ReconstructAnswer(
		id,
		authorID,
		questionID,
		m.Content,
		forum.NewAnswerAttachmentList(attachments),
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toQuestionCommentGORM(c *forum.QuestionComment) *QuestionCommentGORM {
	return &QuestionCommentGORM{
		ID:         c.ID().String(),
		AuthorID:   c.AuthorID().String(),
		QuestionID: c.QuestionID().String(),
		Content:    c.Content(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

func (m *QuestionCommentGORM) toDomain() (*forum.QuestionComment, error) {
	id, err := forum.QuestionCommentIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	authorID, err := forum.AuthorIDFromString(m.AuthorID)
	if err != nil {
		return nil, err
	}
	questionID, err := forum.QuestionIDFromString(m.QuestionID)
	if err != nil {
		return nil, err
	}
	return forum.ReconstructQuestionComment(id, authorID, questionID, m.Content, m.CreatedAt, m.UpdatedAt), nil
}

func toAnswerCommentGORM(c *forum.AnswerComment) *AnswerCommentGORM {
	return &AnswerCommentGORM{
		ID:        c.ID().String(),
		AuthorID:  c.AuthorID().String(),
		AnswerID:  c.AnswerID().String(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func (m *AnswerCommentGORM) toDomain() (*forum.AnswerComment, error) {
	id, err := forum.AnswerCommentIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	authorID, err := forum.AuthorIDFromString(m.AuthorID)
	if err != nil {
		return nil, err
	}
	answerID, err := forum.AnswerIDFromString(m.AnswerID)
	if err != nil {
		return nil, err
	}
	return forum.ReconstructAnswerComment(id, authorID, answerID, m.Content, m.CreatedAt, m.UpdatedAt), nil
}

func toQuestionAttachmentGORM(a *forum.QuestionAttachment) *QuestionAttachmentGORM {
	return &QuestionAttachmentGORM{
		ID:           a.ID().String(),
		QuestionID:   a.QuestionID().String(),
		AttachmentID: a.AttachmentID().String(),
	}
}

func (m *QuestionAttachmentGORM) toDomain() *forum.QuestionAttachment {
	return forum.ReconstructQuestionAttachment(
		shared.MustEntityID[forum.QuestionAttachmentMarker](m.ID),
		shared.MustEntityID[forum.QuestionMarker](m.QuestionID),
		shared.MustEntityID[forum.AttachmentMarker](m.AttachmentID),
	)
}

func toAnswerAttachmentGORM(a *forum.AnswerAttachment) *AnswerAttachmentGORM {
	return &AnswerAttachmentGORM{
		ID:           a.ID().String(),
		AnswerID:     a.AnswerID().String(),
		AttachmentID: a.AttachmentID().String(),
	}
}

func (m *AnswerAttachmentGORM) toDomain() *forum.AnswerAttachment {
	return forum.ReconstructAnswerAttachment(
		shared.MustEntityID[forum.AnswerAttachmentMarker](m.ID),
		shared.MustEntityID[forum.AnswerMarker](m.AnswerID),
		shared.MustEntityID[forum.AttachmentMarker](m.AttachmentID),
	)
}
