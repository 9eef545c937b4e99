package forum

import (
	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// QuestionAttachmentRepository
// ===========================

// GORMQuestionAttachmentRepository 問題附件關聯倉儲
type GORMQuestionAttachmentRepository struct {
	baseRepository
}

// NewQuestionAttachmentRepository 創建倉儲實例
func NewQuestionAttachmentRepository(db *gorm.DB) *GORMQuestionAttachmentRepository {
	return &GORMQuestionAttachmentRepository{baseRepository{db: db}}
}

// CreateMany 批次新增關聯（空切片為 no-op）
func (r *GORMQuestionAttachmentRepository) CreateMany(ctx shared.TransactionContext, attachments []*forum.QuestionAttachment) error {
	if len(attachments) == 0 {
		return nil
	}

	models := make([]*QuestionAttachmentGORM, 0, len(attachments))
	for _, a := range attachments {
		models = append(models, toQuestionAttachmentGORM(a))
	}
	if err := r.getDB(ctx).Create(&models).Error; err != nil {
		return repositoryError(err)
	}
	return nil
}

// DeleteMany 依附件 ID 刪除問題的關聯（空切片為 no-op）
func (r *GORMQuestionAttachmentRepository) DeleteMany(ctx shared.TransactionContext, attachments []*forum.QuestionAttachment) error {
	if len(attachments) == 0 {
		return nil
	}

	questionID := attachments[0].QuestionID().String()
	attachmentIDs := make([]string, 0, len(attachments))
	for _, a := range attachments {
		attachmentIDs = append(attachmentIDs, a.AttachmentID().String())
	}

	err := r.getDB(ctx).
		Where("question_id = ? AND attachment_id IN ?", questionID, attachmentIDs).
		Delete(&QuestionAttachmentGORM{}).Error
	if err != nil {
		return repositoryError(err)
	}
	return nil
}

// FindManyByQuestionID 載入問題的所有附件關聯
func (r *GORMQuestionAttachmentRepository) FindManyByQuestionID(ctx shared.TransactionContext, questionID forum.QuestionID) ([]*forum.QuestionAttachment, error) {
	var models []QuestionAttachmentGORM
	if err := r.getDB(ctx).Where("question_id = ?", questionID.String()).Order("id").Find(&models).Error; err != nil {
		return nil, repositoryError(err)
	}

	attachments := make([]*forum.QuestionAttachment, 0, len(models))
	for i := range models {
		attachments = append(attachments, models[i].toDomain())
	}
	return attachments, nil
}

// DeleteManyByQuestionID 刪除問題的所有附件關聯
func (r *GORMQuestionAttachmentRepository) DeleteManyByQuestionID(ctx shared.TransactionContext, questionID forum.QuestionID) error {
	if err := r.getDB(ctx).Where("question_id = ?", questionID.String()).Delete(&QuestionAttachmentGORM{}).Error; err != nil {
		return repositoryError(err)
	}
	return nil
}

// ===========================
// AnswerAttachmentRepository
// ===========================

// GORMAnswerAttachmentRepository 回答附件關聯倉儲
type GORMAnswerAttachmentRepository struct {
	baseRepository
}

// NewAnswerAttachmentRepository 創建倉儲實例
func NewAnswerAttachmentRepository(db *gorm.DB) *GORMAnswerAttachmentRepository {
	return &GORMAnswerAttachmentRepository{baseRepository{db: db}}
}

func (r *GORMAnswerAttachmentRepository) CreateMany(ctx shared.TransactionContext, attachments []*forum.AnswerAttachment) error {
	if len(attachments) == 0 {
		return nil
	}

	models := make([]*AnswerAttachmentGORM, 0, len(attachments))
	for _, a := range attachments {
		models = append(models, toAnswerAttachmentGORM(a))
	}
	if err := r.getDB(ctx).Create(&models).Error; err != nil {
		return repositoryError(err)
	}
	return nil
}

func (r *GORMAnswerAttachmentRepository) DeleteMany(ctx shared.TransactionContext, attachments []*forum.AnswerAttachment) error {
	if len(attachments) == 0 {
		return nil
	}

	answerID := attachments[0].AnswerID().String()
	attachmentIDs := make([]string, 0, len(attachments))
	for _, a := range attachments {
		attachmentIDs = append(attachmentIDs, a.AttachmentID().String())
	}

	err := r.getDB(ctx).
		Where("answer_id = ? AND attachment_id IN ?", answerID, attachmentIDs).
		Delete(&AnswerAttachmentGORM{}).Error
	if err != nil {
		return repositoryError(err)
	}
	return nil
}

func (r *GORMAnswerAttachmentRepository) FindManyByAnswerID(ctx shared.TransactionContext, answerID forum.AnswerID) ([]*forum.AnswerAttachment, error) {
	var models []AnswerAttachmentGORM
	if err := r.getDB(ctx).Where("answer_id = ?", answerID.String()).Order("id").Find(&models).Error; err != nil {
		return nil, repositoryError(err)
	}

	attachments := make([]*forum.AnswerAttachment, 0, len(models))
	for i := range models {
		attachments = append(attachments, models[i].toDomain())
	}
	return attachments, nil
}

func (r *GORMAnswerAttachmentRepository) DeleteManyByAnswerID(ctx shared.TransactionContext, answerID forum.AnswerID) error {
	if err := r.getDB(ctx).Where("answer_id = ?", answerID.String()).Delete(&AnswerAttachmentGORM{}).Error; err != nil {
		return repositoryError(err)
	}
	return nil
}
