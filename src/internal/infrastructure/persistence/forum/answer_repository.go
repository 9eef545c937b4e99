package forum

import (
	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM AnswerRepository 實作
// ===========================

// GORMAnswerRepository GORM 實作的回答倉儲（附件處理同 GORMQuestionRepository）
type GORMAnswerRepository struct {
	baseRepository
	attachmentRepo forum.AnswerAttachmentRepository
}

// NewAnswerRepository 創建回答倉儲
func NewAnswerRepository(db *gorm.DB, bus *shared.DomainEventBus, attachmentRepo forum.AnswerAttachmentRepository) *GORMAnswerRepository {
	return &GORMAnswerRepository{
		baseRepository: baseRepository{db: db, bus: bus},
		attachmentRepo: attachmentRepo,
	}
}

func (r *GORMAnswerRepository) Create(ctx shared.TransactionContext, answer *forum.Answer) error {
	if err := r.getDB(ctx).Create(toAnswerGORM(answer)).Error; err != nil {
		return repositoryError(err)
	}

	if err := r.attachmentRepo.CreateMany(ctx, answer.Attachments().GetItems()); err != nil {
		return err
	}

	return r.dispatch(ctx, answer)
}

func (r *GORMAnswerRepository) FindByID(ctx shared.TransactionContext, id forum.AnswerID) (*forum.Answer, error) {
	var model AnswerGORM
	if err := r.getDB(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		return nil, mapError(err, forum.ErrAnswerNotFound, "answer_id", id.String())
	}
	return model.toDomain(nil)
}

// FindManyByQuestionID 依建立順序分頁
func (r *GORMAnswerRepository) FindManyByQuestionID(ctx shared.TransactionContext, questionID forum.QuestionID, params shared.PaginationParams) ([]*forum.Answer, error) {
	var models []AnswerGORM
	err := r.getDB(ctx).
		Where("question_id = ?", questionID.String()).
		Order("created_at ASC").
		Order("id").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&models).Error
	if err != nil {
		return nil, repositoryError(err)
	}

	answers := make([]*forum.Answer, 0, len(models))
	for i := range models {
		a, err := models[i].toDomain(nil)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (r *GORMAnswerRepository) Save(ctx shared.TransactionContext, answer *forum.Answer) error {
	model := toAnswerGORM(answer)
	err := r.getDB(ctx).
		Model(&AnswerGORM{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"content":    model.Content,
			"updated_at": model.UpdatedAt,
		}).Error
	if err != nil {
		return repositoryError(err)
	}

	attachments := answer.Attachments()
	if err := r.attachmentRepo.CreateMany(ctx, attachments.GetNewItems()); err != nil {
		return err
	}
	if err := r.attachmentRepo.DeleteMany(ctx, attachments.GetRemovedItems()); err != nil {
		return err
	}

	return r.dispatch(ctx, answer)
}

func (r *GORMAnswerRepository) Delete(ctx shared.TransactionContext, answer *forum.Answer) error {
	if err := r.attachmentRepo.DeleteManyByAnswerID(ctx, answer.ID()); err != nil {
		return err
	}
	if err := r.getDB(ctx).Where("id = ?", answer.ID().String()).Delete(&AnswerGORM{}).Error; err != nil {
		return repositoryError(err)
	}
	return nil
}
