package forum

import (
	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM QuestionRepository 實作
// ===========================

// GORMQuestionRepository GORM 實作的問題倉儲
//
// 職責：
// - Domain ↔ GORM 轉換與錯誤映射
// - 透過附件倉儲持久化 WatchedList 的差異
// - 寫入成功後派發問題的領域事件
type GORMQuestionRepository struct {
	baseRepository
	attachmentRepo forum.QuestionAttachmentRepository
}

// NewQuestionRepository 創建問題倉儲
func NewQuestionRepository(db *gorm.DB, bus *shared.DomainEventBus, attachmentRepo forum.QuestionAttachmentRepository) *GORMQuestionRepository {
	return &GORMQuestionRepository{
		baseRepository: baseRepository{db: db, bus: bus},
		attachmentRepo: attachmentRepo,
	}
}

// Create 新增問題與其附件
func (r *GORMQuestionRepository) Create(ctx shared.TransactionContext, question *forum.Question) error {
	if err := r.getDB(ctx).Create(toQuestionGORM(question)).Error; err != nil {
		return repositoryError(err)
	}

	if err := r.attachmentRepo.CreateMany(ctx, question.Attachments().GetItems()); err != nil {
		return err
	}

	return r.dispatch(ctx, question)
}

// FindByID 根據 ID 查找問題（不載入附件）
func (r *GORMQuestionRepository) FindByID(ctx shared.TransactionContext, id forum.QuestionID) (*forum.Question, error) {
	var model QuestionGORM
	if err := r.getDB(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		return nil, mapError(err, forum.ErrQuestionNotFound, "question_id", id.String())
	}
	return model.toDomain(nil)
}

// FindBySlug 根據 slug 查找問題（slug 重複時取最早建立的一筆）
func (r *GORMQuestionRepository) FindBySlug(ctx shared.TransactionContext, slug forum.Slug) (*forum.Question, error) {
	var model QuestionGORM
	err := r.getDB(ctx).
		Where("slug = ?", slug.String()).
		Order("created_at ASC").
		Order("id").
		First(&model).Error
	if err != nil {
		return nil, mapError(err, forum.ErrQuestionNotFound, "slug", slug.String())
	}
	return model.toDomain(nil)
}

// FindManyRecent 依建立時間由新到舊分頁
func (r *GORMQuestionRepository) FindManyRecent(ctx shared.TransactionContext, params shared.PaginationParams) ([]*forum.Question, error) {
	var models []QuestionGORM
	err := r.getDB(ctx).
		Order("created_at DESC").
		Order("id").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&models).Error
	if err != nil {
		return nil, repositoryError(err)
	}

	questions := make([]*forum.Question, 0, len(models))
	for i := range models {
		q, err := models[i].toDomain(nil)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Save 更新問題並套用附件差異
//
// 不檢查 RowsAffected：MySQL 對值未改變的列回報 0。
func (r *GORMQuestionRepository) Save(ctx shared.TransactionContext, question *forum.Question) error {
	model := toQuestionGORM(question)
	err := r.getDB(ctx).
		Model(&QuestionGORM{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":          model.Title,
			"content":        model.Content,
			"slug":           model.Slug,
			"best_answer_id": model.BestAnswerID,
			"updated_at":     model.UpdatedAt,
		}).Error
	if err != nil {
		return repositoryError(err)
	}

	attachments := question.Attachments()
	if err := r.attachmentRepo.CreateMany(ctx, attachments.GetNewItems()); err != nil {
		return err
	}
	if err := r.attachmentRepo.DeleteMany(ctx, attachments.GetRemovedItems()); err != nil {
		return err
	}

	return r.dispatch(ctx, question)
}

// Delete 刪除問題與其所有附件關聯
func (r *GORMQuestionRepository) Delete(ctx shared.TransactionContext, question *forum.Question) error {
	if err := r.attachmentRepo.DeleteManyByQuestionID(ctx, question.ID()); err != nil {
		return err
	}
	if err := r.getDB(ctx).Where("id = ?", question.ID().String()).Delete(&QuestionGORM{}).Error; err != nil {
		return repositoryError(err)
	}
	return nil
}
