package forum

import (
	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// QuestionCommentRepository
// ===========================

// GORMQuestionCommentRepository 問題評論倉儲
type GORMQuestionCommentRepository struct {
	baseRepository
}

// NewQuestionCommentRepository 創建倉儲實例
func NewQuestionCommentRepository(db *gorm.DB, bus *shared.DomainEventBus) *GORMQuestionCommentRepository {
	return &GORMQuestionCommentRepository{baseRepository{db: db, bus: bus}}
}

func (r *GORMQuestionCommentRepository) Create(ctx shared.TransactionContext, comment *forum.QuestionComment) error {
	if err := r.getDB(ctx).Create(toQuestionCommentGORM(comment)).Error; err != nil {
		return repositoryError(err)
	}
	return r.dispatch(ctx, comment)
}

func (r *GORMQuestionCommentRepository) FindByID(ctx shared.TransactionContext, id forum.QuestionCommentID) (*forum.QuestionComment, error) {
	var model QuestionCommentGORM
	if err := r.getDB(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		return nil, mapError(err, forum.ErrQuestionCommentNotFound, "question_comment_id", id.String())
	}
	return model.toDomain()
}

func (r *GORMQuestionCommentRepository) FindManyByQuestionID(ctx shared.TransactionContext, questionID forum.QuestionID, params shared.PaginationParams) ([]*forum.QuestionComment, error) {
	var models []QuestionCommentGORM
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

	comments := make([]*forum.QuestionComment, 0, len(models))
	for i := range models {
		c, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *GORMQuestionCommentRepository) Delete(ctx shared.TransactionContext, comment *forum.QuestionComment) error {
	if err := r.getDB(ctx).Where("id = ?", comment.ID().String()).Delete(&QuestionCommentGORM{}).Error; err != nil {
		return repositoryError(err)
	}
	return nil
}

// ===========================
// AnswerCommentRepository
// ===========================

// GORMAnswerCommentRepository 回答評論倉儲
type GORMAnswerCommentRepository struct {
	baseRepository
}

// NewAnswerCommentRepository 創建倉儲實例
func NewAnswerCommentRepository(db *gorm.DB, bus *shared.DomainEventBus) *GORMAnswerCommentRepository {
	return &GORMAnswerCommentRepository{baseRepository{db: db, bus: bus}}
}

func (r *GORMAnswerCommentRepository) Create(ctx shared.TransactionContext, comment *forum.AnswerComment) error {
	if err := r.getDB(ctx).Create(toAnswerCommentGORM(comment)).Error; err != nil {
		return repositoryError(err)
	}
	return r.dispatch(ctx, comment)
}

func (r *GORMAnswerCommentRepository) FindByID(ctx shared.TransactionContext, id forum.AnswerCommentID) (*forum.AnswerComment, error) {
	var model AnswerCommentGORM
	if err := r.getDB(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		return nil, mapError(err, forum.ErrAnswerCommentNotFound, "answer_comment_id", id.String())
	}
	return model.toDomain()
}

func (r *GORMAnswerCommentRepository) FindManyByAnswerID(ctx shared.TransactionContext, answerID forum.AnswerID, params shared.PaginationParams) ([]*forum.AnswerComment, error) {
	var models []AnswerCommentGORM
	err := r.getDB(ctx).
		Where("answer_id = ?", answerID.String()).
		Order("created_at ASC").
		Order("id").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&models).Error
	if err != nil {
		return nil, repositoryError(err)
	}

	comments := make([]*forum.AnswerComment, 0, len(models))
	for i := range models {
		c, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *GORMAnswerCommentRepository) Delete(ctx shared.TransactionContext, comment *forum.AnswerComment) error {
	if err := r.getDB(ctx).Where("id = ?", comment.ID().String()).Delete(&AnswerCommentGORM{}).Error; err != nil {
		return repositoryError(err)
	}
	return nil
}
