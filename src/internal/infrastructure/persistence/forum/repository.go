package forum

import (
	"errors"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"gorm.io/gorm"
)

// gormTransactionContext GORM 事務上下文（來自 persistence package）
type gormTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

// baseRepository 各倉儲共用的 DB 與事件匯流排
//
// 設計原則：
// - 可選事務參與：ctx 是 gormTransactionContext 時使用事務中的 DB，否則 auto-commit
// - 寫入成功後以同一個 ctx 派發聚合的領域事件
type baseRepository struct {
	db  *gorm.DB
	bus *shared.DomainEventBus
}

// getDB 獲取資料庫實例
func (r *baseRepository) getDB(ctx shared.TransactionContext) *gorm.DB {
	if gormCtx, ok := ctx.(gormTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return r.db
}

// dispatch 派發聚合緩衝的事件（未注入匯流排時略過）
func (r *baseRepository) dispatch(ctx shared.TransactionContext, aggregate shared.EventSource) error {
	if r.bus == nil {
		return nil
	}
	return r.bus.DispatchAggregate(ctx, aggregate)
}

// ===========================
// Helper Functions
// ===========================

// mapError 將 GORM 錯誤映射為 Domain 錯誤
//
// - gorm.ErrRecordNotFound → notFound（附上查詢鍵）
// - 其他資料庫錯誤 → shared.ErrRepository
func mapError(err error, notFound *shared.DomainError, keyValues ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound.WithContext(keyValues...)
	}
	return repositoryError(err)
}

func repositoryError(err error) error {
	return shared.ErrRepository.WithContext("database_error", err.Error())
}

// 編譯期檢查介面實作
var (
	_ forum.QuestionRepository           = (*GORMQuestionRepository)(nil)
	_ forum.AnswerRepository             = (*GORMAnswerRepository)(nil)
	_ forum.QuestionCommentRepository    = (*GORMQuestionCommentRepository)(nil)
	_ forum.AnswerCommentRepository      = (*GORMAnswerCommentRepository)(nil)
	_ forum.QuestionAttachmentRepository = (*GORMQuestionAttachmentRepository)(nil)
	_ forum.AnswerAttachmentRepository   = (*GORMAnswerAttachmentRepository)(nil)
)
