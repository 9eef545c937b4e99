package persistence

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager 實作
// ===========================

// GORMTransactionManager 以 GORM 事務實作 shared.TransactionManager
//
// 行為約定：
// - fn 返回 nil → Commit
// - fn 返回錯誤 → Rollback，原樣返回 fn 的錯誤
// - fn panic → Rollback 後重新 panic（交給上層 Recovery 處理）
//
// Repository 在同一個 ctx 中派發領域事件，
// 因此訂閱者的寫入與觸發它的寫入一起提交或回滾。
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在事務中執行 fn
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	tx := m.db.Begin()
	if tx.Error != nil {
		return shared.ErrRepository.WithContext("operation", "begin", "database_error", tx.Error.Error())
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(NewGORMTransactionContext(tx)); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return shared.ErrRepository.WithContext("operation", "commit", "database_error", err.Error())
	}
	return nil
}
