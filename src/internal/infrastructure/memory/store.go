// Package memory 提供所有倉儲的記憶體實作
//
// 用於 database.driver=memory 與 HTTP 測試。
// 行為與 GORM 實作一致：寫入成功後派發事件、套用附件差異、固定頁大小分頁。
// 儲存的是聚合的副本，呼叫者修改取回的物件不會影響已保存的狀態。
package memory

import (
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// Store 一組共用同一事件匯流排的記憶體倉儲
type Store struct {
	Questions           *QuestionRepository
	Answers             *AnswerRepository
	QuestionComments    *QuestionCommentRepository
	AnswerComments      *AnswerCommentRepository
	QuestionAttachments *QuestionAttachmentRepository
	AnswerAttachments   *AnswerAttachmentRepository
	Notifications       *NotificationRepository
	TxManager           *TransactionManager
}

// NewStore 建立記憶體倉儲
func NewStore(bus *shared.DomainEventBus) *Store {
	questionAttachments := NewQuestionAttachmentRepository()
	answerAttachments := NewAnswerAttachmentRepository()

	return &Store{
		Questions:           NewQuestionRepository(bus, questionAttachments),
		Answers:             NewAnswerRepository(bus, answerAttachments),
		QuestionComments:    NewQuestionCommentRepository(bus),
		AnswerComments:      NewAnswerCommentRepository(bus),
		QuestionAttachments: questionAttachments,
		AnswerAttachments:   answerAttachments,
		Notifications:       NewNotificationRepository(bus),
		TxManager:           NewTransactionManager(),
	}
}

// TransactionManager 記憶體事務管理器
//
// 以 nil ctx 直接執行 fn，不提供回滾；
// 處理器失敗時已寫入的資料會保留。
type TransactionManager struct{}

// NewTransactionManager 建立事務管理器
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// InTransaction 執行 fn
func (m *TransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return fn(nil)
}

func dispatch(bus *shared.DomainEventBus, ctx shared.TransactionContext, aggregate shared.EventSource) error {
	if bus == nil {
		return nil
	}
	return bus.DispatchAggregate(ctx, aggregate)
}
