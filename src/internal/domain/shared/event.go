package shared

import "time"

// ===========================
// 事件類型（封閉列舉）
// ===========================

// EventKind 領域事件類型
//
// 封閉集合：只有下列常量是合法值，匯流排註冊時會拒絕其他值。
type EventKind string

const (
	EventKindAnswerCreated            EventKind = "answer.created"
	EventKindAnswerCommentCreated     EventKind = "answer_comment.created"
	EventKindQuestionCommentCreated   EventKind = "question_comment.created"
	EventKindQuestionBestAnswerChosen EventKind = "question.best_answer_chosen"
)

// EventKinds 返回所有合法的事件類型
func EventKinds() []EventKind {
	return []EventKind{
		EventKindAnswerCreated,
		EventKindAnswerCommentCreated,
		EventKindQuestionCommentCreated,
		EventKindQuestionBestAnswerChosen,
	}
}

// IsValid 判斷是否為已知的事件類型
func (k EventKind) IsValid() bool {
	switch k {
	case EventKindAnswerCreated,
		EventKindAnswerCommentCreated,
		EventKindQuestionCommentCreated,
		EventKindQuestionBestAnswerChosen:
		return true
	}
	return false
}

func (k EventKind) String() string {
	return string(k)
}

// ===========================
// 領域事件介面
// ===========================

// DomainEvent 領域事件基礎介面
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	EventType() EventKind  // 事件類型
	OccurredAt() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID
}

// EventHandler 事件處理器介面
//
// ctx 是觸發派發的持久化操作所在的事務上下文（可為 nil），
// 處理器內的查詢與寫入應沿用它。
type EventHandler interface {
	Handle(ctx TransactionContext, event DomainEvent) error
}

// EventHandlerFunc 函數適配器
type EventHandlerFunc func(ctx TransactionContext, event DomainEvent) error

// Handle 實現 EventHandler 介面
func (f EventHandlerFunc) Handle(ctx TransactionContext, event DomainEvent) error {
	return f(ctx, event)
}

// EventSource 持有待派發事件的聚合根
type EventSource interface {
	AggregateID() string
	DomainEvents() []DomainEvent
	ClearEvents()
}
