package shared

import (
	"fmt"
	"sync"
)

// ===========================
// DomainEventBus 領域事件匯流排
// ===========================

// DispatchObserver 派發觀察者
// 設計原則：介面定義在 Domain Layer，由 Infrastructure 實作（日誌、指標）
type DispatchObserver interface {
	EventDispatched(kind EventKind, handlers int)
	HandlerFailed(kind EventKind, err error)
}

// BusOption 匯流排建構選項
type BusOption func(*DomainEventBus)

// WithObserver 加入派發觀察者（可多次使用）
func WithObserver(observer DispatchObserver) BusOption {
	return func(b *DomainEventBus) {
		if observer != nil {
			b.observers = append(b.observers, observer)
		}
	}
}

// DomainEventBus 同步、行程內的領域事件匯流排
//
// 設計原則：
// 1. 顯式實例：由 bootstrap 建立並注入 Repository 與 Subscriber，不使用全域狀態
// 2. 封閉事件類型：只接受 EventKind 常量
// 3. 處理器依註冊順序執行，事件依建立順序派發
// 4. 處理器錯誤不吞掉：第一個失敗即中止並回傳，已執行的處理器不回滾
// 5. DispatchAggregate 只派發傳入的實例，失敗的派發不會殘留在登記表上
//
// 並發：兩個登錄表都由 mu 保護；處理器在鎖外執行，
// 因此處理器內可以再註冊處理器或觸發其他聚合的派發。
type DomainEventBus struct {
	mu        sync.Mutex
	handlers  map[EventKind][]EventHandler
	marked    map[string]EventSource
	observers []DispatchObserver
}

// NewDomainEventBus 建立事件匯流排
func NewDomainEventBus(opts ...BusOption) *DomainEventBus {
	bus := &DomainEventBus{
		handlers: make(map[EventKind][]EventHandler),
		marked:   make(map[string]EventSource),
	}
	for _, opt := range opts {
		opt(bus)
	}
	return bus
}

// Register 為事件類型追加處理器
//
// 冪等性由訂閱者負責：同一處理器註冊兩次會被呼叫兩次。
func (b *DomainEventBus) Register(kind EventKind, handler EventHandler) error {
	if !kind.IsValid() {
		return ErrUnknownEventKind.WithContext("kind", string(kind))
	}
	if handler == nil {
		return ErrInvalidArgument.WithContext("handler", "nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], handler)
	return nil
}

// Subscribe 以強型別處理器註冊事件
//
// 收到的事件動態型別不是 E 時返回 ErrEventTypeMismatch。
//
//	shared.Subscribe(bus, shared.EventKindAnswerCreated,
//	    func(ctx shared.TransactionContext, e *forum.AnswerCreatedEvent) error { ... })
func Subscribe[E DomainEvent](bus *DomainEventBus, kind EventKind, fn func(ctx TransactionContext, event E) error) error {
	return bus.Register(kind, EventHandlerFunc(func(ctx TransactionContext, event DomainEvent) error {
		typed, ok := event.(E)
		if !ok {
			return ErrEventTypeMismatch.WithContext(
				"kind", string(kind),
				"event", fmt.Sprintf("%T", event),
			)
		}
		return fn(ctx, typed)
	}))
}

// HandlerCount 返回某事件類型已註冊的處理器數量
func (b *DomainEventBus) HandlerCount(kind EventKind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[kind])
}

// MarkAggregateForDispatch 登記持有待派發事件的聚合
//
// 同一 ID 再次登記時以最新實例為準；最新實例沒有待派發事件時，
// 取消該 ID 的登記，先前實例殘留的事件不會再被派發。
func (b *DomainEventBus) MarkAggregateForDispatch(aggregate EventSource) {
	if aggregate == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(aggregate.DomainEvents()) == 0 {
		delete(b.marked, aggregate.AggregateID())
		return
	}
	b.marked[aggregate.AggregateID()] = aggregate
}

// IsMarked 判斷聚合是否仍有未派發事件登記在匯流排上
func (b *DomainEventBus) IsMarked(aggregateID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.marked[aggregateID]
	return ok
}

// DispatchEventsForAggregate 派發聚合的所有待派發事件
//
// 流程：
// 1. 查找登記的聚合（找不到 → no-op）
// 2. 依事件建立順序，對每個事件依註冊順序同步呼叫處理器
// 3. 全部成功後清空緩衝區並取消登記
//
// 處理器失敗時立即返回錯誤並取消登記；緩衝區留在聚合實例上，
// 只有再次以同一實例呼叫 DispatchAggregate 才會重新派發。
func (b *DomainEventBus) DispatchEventsForAggregate(ctx TransactionContext, aggregateID string) error {
	b.mu.Lock()
	aggregate, ok := b.marked[aggregateID]
	b.mu.Unlock()
	if !ok {
		return nil
	}

	for _, event := range aggregate.DomainEvents() {
		kind := event.EventType()
		handlers := b.handlersFor(kind)

		for _, handler := range handlers {
			if err := handler.Handle(ctx, event); err != nil {
				b.notifyFailed(kind, err)
				b.unmark(aggregateID, aggregate)
				return fmt.Errorf("failed to dispatch %s for aggregate %s: %w", kind, aggregateID, err)
			}
		}
		b.notifyDispatched(kind, len(handlers))
	}

	aggregate.ClearEvents()
	b.unmark(aggregateID, aggregate)

	return nil
}

// unmark 只在登記的仍是同一實例時移除
func (b *DomainEventBus) unmark(aggregateID string, aggregate EventSource) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if current, ok := b.marked[aggregateID]; ok && current == aggregate {
		delete(b.marked, aggregateID)
	}
}

// DispatchAggregate 登記並立即派發（Repository 寫入成功後呼叫）
func (b *DomainEventBus) DispatchAggregate(ctx TransactionContext, aggregate EventSource) error {
	if aggregate == nil {
		return nil
	}
	b.MarkAggregateForDispatch(aggregate)
	return b.DispatchEventsForAggregate(ctx, aggregate.AggregateID())
}

// ClearMarkedAggregates 清空登記表（不派發）
func (b *DomainEventBus) ClearMarkedAggregates() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.marked = make(map[string]EventSource)
}

// handlersFor 在鎖內複製處理器列表快照
func (b *DomainEventBus) handlersFor(kind EventKind) []EventHandler {
	b.mu.Lock()
	defer b.mu.Unlock()
	handlers := make([]EventHandler, len(b.handlers[kind]))
	copy(handlers, b.handlers[kind])
	return handlers
}

func (b *DomainEventBus) notifyDispatched(kind EventKind, handlers int) {
	for _, o := range b.observers {
		o.EventDispatched(kind, handlers)
	}
}

func (b *DomainEventBus) notifyFailed(kind EventKind, err error) {
	for _, o := range b.observers {
		o.HandlerFailed(kind, err)
	}
}
