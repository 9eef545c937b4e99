package shared

// ===========================
// Entity / AggregateRoot（組合而非繼承）
// ===========================

// Identified 任何擁有 EntityID[T] 的物件
type Identified[T any] interface {
	ID() EntityID[T]
}

// Entity 實體身分元件
//
// 設計原則：
// 1. 身分在建構時固定，之後不可變
// 2. 實體相等性 = 身分相等性（不比較屬性）
// 3. 以嵌入方式組合到具體實體，不使用基底類別
type Entity[T any] struct {
	id EntityID[T]
}

// NewEntity 建立實體身分；id 為空時自動生成
func NewEntity[T any](id EntityID[T]) Entity[T] {
	if id.IsEmpty() {
		id = NewEntityID[T]()
	}
	return Entity[T]{id: id}
}

// ID 返回實體 ID
func (e Entity[T]) ID() EntityID[T] {
	return e.id
}

// Equals 比較兩個實體的身分
func (e Entity[T]) Equals(other Identified[T]) bool {
	if other == nil {
		return false
	}
	return e.id.Equals(other.ID())
}

// AggregateRoot 聚合根元件：實體身分 + 領域事件緩衝區
//
// 事件緩衝區從聚合的角度是 append-only，
// 只有 DomainEventBus 在派發完成後才會呼叫 ClearEvents。
// 緩衝與派發解耦：事件只在持久化成功後由 Repository 觸發派發。
type AggregateRoot[T any] struct {
	Entity[T]
	events []DomainEvent
}

// NewAggregateRoot 建立聚合根元件；id 為空時自動生成
func NewAggregateRoot[T any](id EntityID[T]) AggregateRoot[T] {
	return AggregateRoot[T]{Entity: NewEntity(id)}
}

// AggregateID 返回事件匯流排使用的聚合鍵
func (a *AggregateRoot[T]) AggregateID() string {
	return a.id.String()
}

// AddDomainEvent 加入待派發事件
func (a *AggregateRoot[T]) AddDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// DomainEvents 返回待派發事件的唯讀副本（依建立順序）
func (a *AggregateRoot[T]) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(a.events))
	copy(events, a.events)
	return events
}

// ClearEvents 清空事件緩衝區
func (a *AggregateRoot[T]) ClearEvents() {
	a.events = nil
}
