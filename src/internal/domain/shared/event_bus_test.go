package shared_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// 測試用聚合與事件
// ===========================

type testAggregateMarker struct{}

type testAggregate struct {
	shared.AggregateRoot[testAggregateMarker]
}

func newTestAggregate() *testAggregate {
	return &testAggregate{
		AggregateRoot: shared.NewAggregateRoot(shared.EntityID[testAggregateMarker]{}),
	}
}

type testEvent struct {
	kind        shared.EventKind
	aggregateID string
	seq         int
}

func (e *testEvent) EventID() string             { return e.aggregateID }
func (e *testEvent) EventType() shared.EventKind { return e.kind }
func (e *testEvent) OccurredAt() time.Time       { return time.Time{} }
func (e *testEvent) AggregateID() string         { return e.aggregateID }

type otherEvent struct{ testEvent }

func (a *testAggregate) raise(kind shared.EventKind, seq int) {
	a.AddDomainEvent(&testEvent{kind: kind, aggregateID: a.AggregateID(), seq: seq})
}

type recordingObserver struct {
	dispatched []shared.EventKind
	failed     []shared.EventKind
}

func (o *recordingObserver) EventDispatched(kind shared.EventKind, _ int) {
	o.dispatched = append(o.dispatched, kind)
}

func (o *recordingObserver) HandlerFailed(kind shared.EventKind, _ error) {
	o.failed = append(o.failed, kind)
}

// ===== 派發行為 =====

// Test 1: 未派發前事件留在緩衝區；派發後回呼只執行一次並清空
func TestDomainEventBus_DispatchOnce_ThenClears(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	calls := 0
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			calls++
			return nil
		})))

	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 1)
	bus.MarkAggregateForDispatch(aggregate)

	// Assert：尚未派發
	assert.Len(t, aggregate.DomainEvents(), 1)
	assert.Equal(t, 0, calls)

	// Act
	err := bus.DispatchEventsForAggregate(nil, aggregate.AggregateID())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, aggregate.DomainEvents())
	assert.Equal(t, 1, calls)
	assert.False(t, bus.IsMarked(aggregate.AggregateID()))

	// 再次派發不會重複呼叫
	require.NoError(t, bus.DispatchEventsForAggregate(nil, aggregate.AggregateID()))
	assert.Equal(t, 1, calls)
}

// Test 2: 處理器依註冊順序、事件依建立順序執行
func TestDomainEventBus_Ordering(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	var trace []string
	record := func(name string) shared.EventHandler {
		return shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			trace = append(trace, name+":"+string(e.EventType()))
			return nil
		})
	}
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated, record("first")))
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated, record("second")))
	require.NoError(t, bus.Register(shared.EventKindQuestionBestAnswerChosen, record("third")))

	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 1)
	aggregate.raise(shared.EventKindQuestionBestAnswerChosen, 2)

	// Act
	err := bus.DispatchAggregate(nil, aggregate)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{
		"first:answer.created",
		"second:answer.created",
		"third:question.best_answer_chosen",
	}, trace)
}

// Test 3: 未登記的聚合 ID 派發為 no-op
func TestDomainEventBus_UnknownAggregate_NoOp(t *testing.T) {
	bus := shared.NewDomainEventBus()

	err := bus.DispatchEventsForAggregate(nil, "missing")

	assert.NoError(t, err)
}

// Test 4: 沒有事件的聚合不會被登記
func TestDomainEventBus_MarkWithoutEvents_Ignored(t *testing.T) {
	bus := shared.NewDomainEventBus()
	aggregate := newTestAggregate()

	bus.MarkAggregateForDispatch(aggregate)

	assert.False(t, bus.IsMarked(aggregate.AggregateID()))
}

// Test 5: 只有對應事件類型的處理器被呼叫
func TestDomainEventBus_OnlyMatchingKind(t *testing.T) {
	bus := shared.NewDomainEventBus()
	called := false
	require.NoError(t, bus.Register(shared.EventKindAnswerCommentCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			called = true
			return nil
		})))

	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindQuestionCommentCreated, 1)

	require.NoError(t, bus.DispatchAggregate(nil, aggregate))
	assert.False(t, called)
	assert.Empty(t, aggregate.DomainEvents(), "沒有處理器的事件也會被清除")
}

// Test 6: 處理器錯誤向上傳遞，已執行的處理器不回滾，緩衝區保留但取消登記
func TestDomainEventBus_HandlerError_Propagates(t *testing.T) {
	// Arrange
	observer := &recordingObserver{}
	bus := shared.NewDomainEventBus(shared.WithObserver(observer))
	boom := errors.New("boom")
	firstCalls, thirdCalls := 0, 0

	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			firstCalls++
			return nil
		})))
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			return boom
		})))
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			thirdCalls++
			return nil
		})))

	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 1)

	// Act
	err := bus.DispatchAggregate(nil, aggregate)

	// Assert
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 0, thirdCalls)
	assert.Len(t, aggregate.DomainEvents(), 1)
	assert.False(t, bus.IsMarked(aggregate.AggregateID()))
	assert.Equal(t, []shared.EventKind{shared.EventKindAnswerCreated}, observer.failed)
	assert.Empty(t, observer.dispatched)
}

// Test 7: ClearMarkedAggregates 清空登記表但不派發
func TestDomainEventBus_ClearMarkedAggregates(t *testing.T) {
	bus := shared.NewDomainEventBus()
	calls := 0
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			calls++
			return nil
		})))
	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 1)
	bus.MarkAggregateForDispatch(aggregate)

	bus.ClearMarkedAggregates()
	require.NoError(t, bus.DispatchEventsForAggregate(nil, aggregate.AggregateID()))

	assert.Equal(t, 0, calls)
	assert.Len(t, aggregate.DomainEvents(), 1)
}

// Test 8: 未知事件類型與 nil 處理器被拒絕
func TestDomainEventBus_Register_Validation(t *testing.T) {
	bus := shared.NewDomainEventBus()

	err := bus.Register(shared.EventKind("question.exploded"),
		shared.EventHandlerFunc(func(shared.TransactionContext, shared.DomainEvent) error { return nil }))
	assert.ErrorIs(t, err, shared.ErrUnknownEventKind)

	err = bus.Register(shared.EventKindAnswerCreated, nil)
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)

	assert.Equal(t, 0, bus.HandlerCount(shared.EventKindAnswerCreated))
}

// Test 9: 強型別訂閱
func TestSubscribe_TypedHandler(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	var received *testEvent
	require.NoError(t, shared.Subscribe(bus, shared.EventKindAnswerCreated,
		func(ctx shared.TransactionContext, e *testEvent) error {
			received = e
			return nil
		}))

	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 7)

	// Act
	require.NoError(t, bus.DispatchAggregate(nil, aggregate))

	// Assert
	require.NotNil(t, received)
	assert.Equal(t, 7, received.seq)
	assert.Equal(t, aggregate.AggregateID(), received.AggregateID())
}

// Test 10: 強型別訂閱收到錯誤型別的事件
func TestSubscribe_TypeMismatch(t *testing.T) {
	bus := shared.NewDomainEventBus()
	require.NoError(t, shared.Subscribe(bus, shared.EventKindAnswerCreated,
		func(ctx shared.TransactionContext, e *otherEvent) error { return nil }))

	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 1)

	err := bus.DispatchAggregate(nil, aggregate)

	assert.ErrorIs(t, err, shared.ErrEventTypeMismatch)
}

// Test 11: 處理器的事務上下文來自派發呼叫者
func TestDomainEventBus_PassesTransactionContext(t *testing.T) {
	type fakeTx struct{ shared.TransactionContext }
	bus := shared.NewDomainEventBus()
	tx := &fakeTx{}
	var got shared.TransactionContext
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			got = ctx
			return nil
		})))
	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 1)

	require.NoError(t, bus.DispatchAggregate(tx, aggregate))

	assert.Same(t, tx, got)
}

// Test 12: 處理器內註冊新處理器不會死鎖
func TestDomainEventBus_RegisterDuringDispatch(t *testing.T) {
	bus := shared.NewDomainEventBus()
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			return bus.Register(shared.EventKindAnswerCreated,
				shared.EventHandlerFunc(func(shared.TransactionContext, shared.DomainEvent) error { return nil }))
		})))
	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 1)

	require.NoError(t, bus.DispatchAggregate(nil, aggregate))
	assert.Equal(t, 2, bus.HandlerCount(shared.EventKindAnswerCreated))
}

// Test 13: 不同聚合的並發派發
func TestDomainEventBus_ConcurrentDispatch(t *testing.T) {
	bus := shared.NewDomainEventBus()
	var mu sync.Mutex
	calls := 0
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			mu.Lock()
			calls++
			mu.Unlock()
			return nil
		})))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			aggregate := newTestAggregate()
			aggregate.raise(shared.EventKindAnswerCreated, 1)
			assert.NoError(t, bus.DispatchAggregate(nil, aggregate))
		}()
	}
	wg.Wait()

	assert.Equal(t, n, calls)
}

// Test 14: 實體相等性是身分相等性
func TestAggregateRoot_IdentityEquality(t *testing.T) {
	id := shared.MustEntityID[testAggregateMarker]("agg-1")
	a := &testAggregate{AggregateRoot: shared.NewAggregateRoot(id)}
	b := &testAggregate{AggregateRoot: shared.NewAggregateRoot(id)}
	c := newTestAggregate()

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
	assert.False(t, c.ID().IsEmpty(), "未提供 ID 時自動生成")
}

// Test 15: DomainEvents 返回副本
func TestAggregateRoot_DomainEvents_ReadOnlyView(t *testing.T) {
	a := newTestAggregate()
	a.raise(shared.EventKindAnswerCreated, 1)

	events := a.DomainEvents()
	events[0] = nil

	assert.NotNil(t, a.DomainEvents()[0])
}

// ===== 失敗後的登記狀態 =====

// Test 16: 派發失敗後，同一 ID 的新實例（無事件）不會觸發舊事件
func TestDomainEventBus_FailedDispatch_NotReplayedByLaterInstance(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	calls := 0
	require.NoError(t, bus.Register(shared.EventKindQuestionBestAnswerChosen,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			calls++
			if calls == 1 {
				return errors.New("first delivery fails")
			}
			return nil
		})))

	id := shared.MustEntityID[testAggregateMarker]("question-1")
	failed := &testAggregate{AggregateRoot: shared.NewAggregateRoot(id)}
	failed.raise(shared.EventKindQuestionBestAnswerChosen, 1)
	require.Error(t, bus.DispatchAggregate(nil, failed))

	reloaded := &testAggregate{AggregateRoot: shared.NewAggregateRoot(id)}

	// Act
	err := bus.DispatchAggregate(nil, reloaded)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.False(t, bus.IsMarked("question-1"))
}

// Test 17: 同一實例重新派發時，保留的緩衝區會再次送出
func TestDomainEventBus_FailedDispatch_RetryWithSameInstance(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	calls := 0
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			calls++
			if calls == 1 {
				return errors.New("transient")
			}
			return nil
		})))
	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 1)
	require.Error(t, bus.DispatchAggregate(nil, aggregate))

	// Act
	err := bus.DispatchAggregate(nil, aggregate)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Empty(t, aggregate.DomainEvents())
}

// Test 18: 以無事件的實例登記會取代先前登記的實例
func TestDomainEventBus_Mark_EmptyInstanceReplacesStaleEntry(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	calls := 0
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			calls++
			return nil
		})))
	id := shared.MustEntityID[testAggregateMarker]("answer-1")
	stale := &testAggregate{AggregateRoot: shared.NewAggregateRoot(id)}
	stale.raise(shared.EventKindAnswerCreated, 1)
	bus.MarkAggregateForDispatch(stale)

	// Act
	bus.MarkAggregateForDispatch(&testAggregate{AggregateRoot: shared.NewAggregateRoot(id)})
	err := bus.DispatchEventsForAggregate(nil, "answer-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
	assert.False(t, bus.IsMarked("answer-1"))
}

// Test 19: AddDomainEvent 只緩衝事件，未經 Repository 登記的聚合不會被派發
func TestDomainEventBus_UnpersistedAggregate_NotDispatched(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	calls := 0
	require.NoError(t, bus.Register(shared.EventKindAnswerCreated,
		shared.EventHandlerFunc(func(ctx shared.TransactionContext, e shared.DomainEvent) error {
			calls++
			return nil
		})))
	aggregate := newTestAggregate()
	aggregate.raise(shared.EventKindAnswerCreated, 1)

	// Act
	err := bus.DispatchEventsForAggregate(nil, aggregate.AggregateID())

	// Assert
	require.NoError(t, err)
	assert.False(t, bus.IsMarked(aggregate.AggregateID()))
	assert.Equal(t, 0, calls)
	assert.Len(t, aggregate.DomainEvents(), 1)
}
