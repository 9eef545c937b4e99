package logging

import (
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"go.uber.org/zap"
)

// EventObserver 以日誌記錄事件匯流排的派發結果
type EventObserver struct {
	logger *zap.Logger
}

// NewEventObserver 建立觀察者（實作 shared.DispatchObserver）
func NewEventObserver(log *zap.Logger) *EventObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventObserver{logger: log.Named("events")}
}

func (o *EventObserver) EventDispatched(kind shared.EventKind, handlers int) {
	o.logger.Debug("Domain event dispatched",
		zap.String("kind", kind.String()),
		zap.Int("handlers", handlers),
	)
}

func (o *EventObserver) HandlerFailed(kind shared.EventKind, err error) {
	o.logger.Error("Domain event handler failed",
		zap.String("kind", kind.String()),
		zap.Error(err),
	)
}
