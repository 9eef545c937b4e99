package main

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/api"
	"github.com/jackyeh168/qa_forum/src/internal/config"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"github.com/jackyeh168/qa_forum/src/internal/infrastructure/logging"
	"github.com/jackyeh168/qa_forum/src/internal/infrastructure/memory"
	"github.com/jackyeh168/qa_forum/src/internal/infrastructure/metrics"
	"github.com/jackyeh168/qa_forum/src/internal/infrastructure/persistence"
	forumpersistence "github.com/jackyeh168/qa_forum/src/internal/infrastructure/persistence/forum"
	notificationpersistence "github.com/jackyeh168/qa_forum/src/internal/infrastructure/persistence/notification"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container 應用程式的全部依賴
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Bus     *shared.DomainEventBus
	DB      *gorm.DB // driver 為 memory 時為 nil
	Router  *api.Router
}

// NewContainer 依配置組裝依賴
//
// 步驟：
// 1. 指標與事件匯流排（日誌 + 指標觀察者）
// 2. 倉儲：memory 或 GORM（sqlite / mysql，自動遷移）
// 3. 用例與通知訂閱者
// 4. 路由
func NewContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	bus := shared.NewDomainEventBus(
		shared.WithObserver(logging.NewEventObserver(log)),
		shared.WithObserver(m),
	)

	c := &Container{Config: cfg, Logger: log, Metrics: m, Bus: bus}

	repos, txManager, err := c.buildRepositories()
	if err != nil {
		return nil, err
	}

	uc, err := api.NewUseCases(repos, txManager, bus)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to register subscribers: %w", err)
	}

	c.Router = api.NewRouter(cfg, log, m, uc)
	return c, nil
}

func (c *Container) buildRepositories() (api.Repositories, shared.TransactionManager, error) {
	if c.Config.Database.Driver == config.DriverMemory {
		c.Logger.Info("using in-memory repositories")
		store := memory.NewStore(c.Bus)
		return api.Repositories{
			Questions:           store.Questions,
			Answers:             store.Answers,
			QuestionComments:    store.QuestionComments,
			AnswerComments:      store.AnswerComments,
			QuestionAttachments: store.QuestionAttachments,
			AnswerAttachments:   store.AnswerAttachments,
			Notifications:       store.Notifications,
		}, store.TxManager, nil
	}

	gormLog := logging.NewGormLoggerAdapter(c.Logger,
		logging.ParseGormLevel(c.Config.Database.LogLevel), c.Config.Database.SlowThreshold)
	db, err := persistence.Open(c.Config.Database, gormLog)
	if err != nil {
		return api.Repositories{}, nil, err
	}
	c.DB = db

	if err := forumpersistence.AutoMigrate(db); err != nil {
		_ = c.Close()
		return api.Repositories{}, nil, fmt.Errorf("failed to migrate forum tables: %w", err)
	}
	if err := notificationpersistence.AutoMigrate(db); err != nil {
		_ = c.Close()
		return api.Repositories{}, nil, fmt.Errorf("failed to migrate notification tables: %w", err)
	}
	c.Logger.Info("database ready", zap.String("driver", c.Config.Database.Driver))

	questionAttachments := forumpersistence.NewQuestionAttachmentRepository(db)
	answerAttachments := forumpersistence.NewAnswerAttachmentRepository(db)
	return api.Repositories{
		Questions:           forumpersistence.NewQuestionRepository(db, c.Bus, questionAttachments),
		Answers:             forumpersistence.NewAnswerRepository(db, c.Bus, answerAttachments),
		QuestionComments:    forumpersistence.NewQuestionCommentRepository(db, c.Bus),
		AnswerComments:      forumpersistence.NewAnswerCommentRepository(db, c.Bus),
		QuestionAttachments: questionAttachments,
		AnswerAttachments:   answerAttachments,
		Notifications:       notificationpersistence.NewNotificationRepository(db, c.Bus),
	}, persistence.NewGORMTransactionManager(db), nil
}

// Close 釋放資料庫連線
func (c *Container) Close() error {
	if c.DB == nil {
		return nil
	}
	return persistence.Close(c.DB)
}
