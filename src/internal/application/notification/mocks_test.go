package notification

import (
	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// ===========================
// Mocks
// ===========================

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx shared.TransactionContext, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx shared.TransactionContext, id notification.NotificationID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx shared.TransactionContext, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockNotificationSender 記錄訂閱者送出的命令
type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) ExecuteWithContext(ctx shared.TransactionContext, cmd SendNotificationCommand) (*SendNotificationResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SendNotificationResult), args.Error(1)
}

// MockQuestionRepository 訂閱者只使用 FindByID
type MockQuestionRepository struct {
	mock.Mock
	forum.QuestionRepository
}

func (m *MockQuestionRepository) FindByID(ctx shared.TransactionContext, id forum.QuestionID) (*forum.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.Question), args.Error(1)
}

// MockAnswerRepository 訂閱者只使用 FindByID
type MockAnswerRepository struct {
	mock.Mock
	forum.AnswerRepository
}

func (m *MockAnswerRepository) FindByID(ctx shared.TransactionContext, id forum.AnswerID) (*forum.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.Answer), args.Error(1)
}

type MockTransactionManager struct {
	InTransactionCallCount int
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(nil)
}

// ===========================
// 測試資料
// ===========================

func mustAuthorID(s string) forum.AuthorID {
	id, err := forum.AuthorIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func mustRecipientID(s string) notification.RecipientID {
	id, err := notification.RecipientIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}
