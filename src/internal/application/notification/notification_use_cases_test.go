package notification

import (
	"errors"
	"testing"
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===========================
// SendNotificationUseCase Tests
// ===========================

// Test 1: 發送通知
func TestSendNotificationUseCase_Execute_Success(t *testing.T) {
	// Arrange
	repo := new(MockNotificationRepository)
	txManager := &MockTransactionManager{}
	useCase := NewSendNotificationUseCase(repo, txManager)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// Act
	result, err := useCase.Execute(SendNotificationCommand{
		RecipientID: "recipient-1",
		Title:       "New notification",
		Content:     "Some content",
	})

	// Assert
	require.NoError(t, err)
	n := result.Notification
	assert.Equal(t, "recipient-1", n.RecipientID().String())
	assert.Equal(t, "New notification", n.Title())
	assert.False(t, n.IsRead())
	assert.Equal(t, 1, txManager.InTransactionCallCount)
	repo.AssertExpectations(t)
}

// Test 2: 空白標題不寫入
func TestSendNotificationUseCase_Execute_EmptyTitle(t *testing.T) {
	// Arrange
	repo := new(MockNotificationRepository)
	useCase := NewSendNotificationUseCase(repo, &MockTransactionManager{})

	// Act
	result, err := useCase.Execute(SendNotificationCommand{RecipientID: "r", Title: " "})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, notification.ErrEmptyTitle)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test 3: 沿用呼叫者的事務上下文
func TestSendNotificationUseCase_ExecuteWithContext_UsesCallerContext(t *testing.T) {
	// Arrange
	repo := new(MockNotificationRepository)
	txManager := &MockTransactionManager{}
	useCase := NewSendNotificationUseCase(repo, txManager)
	callerCtx := struct{ name string }{"caller"}
	repo.On("Create", callerCtx, mock.Anything).Return(nil)

	// Act
	_, err := useCase.ExecuteWithContext(callerCtx, SendNotificationCommand{RecipientID: "r", Title: "t"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, txManager.InTransactionCallCount)
	repo.AssertExpectations(t)
}

// Test 4: Repository 錯誤被包裝
func TestSendNotificationUseCase_Execute_RepositoryError(t *testing.T) {
	// Arrange
	repo := new(MockNotificationRepository)
	useCase := NewSendNotificationUseCase(repo, &MockTransactionManager{})
	dbErr := errors.New("disk full")
	repo.On("Create", mock.Anything, mock.Anything).Return(dbErr)

	// Act
	_, err := useCase.Execute(SendNotificationCommand{RecipientID: "r", Title: "t"})

	// Assert
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to save notification")
}

// ===========================
// ReadNotificationUseCase Tests
// ===========================

func newStoredNotification(recipientID string) *notification.Notification {
	id, _ := notification.NotificationIDFromString("notification-1")
	return notification.ReconstructNotification(id, mustRecipientID(recipientID), "title", "content", nil, time.Now())
}

// Test 5: 接收者標記已讀
func TestReadNotificationUseCase_Execute_Success(t *testing.T) {
	// Arrange
	repo := new(MockNotificationRepository)
	useCase := NewReadNotificationUseCase(repo, &MockTransactionManager{})
	stored := newStoredNotification("recipient-1")
	repo.On("FindByID", mock.Anything, stored.ID()).Return(stored, nil)
	repo.On("Save", mock.Anything, stored).Return(nil)

	// Act
	result, err := useCase.Execute(ReadNotificationCommand{RecipientID: "recipient-1", NotificationID: "notification-1"})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Notification.IsRead())
	assert.NotNil(t, result.Notification.ReadAt())
	repo.AssertExpectations(t)
}

// Test 6: 其他人不能標記已讀
func TestReadNotificationUseCase_Execute_OtherRecipient_NotAllowed(t *testing.T) {
	// Arrange
	repo := new(MockNotificationRepository)
	useCase := NewReadNotificationUseCase(repo, &MockTransactionManager{})
	stored := newStoredNotification("recipient-1")
	repo.On("FindByID", mock.Anything, mock.Anything).Return(stored, nil)

	// Act
	result, err := useCase.Execute(ReadNotificationCommand{RecipientID: "recipient-2", NotificationID: "notification-1"})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotAllowed)
	assert.False(t, stored.IsRead())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// Test 7: 通知不存在
func TestReadNotificationUseCase_Execute_NotFound(t *testing.T) {
	// Arrange
	repo := new(MockNotificationRepository)
	useCase := NewReadNotificationUseCase(repo, &MockTransactionManager{})
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, notification.ErrNotificationNotFound)

	// Act
	_, err := useCase.Execute(ReadNotificationCommand{RecipientID: "r", NotificationID: "missing"})

	// Assert
	assert.ErrorIs(t, err, shared.ErrResourceNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
