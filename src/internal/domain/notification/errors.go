package notification

import "github.com/jackyeh168/qa_forum/src/internal/domain/shared"

var (
	ErrInvalidNotificationID = &shared.DomainError{
		Code:    shared.ErrCodeInvalidID,
		Message: "無效的通知 ID",
	}

	ErrInvalidRecipientID = &shared.DomainError{
		Code:    shared.ErrCodeInvalidID,
		Message: "無效的接收者 ID",
	}

	ErrEmptyTitle = &shared.DomainError{
		Code:    shared.ErrCodeInvalidArgument,
		Message: "通知標題不能為空",
	}

	ErrNotificationNotFound = &shared.DomainError{
		Code:    shared.ErrCodeResourceNotFound,
		Message: "notification not found",
	}
)
