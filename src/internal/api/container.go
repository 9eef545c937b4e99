package api

import (
	appforum "github.com/jackyeh168/qa_forum/src/internal/application/forum"
	appnotification "github.com/jackyeh168/qa_forum/src/internal/application/notification"
	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/notification"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// 依賴組裝
// ===========================

// Repositories 用例需要的全部倉儲（GORM 或記憶體實作）
type Repositories struct {
	Questions           forum.QuestionRepository
	Answers             forum.AnswerRepository
	QuestionComments    forum.QuestionCommentRepository
	AnswerComments      forum.AnswerCommentRepository
	QuestionAttachments forum.QuestionAttachmentRepository
	AnswerAttachments   forum.AnswerAttachmentRepository
	Notifications       notification.NotificationRepository
}

// UseCases HTTP 處理器使用的用例
type UseCases struct {
	CreateQuestion        *appforum.CreateQuestionUseCase
	EditQuestion          *appforum.EditQuestionUseCase
	DeleteQuestion        *appforum.DeleteQuestionUseCase
	FetchRecentQuestions  *appforum.FetchRecentQuestionsUseCase
	GetQuestionBySlug     *appforum.GetQuestionBySlugUseCase
	AnswerQuestion        *appforum.AnswerQuestionUseCase
	EditAnswer            *appforum.EditAnswerUseCase
	DeleteAnswer          *appforum.DeleteAnswerUseCase
	FetchQuestionAnswers  *appforum.FetchQuestionAnswersUseCase
	ChooseBestAnswer      *appforum.ChooseQuestionBestAnswerUseCase
	CommentOnQuestion     *appforum.CommentOnQuestionUseCase
	DeleteQuestionComment *appforum.DeleteQuestionCommentUseCase
	FetchQuestionComments *appforum.FetchQuestionCommentsUseCase
	CommentOnAnswer       *appforum.CommentOnAnswerUseCase
	DeleteAnswerComment   *appforum.DeleteAnswerCommentUseCase
	FetchAnswerComments   *appforum.FetchAnswerCommentsUseCase
	SendNotification      *appnotification.SendNotificationUseCase
	ReadNotification      *appnotification.ReadNotificationUseCase
}

// NewUseCases 建立全部用例，並在匯流排上註冊通知訂閱者
//
// 訂閱者只能註冊一次；同一個匯流排不可重複呼叫。
func NewUseCases(repos Repositories, txManager shared.TransactionManager, bus *shared.DomainEventBus) (*UseCases, error) {
	sender := appnotification.NewSendNotificationUseCase(repos.Notifications, txManager)
	if _, err := appnotification.RegisterSubscribers(bus, repos.Questions, repos.Answers, sender); err != nil {
		return nil, err
	}

	return &UseCases{
		CreateQuestion:        appforum.NewCreateQuestionUseCase(repos.Questions, txManager),
		EditQuestion:          appforum.NewEditQuestionUseCase(repos.Questions, repos.QuestionAttachments, txManager),
		DeleteQuestion:        appforum.NewDeleteQuestionUseCase(repos.Questions, txManager),
		FetchRecentQuestions:  appforum.NewFetchRecentQuestionsUseCase(repos.Questions),
		GetQuestionBySlug:     appforum.NewGetQuestionBySlugUseCase(repos.Questions),
		AnswerQuestion:        appforum.NewAnswerQuestionUseCase(repos.Questions, repos.Answers, txManager),
		EditAnswer:            appforum.NewEditAnswerUseCase(repos.Answers, repos.AnswerAttachments, txManager),
		DeleteAnswer:          appforum.NewDeleteAnswerUseCase(repos.Answers, txManager),
		FetchQuestionAnswers:  appforum.NewFetchQuestionAnswersUseCase(repos.Answers),
		ChooseBestAnswer:      appforum.NewChooseQuestionBestAnswerUseCase(repos.Questions, repos.Answers, txManager),
		CommentOnQuestion:     appforum.NewCommentOnQuestionUseCase(repos.Questions, repos.QuestionComments, txManager),
		DeleteQuestionComment: appforum.NewDeleteQuestionCommentUseCase(repos.QuestionComments, txManager),
		FetchQuestionComments: appforum.NewFetchQuestionCommentsUseCase(repos.QuestionComments),
		CommentOnAnswer:       appforum.NewCommentOnAnswerUseCase(repos.Answers, repos.AnswerComments, txManager),
		DeleteAnswerComment:   appforum.NewDeleteAnswerCommentUseCase(repos.AnswerComments, txManager),
		FetchAnswerComments:   appforum.NewFetchAnswerCommentsUseCase(repos.AnswerComments),
		SendNotification:      sender,
		ReadNotification:      appnotification.NewReadNotificationUseCase(repos.Notifications, txManager),
	}, nil
}
