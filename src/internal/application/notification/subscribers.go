package notification

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// 論壇事件訂閱者
// ===========================
//
// 每個訂閱者在建構時於注入的匯流排註冊一次，收到事件後：
// 1. 以事件的外鍵查找相關聚合（沿用派發時的事務 ctx）
// 2. 找不到 → 不做任何事（外部或過期的引用不是錯誤）
// 3. 找到 → 以截斷後的文字發送通知給相關作者
//
// 查找的其他錯誤與發送失敗都返回給匯流排，使觸發的寫入回滾。

// 截斷長度（字元）
const (
	answerCreatedTitleLength = 40
	commentTitleLength       = 10
	commentContentLength     = 50
	bestAnswerTitleLength    = 20
)

// Subscribers 所有論壇事件訂閱者
type Subscribers struct {
	AnswerCreated            *OnAnswerCreated
	AnswerCommentCreated     *OnAnswerCommentCreated
	QuestionCommentCreated   *OnQuestionCommentCreated
	QuestionBestAnswerChosen *OnQuestionBestAnswerChosen
}

// RegisterSubscribers 建立並註冊全部訂閱者
func RegisterSubscribers(
	bus *shared.DomainEventBus,
	questionRepo forum.QuestionRepository,
	answerRepo forum.AnswerRepository,
	sender NotificationSender,
) (*Subscribers, error) {
	onAnswerCreated, err := NewOnAnswerCreated(bus, questionRepo, sender)
	if err != nil {
		return nil, err
	}
	onAnswerComment, err := NewOnAnswerCommentCreated(bus, answerRepo, sender)
	if err != nil {
		return nil, err
	}
	onQuestionComment, err := NewOnQuestionCommentCreated(bus, questionRepo, sender)
	if err != nil {
		return nil, err
	}
	onBestAnswer, err := NewOnQuestionBestAnswerChosen(bus, answerRepo, sender)
	if err != nil {
		return nil, err
	}

	return &Subscribers{
		AnswerCreated:            onAnswerCreated,
		AnswerCommentCreated:     onAnswerComment,
		QuestionCommentCreated:   onQuestionComment,
		QuestionBestAnswerChosen: onBestAnswer,
	}, nil
}

// truncate 截斷並附加 "..."（與 shared.Excerpt 不同，不去除尾端空白）
func truncate(s string, n int) string {
	return shared.TruncateRunes(s, n) + shared.Ellipsis
}

func send(ctx shared.TransactionContext, sender NotificationSender, cmd SendNotificationCommand) error {
	if _, err := sender.ExecuteWithContext(ctx, cmd); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// ===========================
// OnAnswerCreated
// ===========================

// OnAnswerCreated 新回答 → 通知問題作者
type OnAnswerCreated struct {
	questionRepo forum.QuestionRepository
	sender       NotificationSender
}

// NewOnAnswerCreated 建立並註冊訂閱者
func NewOnAnswerCreated(bus *shared.DomainEventBus, questionRepo forum.QuestionRepository, sender NotificationSender) (*OnAnswerCreated, error) {
	s := &OnAnswerCreated{questionRepo: questionRepo, sender: sender}
	if err := shared.Subscribe(bus, shared.EventKindAnswerCreated, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *OnAnswerCreated) handle(ctx shared.TransactionContext, event *forum.AnswerCreatedEvent) error {
	question, err := s.questionRepo.FindByID(ctx, event.QuestionID())
	if errors.Is(err, shared.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find question: %w", err)
	}

	return send(ctx, s.sender, SendNotificationCommand{
		RecipientID: question.AuthorID().String(),
		Title:       "Nova resposta em \"" + truncate(question.Title(), answerCreatedTitleLength) + "\"",
		Content:     event.Excerpt(),
	})
}

// ===========================
// OnAnswerCommentCreated
// ===========================

// OnAnswerCommentCreated 回答的新評論 → 通知回答作者
type OnAnswerCommentCreated struct {
	answerRepo forum.AnswerRepository
	sender     NotificationSender
}

// NewOnAnswerCommentCreated 建立並註冊訂閱者
func NewOnAnswerCommentCreated(bus *shared.DomainEventBus, answerRepo forum.AnswerRepository, sender NotificationSender) (*OnAnswerCommentCreated, error) {
	s := &OnAnswerCommentCreated{answerRepo: answerRepo, sender: sender}
	if err := shared.Subscribe(bus, shared.EventKindAnswerCommentCreated, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *OnAnswerCommentCreated) handle(ctx shared.TransactionContext, event *forum.AnswerCommentCreatedEvent) error {
	answer, err := s.answerRepo.FindByID(ctx, event.AnswerID())
	if errors.Is(err, shared.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find answer: %w", err)
	}

	return send(ctx, s.sender, SendNotificationCommand{
		RecipientID: answer.AuthorID().String(),
		Title:       "Novo comentário na sua resposta " + truncate(answer.Content(), commentTitleLength),
		Content:     truncate(event.Content(), commentContentLength),
	})
}

// ===========================
// OnQuestionCommentCreated
// ===========================

// OnQuestionCommentCreated 問題的新評論 → 通知問題作者
type OnQuestionCommentCreated struct {
	questionRepo forum.QuestionRepository
	sender       NotificationSender
}

// NewOnQuestionCommentCreated 建立並註冊訂閱者
func NewOnQuestionCommentCreated(bus *shared.DomainEventBus, questionRepo forum.QuestionRepository, sender NotificationSender) (*OnQuestionCommentCreated, error) {
	s := &OnQuestionCommentCreated{questionRepo: questionRepo, sender: sender}
	if err := shared.Subscribe(bus, shared.EventKindQuestionCommentCreated, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *OnQuestionCommentCreated) handle(ctx shared.TransactionContext, event *forum.QuestionCommentCreatedEvent) error {
	question, err := s.questionRepo.FindByID(ctx, event.QuestionID())
	if errors.Is(err, shared.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find question: %w", err)
	}

	return send(ctx, s.sender, SendNotificationCommand{
		RecipientID: question.AuthorID().String(),
		Title:       "Novo comentário na sua pergunta " + truncate(question.Title(), commentTitleLength),
		Content:     truncate(event.Content(), commentContentLength),
	})
}

// ===========================
// OnQuestionBestAnswerChosen
// ===========================

// OnQuestionBestAnswerChosen 選出最佳回答 → 通知回答作者
type OnQuestionBestAnswerChosen struct {
	answerRepo forum.AnswerRepository
	sender     NotificationSender
}

// NewOnQuestionBestAnswerChosen 建立並註冊訂閱者
func NewOnQuestionBestAnswerChosen(bus *shared.DomainEventBus, answerRepo forum.AnswerRepository, sender NotificationSender) (*OnQuestionBestAnswerChosen, error) {
	s := &OnQuestionBestAnswerChosen{answerRepo: answerRepo, sender: sender}
	if err := shared.Subscribe(bus, shared.EventKindQuestionBestAnswerChosen, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *OnQuestionBestAnswerChosen) handle(ctx shared.TransactionContext, event *forum.QuestionBestAnswerChosenEvent) error {
	answer, err := s.answerRepo.FindByID(ctx, event.BestAnswerID())
	if errors.Is(err, shared.ErrResourceNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find answer: %w", err)
	}

	return send(ctx, s.sender, SendNotificationCommand{
		RecipientID: answer.AuthorID().String(),
		Title:       "Sua resposta foi escolhida",
		Content: fmt.Sprintf("A resposta que você enviou em %s foi escolhida pelo autor",
			truncate(event.QuestionTitle(), bestAnswerTitleLength)),
	})
}
