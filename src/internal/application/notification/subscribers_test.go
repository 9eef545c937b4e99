package notification

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===========================
// 訂閱者測試（真實匯流排 + mock 倉儲與發送者）
// ===========================

func newQuestion(t *testing.T, authorID, title string) *forum.Question {
	t.Helper()
	q, err := forum.NewQuestion(mustAuthorID(authorID), title, "Question content")
	require.NoError(t, err)
	return q
}

func newAnswer(t *testing.T, authorID string, questionID forum.QuestionID, content string) *forum.Answer {
	t.Helper()
	a, err := forum.NewAnswer(mustAuthorID(authorID), questionID, content)
	require.NoError(t, err)
	return a
}

// Test 1: 註冊全部訂閱者，每種事件各一個處理器
func TestRegisterSubscribers_RegistersOneHandlerPerKind(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()

	// Act
	subs, err := RegisterSubscribers(bus, new(MockQuestionRepository), new(MockAnswerRepository), new(MockNotificationSender))

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, subs.AnswerCreated)
	for _, kind := range shared.EventKinds() {
		assert.Equal(t, 1, bus.HandlerCount(kind), kind.String())
	}
}

// Test 2: 新回答通知問題作者
func TestOnAnswerCreated_NotifiesQuestionAuthor(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	questionRepo := new(MockQuestionRepository)
	sender := new(MockNotificationSender)
	_, err := NewOnAnswerCreated(bus, questionRepo, sender)
	require.NoError(t, err)

	question := newQuestion(t, "question-author", "How do generic constraints work in Go?")
	answer := newAnswer(t, "answer-author", question.ID(), "Use an interface with a type set")

	questionRepo.On("FindByID", mock.Anything, question.ID()).Return(question, nil)
	sender.On("ExecuteWithContext", mock.Anything, mock.Anything).Return(&SendNotificationResult{}, nil)

	// Act
	err = bus.DispatchAggregate(nil, answer)

	// Assert
	require.NoError(t, err)
	sender.AssertNumberOfCalls(t, "ExecuteWithContext", 1)
	cmd := sender.Calls[0].Arguments.Get(1).(SendNotificationCommand)
	assert.Equal(t, "question-author", cmd.RecipientID)
	assert.Equal(t, `Nova resposta em "How do generic constraints work in Go?..."`, cmd.Title)
	assert.Equal(t, answer.Excerpt(), cmd.Content)
	assert.Empty(t, answer.DomainEvents())
}

// Test 3: 長標題截斷為 40 個字元
func TestOnAnswerCreated_TruncatesLongTitle(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	questionRepo := new(MockQuestionRepository)
	sender := new(MockNotificationSender)
	_, err := NewOnAnswerCreated(bus, questionRepo, sender)
	require.NoError(t, err)

	title := strings.Repeat("a", 50)
	question := newQuestion(t, "question-author", title)
	answer := newAnswer(t, "answer-author", question.ID(), "content")
	questionRepo.On("FindByID", mock.Anything, mock.Anything).Return(question, nil)
	sender.On("ExecuteWithContext", mock.Anything, mock.Anything).Return(&SendNotificationResult{}, nil)

	// Act
	require.NoError(t, bus.DispatchAggregate(nil, answer))

	// Assert
	cmd := sender.Calls[0].Arguments.Get(1).(SendNotificationCommand)
	assert.Equal(t, `Nova resposta em "`+strings.Repeat("a", 40)+`..."`, cmd.Title)
}

// Test 4: 問題不存在時靜默略過
func TestOnAnswerCreated_QuestionNotFound_NoOp(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	questionRepo := new(MockQuestionRepository)
	sender := new(MockNotificationSender)
	_, err := NewOnAnswerCreated(bus, questionRepo, sender)
	require.NoError(t, err)

	answer := newAnswer(t, "answer-author", forum.NewQuestionID(), "content")
	questionRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, forum.ErrQuestionNotFound)

	// Act
	err = bus.DispatchAggregate(nil, answer)

	// Assert
	require.NoError(t, err)
	sender.AssertNotCalled(t, "ExecuteWithContext", mock.Anything, mock.Anything)
	assert.Empty(t, answer.DomainEvents())
}

// Test 5: 其他查找錯誤傳回匯流排，緩衝區保留但取消登記
func TestOnAnswerCreated_LookupError_Propagates(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	questionRepo := new(MockQuestionRepository)
	sender := new(MockNotificationSender)
	_, err := NewOnAnswerCreated(bus, questionRepo, sender)
	require.NoError(t, err)

	answer := newAnswer(t, "answer-author", forum.NewQuestionID(), "content")
	dbErr := errors.New("connection reset")
	questionRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, dbErr)

	// Act
	err = bus.DispatchAggregate(nil, answer)

	// Assert
	assert.ErrorIs(t, err, dbErr)
	assert.Len(t, answer.DomainEvents(), 1)
	assert.False(t, bus.IsMarked(answer.AggregateID()))
	sender.AssertNotCalled(t, "ExecuteWithContext", mock.Anything, mock.Anything)
}

// Test 6: 回答的新評論通知回答作者
func TestOnAnswerCommentCreated_NotifiesAnswerAuthor(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	answerRepo := new(MockAnswerRepository)
	sender := new(MockNotificationSender)
	_, err := NewOnAnswerCommentCreated(bus, answerRepo, sender)
	require.NoError(t, err)

	answer := newAnswer(t, "answer-author", forum.NewQuestionID(), "This is the answer body")
	comment, err := forum.NewAnswerComment(mustAuthorID("commenter"), answer.ID(), strings.Repeat("c", 60))
	require.NoError(t, err)

	answerRepo.On("FindByID", mock.Anything, answer.ID()).Return(answer, nil)
	sender.On("ExecuteWithContext", mock.Anything, mock.Anything).Return(&SendNotificationResult{}, nil)

	// Act
	err = bus.DispatchAggregate(nil, comment)

	// Assert
	require.NoError(t, err)
	cmd := sender.Calls[0].Arguments.Get(1).(SendNotificationCommand)
	assert.Equal(t, "answer-author", cmd.RecipientID)
	assert.Equal(t, "Novo comentário na sua resposta This is th...", cmd.Title)
	assert.Equal(t, strings.Repeat("c", 50)+"...", cmd.Content)
}

// Test 7: 不同回答的評論不會觸發通知（訂閱者隔離）
func TestOnAnswerCommentCreated_ForeignAnswer_DoesNotNotify(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	answerRepo := new(MockAnswerRepository)
	sender := new(MockNotificationSender)
	_, err := NewOnAnswerCommentCreated(bus, answerRepo, sender)
	require.NoError(t, err)

	answerA := newAnswer(t, "author-a", forum.NewQuestionID(), "answer A")
	answerB := forum.NewAnswerID()
	answerRepo.On("FindByID", mock.Anything, answerA.ID()).Return(answerA, nil)
	answerRepo.On("FindByID", mock.Anything, answerB).Return(nil, forum.ErrAnswerNotFound)

	comment, err := forum.NewAnswerComment(mustAuthorID("commenter"), answerB, "comment on B")
	require.NoError(t, err)

	// Act
	err = bus.DispatchAggregate(nil, comment)

	// Assert
	require.NoError(t, err)
	answerRepo.AssertCalled(t, "FindByID", mock.Anything, answerB)
	answerRepo.AssertNotCalled(t, "FindByID", mock.Anything, answerA.ID())
	sender.AssertNotCalled(t, "ExecuteWithContext", mock.Anything, mock.Anything)
}

// Test 8: 問題的新評論通知問題作者
func TestOnQuestionCommentCreated_NotifiesQuestionAuthor(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	questionRepo := new(MockQuestionRepository)
	sender := new(MockNotificationSender)
	_, err := NewOnQuestionCommentCreated(bus, questionRepo, sender)
	require.NoError(t, err)

	question := newQuestion(t, "question-author", "Pergunta sobre canais")
	comment, err := forum.NewQuestionComment(mustAuthorID("commenter"), question.ID(), "Short comment")
	require.NoError(t, err)

	questionRepo.On("FindByID", mock.Anything, question.ID()).Return(question, nil)
	sender.On("ExecuteWithContext", mock.Anything, mock.Anything).Return(&SendNotificationResult{}, nil)

	// Act
	err = bus.DispatchAggregate(nil, comment)

	// Assert
	require.NoError(t, err)
	cmd := sender.Calls[0].Arguments.Get(1).(SendNotificationCommand)
	assert.Equal(t, "question-author", cmd.RecipientID)
	assert.Equal(t, "Novo comentário na sua pergunta Pergunta s...", cmd.Title)
	assert.Equal(t, "Short comment...", cmd.Content)
}

// Test 9: 最佳回答通知回答作者
func TestOnQuestionBestAnswerChosen_NotifiesAnswerAuthor(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	answerRepo := new(MockAnswerRepository)
	sender := new(MockNotificationSender)
	_, err := NewOnQuestionBestAnswerChosen(bus, answerRepo, sender)
	require.NoError(t, err)

	question := newQuestion(t, "question-author", "Como usar goroutines com segurança?")
	answer := newAnswer(t, "answer-author", question.ID(), "content")
	answerRepo.On("FindByID", mock.Anything, answer.ID()).Return(answer, nil)
	sender.On("ExecuteWithContext", mock.Anything, mock.Anything).Return(&SendNotificationResult{}, nil)

	question.SetBestAnswerID(answer.ID())

	// Act
	err = bus.DispatchAggregate(nil, question)

	// Assert
	require.NoError(t, err)
	cmd := sender.Calls[0].Arguments.Get(1).(SendNotificationCommand)
	assert.Equal(t, "answer-author", cmd.RecipientID)
	assert.Equal(t, "Sua resposta foi escolhida", cmd.Title)
	assert.Equal(t, "A resposta que você enviou em Como usar goroutines... foi escolhida pelo autor", cmd.Content)
}

// Test 10: 發送失敗傳回匯流排
func TestOnQuestionBestAnswerChosen_SendFailure_Propagates(t *testing.T) {
	// Arrange
	bus := shared.NewDomainEventBus()
	answerRepo := new(MockAnswerRepository)
	sender := new(MockNotificationSender)
	_, err := NewOnQuestionBestAnswerChosen(bus, answerRepo, sender)
	require.NoError(t, err)

	question := newQuestion(t, "question-author", "title")
	answer := newAnswer(t, "answer-author", question.ID(), "content")
	answerRepo.On("FindByID", mock.Anything, mock.Anything).Return(answer, nil)
	sendErr := errors.New("insert failed")
	sender.On("ExecuteWithContext", mock.Anything, mock.Anything).Return(nil, sendErr)
	question.SetBestAnswerID(answer.ID())

	// Act
	err = bus.DispatchAggregate(nil, question)

	// Assert
	assert.ErrorIs(t, err, sendErr)
	assert.Len(t, question.DomainEvents(), 1)
}
