package forum

import (
	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// ===========================
// Mock Repositories
// ===========================

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx shared.TransactionContext, question *forum.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) FindByID(ctx shared.TransactionContext, id forum.QuestionID) (*forum.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindBySlug(ctx shared.TransactionContext, slug forum.Slug) (*forum.Question, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindManyRecent(ctx shared.TransactionContext, params shared.PaginationParams) ([]*forum.Question, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.Question), args.Error(1)
}

func (m *MockQuestionRepository) Save(ctx shared.TransactionContext, question *forum.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(ctx shared.TransactionContext, question *forum.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(ctx shared.TransactionContext, answer *forum.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) FindByID(ctx shared.TransactionContext, id forum.AnswerID) (*forum.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.Answer), args.Error(1)
}

func (m *MockAnswerRepository) FindManyByQuestionID(ctx shared.TransactionContext, questionID forum.QuestionID, params shared.PaginationParams) ([]*forum.Answer, error) {
	args := m.Called(ctx, questionID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.Answer), args.Error(1)
}

func (m *MockAnswerRepository) Save(ctx shared.TransactionContext, answer *forum.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) Delete(ctx shared.TransactionContext, answer *forum.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

type MockQuestionCommentRepository struct {
	mock.Mock
}

func (m *MockQuestionCommentRepository) Create(ctx shared.TransactionContext, comment *forum.QuestionComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockQuestionCommentRepository) FindByID(ctx shared.TransactionContext, id forum.QuestionCommentID) (*forum.QuestionComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.QuestionComment), args.Error(1)
}

func (m *MockQuestionCommentRepository) FindManyByQuestionID(ctx shared.TransactionContext, questionID forum.QuestionID, params shared.PaginationParams) ([]*forum.QuestionComment, error) {
	args := m.Called(ctx, questionID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.QuestionComment), args.Error(1)
}

func (m *MockQuestionCommentRepository) Delete(ctx shared.TransactionContext, comment *forum.QuestionComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

type MockAnswerCommentRepository struct {
	mock.Mock
}

func (m *MockAnswerCommentRepository) Create(ctx shared.TransactionContext, comment *forum.AnswerComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockAnswerCommentRepository) FindByID(ctx shared.TransactionContext, id forum.AnswerCommentID) (*forum.AnswerComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.AnswerComment), args.Error(1)
}

func (m *MockAnswerCommentRepository) FindManyByAnswerID(ctx shared.TransactionContext, answerID forum.AnswerID, params shared.PaginationParams) ([]*forum.AnswerComment, error) {
	args := m.Called(ctx, answerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.AnswerComment), args.Error(1)
}

func (m *MockAnswerCommentRepository) Delete(ctx shared.TransactionContext, comment *forum.AnswerComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

type MockQuestionAttachmentRepository struct {
	mock.Mock
}

func (m *MockQuestionAttachmentRepository) CreateMany(ctx shared.TransactionContext, attachments []*forum.QuestionAttachment) error {
	args := m.Called(ctx, attachments)
	return args.Error(0)
}

func (m *MockQuestionAttachmentRepository) DeleteMany(ctx shared.TransactionContext, attachments []*forum.QuestionAttachment) error {
	args := m.Called(ctx, attachments)
	return args.Error(0)
}

func (m *MockQuestionAttachmentRepository) FindManyByQuestionID(ctx shared.TransactionContext, questionID forum.QuestionID) ([]*forum.QuestionAttachment, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.QuestionAttachment), args.Error(1)
}

func (m *MockQuestionAttachmentRepository) DeleteManyByQuestionID(ctx shared.TransactionContext, questionID forum.QuestionID) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

type MockAnswerAttachmentRepository struct {
	mock.Mock
}

func (m *MockAnswerAttachmentRepository) CreateMany(ctx shared.TransactionContext, attachments []*forum.AnswerAttachment) error {
	args := m.Called(ctx, attachments)
	return args.Error(0)
}

func (m *MockAnswerAttachmentRepository) DeleteMany(ctx shared.TransactionContext, attachments []*forum.AnswerAttachment) error {
	args := m.Called(ctx, attachments)
	return args.Error(0)
}

func (m *MockAnswerAttachmentRepository) FindManyByAnswerID(ctx shared.TransactionContext, answerID forum.AnswerID) ([]*forum.AnswerAttachment, error) {
	args := m.Called(ctx, answerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.AnswerAttachment), args.Error(1)
}

func (m *MockAnswerAttachmentRepository) DeleteManyByAnswerID(ctx shared.TransactionContext, answerID forum.AnswerID) error {
	args := m.Called(ctx, answerID)
	return args.Error(0)
}

// ===========================
// Mock TransactionManager
// ===========================

type MockTransactionManager struct {
	InTransactionCallCount int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	// 單元測試使用 nil context
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

func mustAttachmentID(s string) forum.AttachmentID {
	id, err := forum.AttachmentIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func newTestQuestion(authorID string) *forum.Question {
	question, err := forum.NewQuestion(mustAuthorID(authorID), "Example question", "Question content")
	if err != nil {
		panic(err)
	}
	return question
}

func newTestAnswer(authorID string, questionID forum.QuestionID) *forum.Answer {
	answer, err := forum.NewAnswer(mustAuthorID(authorID), questionID, "Answer content")
	if err != nil {
		panic(err)
	}
	answer.ClearEvents()
	return answer
}
