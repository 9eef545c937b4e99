package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// FetchQuestionAnswersQuery 問題的回答列表
type FetchQuestionAnswersQuery struct {
	QuestionID string
	Page       int
}

// FetchQuestionAnswersResult 依建立順序
type FetchQuestionAnswersResult struct {
	Answers []*forum.Answer
}

// FetchQuestionAnswersUseCase 列出問題的回答
type FetchQuestionAnswersUseCase struct {
	answerRepo forum.AnswerRepository
}

// NewFetchQuestionAnswersUseCase 創建 Use Case 實例
func NewFetchQuestionAnswersUseCase(answerRepo forum.AnswerRepository) *FetchQuestionAnswersUseCase {
	return &FetchQuestionAnswersUseCase{answerRepo: answerRepo}
}

// Execute 執行查詢
func (uc *FetchQuestionAnswersUseCase) Execute(query FetchQuestionAnswersQuery) (*FetchQuestionAnswersResult, error) {
	questionID, err := forum.QuestionIDFromString(query.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse question ID: %w", err)
	}
	params, err := shared.NewPaginationParams(query.Page)
	if err != nil {
		return nil, err
	}

	answers, err := uc.answerRepo.FindManyByQuestionID(nil, questionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch answers: %w", err)
	}

	return &FetchQuestionAnswersResult{Answers: answers}, nil
}
