package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// FetchRecentQuestionsQuery 最新問題列表查詢（頁碼從 1 開始）
type FetchRecentQuestionsQuery struct {
	Page int
}

// FetchRecentQuestionsResult 依建立時間由新到舊
type FetchRecentQuestionsResult struct {
	Questions []*forum.Question
}

// FetchRecentQuestionsUseCase 列出最新問題
type FetchRecentQuestionsUseCase struct {
	questionRepo forum.QuestionRepository
}

// NewFetchRecentQuestionsUseCase 創建 Use Case 實例
func NewFetchRecentQuestionsUseCase(questionRepo forum.QuestionRepository) *FetchRecentQuestionsUseCase {
	return &FetchRecentQuestionsUseCase{questionRepo: questionRepo}
}

// Execute 執行查詢
func (uc *FetchRecentQuestionsUseCase) Execute(query FetchRecentQuestionsQuery) (*FetchRecentQuestionsResult, error) {
	params, err := shared.NewPaginationParams(query.Page)
	if err != nil {
		return nil, err
	}

	questions, err := uc.questionRepo.FindManyRecent(nil, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent questions: %w", err)
	}

	return &FetchRecentQuestionsResult{Questions: questions}, nil
}
