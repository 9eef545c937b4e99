package forum

import (
	"strings"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// GetQuestionBySlugQuery 以 slug 查詢問題
type GetQuestionBySlugQuery struct {
	Slug string
}

// GetQuestionBySlugResult 查詢結果
type GetQuestionBySlugResult struct {
	Question *forum.Question
}

// GetQuestionBySlugUseCase 以 slug 查詢問題（唯讀，不開事務）
type GetQuestionBySlugUseCase struct {
	questionRepo forum.QuestionRepository
}

// NewGetQuestionBySlugUseCase 創建 Use Case 實例
func NewGetQuestionBySlugUseCase(questionRepo forum.QuestionRepository) *GetQuestionBySlugUseCase {
	return &GetQuestionBySlugUseCase{questionRepo: questionRepo}
}

// Execute 執行查詢
//
// 錯誤：
// - ErrInvalidArgument: slug 為空
// - ResourceNotFound: 找不到問題
func (uc *GetQuestionBySlugUseCase) Execute(query GetQuestionBySlugQuery) (*GetQuestionBySlugResult, error) {
	if strings.TrimSpace(query.Slug) == "" {
		return nil, shared.ErrInvalidArgument.WithContext("slug", query.Slug)
	}

	question, err := uc.questionRepo.FindBySlug(nil, forum.SlugFromString(query.Slug))
	if err != nil {
		return nil, lookupError("question", err)
	}

	return &GetQuestionBySlugResult{Question: question}, nil
}
