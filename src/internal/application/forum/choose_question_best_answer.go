package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// ChooseQuestionBestAnswer Use Case
// ===========================

// ChooseQuestionBestAnswerCommand 選出最佳回答命令
//
// AuthorID 必須是問題（不是回答）的作者
type ChooseQuestionBestAnswerCommand struct {
	AuthorID string
	AnswerID string
}

// ChooseQuestionBestAnswerResult 選擇結果
type ChooseQuestionBestAnswerResult struct {
	Question *forum.Question
}

// ChooseQuestionBestAnswerUseCase 選出最佳回答 Use Case
//
// 執行流程：
// 1. 查找回答，再查找回答所屬的問題（任一不存在 → ResourceNotFound）
// 2. 檢查問題作者（NotAllowed）
// 3. SetBestAnswerID（發布 QuestionBestAnswerChosenEvent）並保存
type ChooseQuestionBestAnswerUseCase struct {
	questionRepo forum.QuestionRepository
	answerRepo   forum.AnswerRepository
	txManager    shared.TransactionManager
}

// NewChooseQuestionBestAnswerUseCase 創建 Use Case 實例
func NewChooseQuestionBestAnswerUseCase(
	questionRepo forum.QuestionRepository,
	answerRepo forum.AnswerRepository,
	txManager shared.TransactionManager,
) *ChooseQuestionBestAnswerUseCase {
	return &ChooseQuestionBestAnswerUseCase{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		txManager:    txManager,
	}
}

// Execute 執行選擇
func (uc *ChooseQuestionBestAnswerUseCase) Execute(cmd ChooseQuestionBestAnswerCommand) (*ChooseQuestionBestAnswerResult, error) {
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse author ID: %w", err)
	}
	answerID, err := forum.AnswerIDFromString(cmd.AnswerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse answer ID: %w", err)
	}

	var result *ChooseQuestionBestAnswerResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		answer, err := uc.answerRepo.FindByID(ctx, answerID)
		if err != nil {
			return lookupError("answer", err)
		}

		question, err := uc.questionRepo.FindByID(ctx, answer.QuestionID())
		if err != nil {
			return lookupError("question", err)
		}

		if !question.IsAuthoredBy(authorID) {
			return notAllowed("question", cmd.AuthorID)
		}

		question.SetBestAnswerID(answer.ID())

		if err := uc.questionRepo.Save(ctx, question); err != nil {
			return fmt.Errorf("failed to save question: %w", err)
		}

		result = &ChooseQuestionBestAnswerResult{Question: question}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
