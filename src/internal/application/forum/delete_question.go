package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// DeleteQuestionCommand 刪除問題命令
type DeleteQuestionCommand struct {
	AuthorID   string
	QuestionID string
}

// DeleteQuestionUseCase 刪除問題 Use Case
//
// 只有作者可以刪除；Repository 的 Delete 同時刪除附件關聯。
type DeleteQuestionUseCase struct {
	questionRepo forum.QuestionRepository
	txManager    shared.TransactionManager
}

// NewDeleteQuestionUseCase 創建 Use Case 實例
func NewDeleteQuestionUseCase(
	questionRepo forum.QuestionRepository,
	txManager shared.TransactionManager,
) *DeleteQuestionUseCase {
	return &DeleteQuestionUseCase{
		questionRepo: questionRepo,
		txManager:    txManager,
	}
}

// Execute 執行刪除
func (uc *DeleteQuestionUseCase) Execute(cmd DeleteQuestionCommand) error {
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return fmt.Errorf("failed to parse author ID: %w", err)
	}
	questionID, err := forum.QuestionIDFromString(cmd.QuestionID)
	if err != nil {
		return fmt.Errorf("failed to parse question ID: %w", err)
	}

	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		question, err := uc.questionRepo.FindByID(ctx, questionID)
		if err != nil {
			return lookupError("question", err)
		}

		if !question.IsAuthoredBy(authorID) {
			return notAllowed("question", cmd.AuthorID)
		}

		if err := uc.questionRepo.Delete(ctx, question); err != nil {
			return fmt.Errorf("failed to delete question: %w", err)
		}
		return nil
	})
}
