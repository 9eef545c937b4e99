package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// DeleteAnswerCommand 刪除回答命令
type DeleteAnswerCommand struct {
	AuthorID string
	AnswerID string
}

// DeleteAnswerUseCase 刪除回答 Use Case（只有作者可以刪除）
type DeleteAnswerUseCase struct {
	answerRepo forum.AnswerRepository
	txManager  shared.TransactionManager
}

// NewDeleteAnswerUseCase 創建 Use Case 實例
func NewDeleteAnswerUseCase(
	answerRepo forum.AnswerRepository,
	txManager shared.TransactionManager,
) *DeleteAnswerUseCase {
	return &DeleteAnswerUseCase{
		answerRepo: answerRepo,
		txManager:  txManager,
	}
}

// Execute 執行刪除
func (uc *DeleteAnswerUseCase) Execute(cmd DeleteAnswerCommand) error {
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return fmt.Errorf("failed to parse author ID: %w", err)
	}
	answerID, err := forum.AnswerIDFromString(cmd.AnswerID)
	if err != nil {
		return fmt.Errorf("failed to parse answer ID: %w", err)
	}

	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		answer, err := uc.answerRepo.FindByID(ctx, answerID)
		if err != nil {
			return lookupError("answer", err)
		}

		if !answer.IsAuthoredBy(authorID) {
			return notAllowed("answer", cmd.AuthorID)
		}

		if err := uc.answerRepo.Delete(ctx, answer); err != nil {
			return fmt.Errorf("failed to delete answer: %w", err)
		}
		return nil
	})
}
