package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// EditAnswerCommand 編輯回答命令（AttachmentIDs 為完整集合）
type EditAnswerCommand struct {
	AuthorID      string
	AnswerID      string
	Content       string
	AttachmentIDs []string
}

// EditAnswerResult 編輯結果
type EditAnswerResult struct {
	Answer *forum.Answer
}

// EditAnswerUseCase 編輯回答 Use Case（流程同 EditQuestionUseCase）
type EditAnswerUseCase struct {
	answerRepo     forum.AnswerRepository
	attachmentRepo forum.AnswerAttachmentRepository
	txManager      shared.TransactionManager
}

// NewEditAnswerUseCase 創建 Use Case 實例
func NewEditAnswerUseCase(
	answerRepo forum.AnswerRepository,
	attachmentRepo forum.AnswerAttachmentRepository,
	txManager shared.TransactionManager,
) *EditAnswerUseCase {
	return &EditAnswerUseCase{
		answerRepo:     answerRepo,
		attachmentRepo: attachmentRepo,
		txManager:      txManager,
	}
}

// Execute 執行編輯
func (uc *EditAnswerUseCase) Execute(cmd EditAnswerCommand) (*EditAnswerResult, error) {
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse author ID: %w", err)
	}
	answerID, err := forum.AnswerIDFromString(cmd.AnswerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse answer ID: %w", err)
	}
	attachmentIDs, err := forum.AttachmentIDsFromStrings(cmd.AttachmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse attachment IDs: %w", err)
	}

	var result *EditAnswerResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		answer, err := uc.answerRepo.FindByID(ctx, answerID)
		if err != nil {
			return lookupError("answer", err)
		}

		if !answer.IsAuthoredBy(authorID) {
			return notAllowed("answer", cmd.AuthorID)
		}

		current, err := uc.attachmentRepo.FindManyByAnswerID(ctx, answerID)
		if err != nil {
			return fmt.Errorf("failed to load answer attachments: %w", err)
		}
		attachments := forum.NewAnswerAttachmentList(current)
		attachments.Replace(answerID, attachmentIDs)

		if err := answer.SetContent(cmd.Content); err != nil {
			return err
		}
		answer.SetAttachments(attachments)

		if err := uc.answerRepo.Save(ctx, answer); err != nil {
			return fmt.Errorf("failed to save answer: %w", err)
		}

		result = &EditAnswerResult{Answer: answer}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
