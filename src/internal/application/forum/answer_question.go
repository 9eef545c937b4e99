package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// AnswerQuestion Use Case
// ===========================

// AnswerQuestionCommand 回答問題命令
type AnswerQuestionCommand struct {
	AuthorID      string
	QuestionID    string
	Content       string
	AttachmentIDs []string
}

// AnswerQuestionResult 回答結果
type AnswerQuestionResult struct {
	Answer *forum.Answer
}

// AnswerQuestionUseCase 回答問題 Use Case
//
// 新回答發布 AnswerCreatedEvent；Repository 寫入成功後在同一事務中派發，
// 訂閱者（通知問題作者）的寫入與回答一起提交或回滾。
type AnswerQuestionUseCase struct {
	questionRepo forum.QuestionRepository
	answerRepo   forum.AnswerRepository
	txManager    shared.TransactionManager
}

// NewAnswerQuestionUseCase 創建 Use Case 實例
func NewAnswerQuestionUseCase(
	questionRepo forum.QuestionRepository,
	answerRepo forum.AnswerRepository,
	txManager shared.TransactionManager,
) *AnswerQuestionUseCase {
	return &AnswerQuestionUseCase{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		txManager:    txManager,
	}
}

// Execute 執行回答
func (uc *AnswerQuestionUseCase) Execute(cmd AnswerQuestionCommand) (*AnswerQuestionResult, error) {
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse author ID: %w", err)
	}
	questionID, err := forum.QuestionIDFromString(cmd.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse question ID: %w", err)
	}
	attachmentIDs, err := forum.AttachmentIDsFromStrings(cmd.AttachmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse attachment IDs: %w", err)
	}

	var result *AnswerQuestionResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if _, err := uc.questionRepo.FindByID(ctx, questionID); err != nil {
			return lookupError("question", err)
		}

		answer, err := forum.NewAnswer(authorID, questionID, cmd.Content)
		if err != nil {
			return fmt.Errorf("failed to create answer: %w", err)
		}
		answer.Attachments().Replace(answer.ID(), attachmentIDs)

		if err := uc.answerRepo.Create(ctx, answer); err != nil {
			return fmt.Errorf("failed to save answer: %w", err)
		}

		result = &AnswerQuestionResult{Answer: answer}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
