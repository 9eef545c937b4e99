package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// EditQuestion Use Case
// ===========================

// EditQuestionCommand 編輯問題命令
//
// AttachmentIDs 是編輯後完整的附件集合（不是增量）
type EditQuestionCommand struct {
	AuthorID      string
	QuestionID    string
	Title         string
	Content       string
	AttachmentIDs []string
}

// EditQuestionResult 編輯結果
type EditQuestionResult struct {
	Question *forum.Question
}

// EditQuestionUseCase 編輯問題 Use Case
//
// 執行流程：
// 1. 查找問題（ResourceNotFound）
// 2. 檢查作者（NotAllowed，且不寫入任何資料）
// 3. 載入目前附件作為 WatchedList 基準，以新集合 Replace
// 4. 修改標題與內容，保存（Repository 套用附件差異）
type EditQuestionUseCase struct {
	questionRepo   forum.QuestionRepository
	attachmentRepo forum.QuestionAttachmentRepository
	txManager      shared.TransactionManager
}

// NewEditQuestionUseCase 創建 Use Case 實例
func NewEditQuestionUseCase(
	questionRepo forum.QuestionRepository,
	attachmentRepo forum.QuestionAttachmentRepository,
	txManager shared.TransactionManager,
) *EditQuestionUseCase {
	return &EditQuestionUseCase{
		questionRepo:   questionRepo,
		attachmentRepo: attachmentRepo,
		txManager:      txManager,
	}
}

// Execute 執行編輯
func (uc *EditQuestionUseCase) Execute(cmd EditQuestionCommand) (*EditQuestionResult, error) {
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

	var result *EditQuestionResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		question, err := uc.questionRepo.FindByID(ctx, questionID)
		if err != nil {
			return lookupError("question", err)
		}

		if !question.IsAuthoredBy(authorID) {
			return notAllowed("question", cmd.AuthorID)
		}

		current, err := uc.attachmentRepo.FindManyByQuestionID(ctx, questionID)
		if err != nil {
			return fmt.Errorf("failed to load question attachments: %w", err)
		}
		attachments := forum.NewQuestionAttachmentList(current)
		attachments.Replace(questionID, attachmentIDs)

		if err := question.SetTitle(cmd.Title); err != nil {
			return err
		}
		if err := question.SetContent(cmd.Content); err != nil {
			return err
		}
		question.SetAttachments(attachments)

		if err := uc.questionRepo.Save(ctx, question); err != nil {
			return fmt.Errorf("failed to save question: %w", err)
		}

		result = &EditQuestionResult{Question: question}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
