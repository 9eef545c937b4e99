package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// CreateQuestion Use Case
// ===========================

// CreateQuestionCommand 發問命令
//
// 輸入：
// - AuthorID: 作者 ID
// - Title / Content: 標題與內容（不能為空白）
// - AttachmentIDs: 已上傳的附件 ID（可為空）
type CreateQuestionCommand struct {
	AuthorID      string
	Title         string
	Content       string
	AttachmentIDs []string
}

// CreateQuestionResult 發問結果
type CreateQuestionResult struct {
	Question *forum.Question
}

// CreateQuestionUseCase 發問 Use Case
//
// 職責：
// 1. 驗證輸入並建立 Question 聚合（slug 由標題產生）
// 2. 建立附件關聯
// 3. 在事務中保存問題與附件
type CreateQuestionUseCase struct {
	questionRepo forum.QuestionRepository
	txManager    shared.TransactionManager
}

// NewCreateQuestionUseCase 創建 Use Case 實例
func NewCreateQuestionUseCase(
	questionRepo forum.QuestionRepository,
	txManager shared.TransactionManager,
) *CreateQuestionUseCase {
	return &CreateQuestionUseCase{
		questionRepo: questionRepo,
		txManager:    txManager,
	}
}

// Execute 執行發問
func (uc *CreateQuestionUseCase) Execute(cmd CreateQuestionCommand) (*CreateQuestionResult, error) {
	// 1. 驗證並轉換 ID
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse author ID: %w", err)
	}
	attachmentIDs, err := forum.AttachmentIDsFromStrings(cmd.AttachmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse attachment IDs: %w", err)
	}

	// 2. 建立聚合
	question, err := forum.NewQuestion(authorID, cmd.Title, cmd.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	question.Attachments().Replace(question.ID(), attachmentIDs)

	// 3. 在事務中保存（問題 + 附件）
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if err := uc.questionRepo.Create(ctx, question); err != nil {
			return fmt.Errorf("failed to save question: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateQuestionResult{Question: question}, nil
}
