package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// CommentOnQuestion Use Case
// ===========================

// CommentOnQuestionCommand 評論問題命令
type CommentOnQuestionCommand struct {
	AuthorID   string
	QuestionID string
	Content    string
}

// CommentOnQuestionResult 評論結果
type CommentOnQuestionResult struct {
	QuestionComment *forum.QuestionComment
}

// CommentOnQuestionUseCase 評論問題
//
// 問題必須存在；新評論發布 QuestionCommentCreatedEvent。
type CommentOnQuestionUseCase struct {
	questionRepo forum.QuestionRepository
	commentRepo  forum.QuestionCommentRepository
	txManager    shared.TransactionManager
}

// NewCommentOnQuestionUseCase 創建 Use Case 實例
func NewCommentOnQuestionUseCase(
	questionRepo forum.QuestionRepository,
	commentRepo forum.QuestionCommentRepository,
	txManager shared.TransactionManager,
) *CommentOnQuestionUseCase {
	return &CommentOnQuestionUseCase{
		questionRepo: questionRepo,
		commentRepo:  commentRepo,
		txManager:    txManager,
	}
}

// Execute 執行評論
func (uc *CommentOnQuestionUseCase) Execute(cmd CommentOnQuestionCommand) (*CommentOnQuestionResult, error) {
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse author ID: %w", err)
	}
	questionID, err := forum.QuestionIDFromString(cmd.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse question ID: %w", err)
	}

	var result *CommentOnQuestionResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if _, err := uc.questionRepo.FindByID(ctx, questionID); err != nil {
			return lookupError("question", err)
		}

		comment, err := forum.NewQuestionComment(authorID, questionID, cmd.Content)
		if err != nil {
			return fmt.Errorf("failed to create question comment: %w", err)
		}

		if err := uc.commentRepo.Create(ctx, comment); err != nil {
			return fmt.Errorf("failed to save question comment: %w", err)
		}

		result = &CommentOnQuestionResult{QuestionComment: comment}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ===========================
// DeleteQuestionComment Use Case
// ===========================

// DeleteQuestionCommentCommand 刪除問題評論命令
type DeleteQuestionCommentCommand struct {
	AuthorID          string
	QuestionCommentID string
}

// DeleteQuestionCommentUseCase 刪除問題評論（只有評論作者可以刪除）
type DeleteQuestionCommentUseCase struct {
	commentRepo forum.QuestionCommentRepository
	txManager   shared.TransactionManager
}

// NewDeleteQuestionCommentUseCase 創建 Use Case 實例
func NewDeleteQuestionCommentUseCase(
	commentRepo forum.QuestionCommentRepository,
	txManager shared.TransactionManager,
) *DeleteQuestionCommentUseCase {
	return &DeleteQuestionCommentUseCase{
		commentRepo: commentRepo,
		txManager:   txManager,
	}
}

// Execute 執行刪除
func (uc *DeleteQuestionCommentUseCase) Execute(cmd DeleteQuestionCommentCommand) error {
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return fmt.Errorf("failed to parse author ID: %w", err)
	}
	commentID, err := forum.QuestionCommentIDFromString(cmd.QuestionCommentID)
	if err != nil {
		return fmt.Errorf("failed to parse question comment ID: %w", err)
	}

	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		comment, err := uc.commentRepo.FindByID(ctx, commentID)
		if err != nil {
			return lookupError("question comment", err)
		}

		if !comment.IsAuthoredBy(authorID) {
			return notAllowed("question comment", cmd.AuthorID)
		}

		if err := uc.commentRepo.Delete(ctx, comment); err != nil {
			return fmt.Errorf("failed to delete question comment: %w", err)
		}
		return nil
	})
}

// ===========================
// FetchQuestionComments Use Case
// ===========================

// FetchQuestionCommentsQuery 問題評論列表
type FetchQuestionCommentsQuery struct {
	QuestionID string
	Page       int
}

// FetchQuestionCommentsResult 依建立順序
type FetchQuestionCommentsResult struct {
	QuestionComments []*forum.QuestionComment
}

// FetchQuestionCommentsUseCase 列出問題評論
type FetchQuestionCommentsUseCase struct {
	commentRepo forum.QuestionCommentRepository
}

// NewFetchQuestionCommentsUseCase 創建 Use Case 實例
func NewFetchQuestionCommentsUseCase(commentRepo forum.QuestionCommentRepository) *FetchQuestionCommentsUseCase {
	return &FetchQuestionCommentsUseCase{commentRepo: commentRepo}
}

// Execute 執行查詢
func (uc *FetchQuestionCommentsUseCase) Execute(query FetchQuestionCommentsQuery) (*FetchQuestionCommentsResult, error) {
	questionID, err := forum.QuestionIDFromString(query.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse question ID: %w", err)
	}
	params, err := shared.NewPaginationParams(query.Page)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.FindManyByQuestionID(nil, questionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch question comments: %w", err)
	}

	return &FetchQuestionCommentsResult{QuestionComments: comments}, nil
}
