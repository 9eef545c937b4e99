package forum

import (
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// ===========================
// CommentOnAnswer Use Case
// ===========================

// CommentOnAnswerCommand 評論回答命令
type CommentOnAnswerCommand struct {
	AuthorID string
	AnswerID string
	Content  string
}

// CommentOnAnswerResult 評論結果
type CommentOnAnswerResult struct {
	AnswerComment *forum.AnswerComment
}

// CommentOnAnswerUseCase 評論回答
//
// 回答必須存在；新評論發布 AnswerCommentCreatedEvent。
type CommentOnAnswerUseCase struct {
	answerRepo  forum.AnswerRepository
	commentRepo forum.AnswerCommentRepository
	txManager   shared.TransactionManager
}

// NewCommentOnAnswerUseCase 創建 Use Case 實例
func NewCommentOnAnswerUseCase(
	answerRepo forum.AnswerRepository,
	commentRepo forum.AnswerCommentRepository,
	txManager shared.TransactionManager,
) *CommentOnAnswerUseCase {
	return &CommentOnAnswerUseCase{
		answerRepo:  answerRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
	}
}

// Execute 執行評論
func (uc *CommentOnAnswerUseCase) Execute(cmd CommentOnAnswerCommand) (*CommentOnAnswerResult, error) {
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse author ID: %w", err)
	}
	answerID, err := forum.AnswerIDFromString(cmd.AnswerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse answer ID: %w", err)
	}

	var result *CommentOnAnswerResult
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if _, err := uc.answerRepo.FindByID(ctx, answerID); err != nil {
			return lookupError("answer", err)
		}

		comment, err := forum.NewAnswerComment(authorID, answerID, cmd.Content)
		if err != nil {
			return fmt.Errorf("failed to create answer comment: %w", err)
		}

		if err := uc.commentRepo.Create(ctx, comment); err != nil {
			return fmt.Errorf("failed to save answer comment: %w", err)
		}

		result = &CommentOnAnswerResult{AnswerComment: comment}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ===========================
// DeleteAnswerComment Use Case
// ===========================

// DeleteAnswerCommentCommand 刪除回答評論命令
type DeleteAnswerCommentCommand struct {
	AuthorID        string
	AnswerCommentID string
}

// DeleteAnswerCommentUseCase 刪除回答評論（只有評論作者可以刪除）
type DeleteAnswerCommentUseCase struct {
	commentRepo forum.AnswerCommentRepository
	txManager   shared.TransactionManager
}

// NewDeleteAnswerCommentUseCase 創建 Use Case 實例
func NewDeleteAnswerCommentUseCase(
	commentRepo forum.AnswerCommentRepository,
	txManager shared.TransactionManager,
) *DeleteAnswerCommentUseCase {
	return &DeleteAnswerCommentUseCase{
		commentRepo: commentRepo,
		txManager:   txManager,
	}
}

// Execute 執行刪除
func (uc *DeleteAnswerCommentUseCase) Execute(cmd DeleteAnswerCommentCommand) error {
	authorID, err := forum.AuthorIDFromString(cmd.AuthorID)
	if err != nil {
		return fmt.Errorf("failed to parse author ID: %w", err)
	}
	commentID, err := forum.AnswerCommentIDFromString(cmd.AnswerCommentID)
	if err != nil {
		return fmt.Errorf("failed to parse answer comment ID: %w", err)
	}

	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		comment, err := uc.commentRepo.FindByID(ctx, commentID)
		if err != nil {
			return lookupError("answer comment", err)
		}

		if !comment.IsAuthoredBy(authorID) {
			return notAllowed("answer comment", cmd.AuthorID)
		}

		if err := uc.commentRepo.Delete(ctx, comment); err != nil {
			return fmt.Errorf("failed to delete answer comment: %w", err)
		}
		return nil
	})
}

// ===========================
// FetchAnswerComments Use Case
// ===========================

// FetchAnswerCommentsQuery 回答評論列表
type FetchAnswerCommentsQuery struct {
	AnswerID string
	Page     int
}

// FetchAnswerCommentsResult 依建立順序
type FetchAnswerCommentsResult struct {
	AnswerComments []*forum.AnswerComment
}

// FetchAnswerCommentsUseCase 列出回答評論
type FetchAnswerCommentsUseCase struct {
	commentRepo forum.AnswerCommentRepository
}

// NewFetchAnswerCommentsUseCase 創建 Use Case 實例
func NewFetchAnswerCommentsUseCase(commentRepo forum.AnswerCommentRepository) *FetchAnswerCommentsUseCase {
	return &FetchAnswerCommentsUseCase{commentRepo: commentRepo}
}

// Execute 執行查詢
func (uc *FetchAnswerCommentsUseCase) Execute(query FetchAnswerCommentsQuery) (*FetchAnswerCommentsResult, error) {
	answerID, err := forum.AnswerIDFromString(query.AnswerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse answer ID: %w", err)
	}
	params, err := shared.NewPaginationParams(query.Page)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.FindManyByAnswerID(nil, answerID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch answer comments: %w", err)
	}

	return &FetchAnswerCommentsResult{AnswerComments: comments}, nil
}
