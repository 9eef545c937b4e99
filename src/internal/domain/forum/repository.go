package forum

import "github.com/jackyeh168/qa_forum/src/internal/domain/shared"

// ===========================
// Repository 介面
// ===========================
//
// 介面定義在 Domain Layer，由 Infrastructure 實作（GORM、記憶體）。
//
// 共同約定：
// - ctx 可為 nil（auto-commit），多筆寫入由用例在事務中呼叫
// - 查無資料返回 shared.ErrResourceNotFound 代碼的錯誤
// - Create / Save 成功後，實作必須以同一個 ctx 呼叫
//   DomainEventBus.DispatchAggregate 派發聚合緩衝的事件
// - 分頁由實作套用（每頁 shared.PageSize 筆）

// QuestionRepository 問題倉儲
//
// Create 同時寫入 Attachments().GetItems()；
// Save 套用附件清單差異（新增 GetNewItems、刪除 GetRemovedItems）；
// Delete 同時刪除問題的所有附件關聯。
type QuestionRepository interface {
	Create(ctx shared.TransactionContext, question *Question) error
	FindByID(ctx shared.TransactionContext, id QuestionID) (*Question, error)
	FindBySlug(ctx shared.TransactionContext, slug Slug) (*Question, error)
	// FindManyRecent 依建立時間由新到舊
	FindManyRecent(ctx shared.TransactionContext, params shared.PaginationParams) ([]*Question, error)
	Save(ctx shared.TransactionContext, question *Question) error
	Delete(ctx shared.TransactionContext, question *Question) error
}

// AnswerRepository 回答倉儲（附件處理同 QuestionRepository）
type AnswerRepository interface {
	Create(ctx shared.TransactionContext, answer *Answer) error
	FindByID(ctx shared.TransactionContext, id AnswerID) (*Answer, error)
	// FindManyByQuestionID 依建立順序
	FindManyByQuestionID(ctx shared.TransactionContext, questionID QuestionID, params shared.PaginationParams) ([]*Answer, error)
	Save(ctx shared.TransactionContext, answer *Answer) error
	Delete(ctx shared.TransactionContext, answer *Answer) error
}

// QuestionCommentRepository 問題評論倉儲
type QuestionCommentRepository interface {
	Create(ctx shared.TransactionContext, comment *QuestionComment) error
	FindByID(ctx shared.TransactionContext, id QuestionCommentID) (*QuestionComment, error)
	FindManyByQuestionID(ctx shared.TransactionContext, questionID QuestionID, params shared.PaginationParams) ([]*QuestionComment, error)
	Delete(ctx shared.TransactionContext, comment *QuestionComment) error
}

// AnswerCommentRepository 回答評論倉儲
type AnswerCommentRepository interface {
	Create(ctx shared.TransactionContext, comment *AnswerComment) error
	FindByID(ctx shared.TransactionContext, id AnswerCommentID) (*AnswerComment, error)
	FindManyByAnswerID(ctx shared.TransactionContext, answerID AnswerID, params shared.PaginationParams) ([]*AnswerComment, error)
	Delete(ctx shared.TransactionContext, comment *AnswerComment) error
}

// QuestionAttachmentRepository 問題附件關聯倉儲
type QuestionAttachmentRepository interface {
	CreateMany(ctx shared.TransactionContext, attachments []*QuestionAttachment) error
	DeleteMany(ctx shared.TransactionContext, attachments []*QuestionAttachment) error
	FindManyByQuestionID(ctx shared.TransactionContext, questionID QuestionID) ([]*QuestionAttachment, error)
	DeleteManyByQuestionID(ctx shared.TransactionContext, questionID QuestionID) error
}

// AnswerAttachmentRepository 回答附件關聯倉儲
type AnswerAttachmentRepository interface {
	CreateMany(ctx shared.TransactionContext, attachments []*AnswerAttachment) error
	DeleteMany(ctx shared.TransactionContext, attachments []*AnswerAttachment) error
	FindManyByAnswerID(ctx shared.TransactionContext, answerID AnswerID) ([]*AnswerAttachment, error)
	DeleteManyByAnswerID(ctx shared.TransactionContext, answerID AnswerID) error
}
