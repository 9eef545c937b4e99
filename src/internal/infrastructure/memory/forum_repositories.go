package memory

import (
	"slices"
	"strings"
	"sync"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

var (
	_ forum.QuestionRepository           = (*QuestionRepository)(nil)
	_ forum.AnswerRepository             = (*AnswerRepository)(nil)
	_ forum.QuestionCommentRepository    = (*QuestionCommentRepository)(nil)
	_ forum.AnswerCommentRepository      = (*AnswerCommentRepository)(nil)
	_ forum.QuestionAttachmentRepository = (*QuestionAttachmentRepository)(nil)
	_ forum.AnswerAttachmentRepository   = (*AnswerAttachmentRepository)(nil)
)

// ===========================
// 快照（不含事件與附件）
// ===========================

func copyQuestion(q *forum.Question) *forum.Question {
	return forum.ReconstructQuestion(q.ID(), q.AuthorID(), q.BestAnswerID(), q.Title(), q.Content(),
		q.Slug(), nil, q.CreatedAt(), copyTime(q.UpdatedAt()))
}

func copyAnswer(a *forum.Answer) *forum.Answer {
	return forum.ReconstructAnswer(a.ID(), a.AuthorID(), a.QuestionID(), a.Content(),
		nil, a.CreatedAt(), copyTime(a.UpdatedAt()))
}

func copyQuestionComment(c *forum.QuestionComment) *forum.QuestionComment {
	return forum.ReconstructQuestionComment(c.ID(), c.AuthorID(), c.QuestionID(), c.Content(),
		c.CreatedAt(), copyTime(c.UpdatedAt()))
}

func copyAnswerComment(c *forum.AnswerComment) *forum.AnswerComment {
	return forum.ReconstructAnswerComment(c.ID(), c.AuthorID(), c.AnswerID(), c.Content(),
		c.CreatedAt(), copyTime(c.UpdatedAt()))
}

// ===========================
// QuestionRepository
// ===========================

// QuestionRepository 記憶體問題倉儲（依建立順序保存）
type QuestionRepository struct {
	mu             sync.RWMutex
	items          []*forum.Question
	bus            *shared.DomainEventBus
	attachmentRepo forum.QuestionAttachmentRepository
}

func NewQuestionRepository(bus *shared.DomainEventBus, attachmentRepo forum.QuestionAttachmentRepository) *QuestionRepository {
	return &QuestionRepository{bus: bus, attachmentRepo: attachmentRepo}
}

func (r *QuestionRepository) Create(ctx shared.TransactionContext, question *forum.Question) error {
	r.mu.Lock()
	r.items = append(r.items, copyQuestion(question))
	r.mu.Unlock()

	if err := r.attachmentRepo.CreateMany(ctx, question.Attachments().GetItems()); err != nil {
		return err
	}
	return dispatch(r.bus, ctx, question)
}

func (r *QuestionRepository) FindByID(_ shared.TransactionContext, id forum.QuestionID) (*forum.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.items {
		if q.ID().Equals(id) {
			return copyQuestion(q), nil
		}
	}
	return nil, forum.ErrQuestionNotFound.WithContext("question_id", id.String())
}

func (r *QuestionRepository) FindBySlug(_ shared.TransactionContext, slug forum.Slug) (*forum.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var earliest *forum.Question
	for _, q := range r.items {
		if !q.Slug().Equals(slug) {
			continue
		}
		if earliest == nil || compareQuestions(q, earliest) < 0 {
			earliest = q
		}
	}
	if earliest == nil {
		return nil, forum.ErrQuestionNotFound.WithContext("slug", slug.String())
	}
	return copyQuestion(earliest), nil
}

func compareQuestions(a, b *forum.Question) int {
	return compareCreated(a.CreatedAt(), a.ID().String(), b.CreatedAt(), b.ID().String())
}

// FindManyRecent 依建立時間由新到舊（時間相同時依 ID 遞增）
func (r *QuestionRepository) FindManyRecent(_ shared.TransactionContext, params shared.PaginationParams) ([]*forum.Question, error) {
	r.mu.RLock()
	sorted := slices.Clone(r.items)
	r.mu.RUnlock()

	slices.SortFunc(sorted, func(a, b *forum.Question) int {
		if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})

	page := shared.Paginate(sorted, params)
	for i, q := range page {
		page[i] = copyQuestion(q)
	}
	return page, nil
}

func (r *QuestionRepository) Save(ctx shared.TransactionContext, question *forum.Question) error {
	r.mu.Lock()
	idx := slices.IndexFunc(r.items, func(q *forum.Question) bool { return q.ID().Equals(question.ID()) })
	if idx < 0 {
		r.mu.Unlock()
		return forum.ErrQuestionNotFound.WithContext("question_id", question.ID().String())
	}
	r.items[idx] = copyQuestion(question)
	r.mu.Unlock()

	attachments := question.Attachments()
	if err := r.attachmentRepo.CreateMany(ctx, attachments.GetNewItems()); err != nil {
		return err
	}
	if err := r.attachmentRepo.DeleteMany(ctx, attachments.GetRemovedItems()); err != nil {
		return err
	}
	return dispatch(r.bus, ctx, question)
}

func (r *QuestionRepository) Delete(ctx shared.TransactionContext, question *forum.Question) error {
	r.mu.Lock()
	r.items = slices.DeleteFunc(r.items, func(q *forum.Question) bool { return q.ID().Equals(question.ID()) })
	r.mu.Unlock()

	return r.attachmentRepo.DeleteManyByQuestionID(ctx, question.ID())
}

// ===========================
// AnswerRepository
// ===========================

// AnswerRepository 記憶體回答倉儲
type AnswerRepository struct {
	mu             sync.RWMutex
	items          []*forum.Answer
	bus            *shared.DomainEventBus
	attachmentRepo forum.AnswerAttachmentRepository
}

func NewAnswerRepository(bus *shared.DomainEventBus, attachmentRepo forum.AnswerAttachmentRepository) *AnswerRepository {
	return &AnswerRepository{bus: bus, attachmentRepo: attachmentRepo}
}

func (r *AnswerRepository) Create(ctx shared.TransactionContext, answer *forum.Answer) error {
	r.mu.Lock()
	r.items = append(r.items, copyAnswer(answer))
	r.mu.Unlock()

	if err := r.attachmentRepo.CreateMany(ctx, answer.Attachments().GetItems()); err != nil {
		return err
	}
	return dispatch(r.bus, ctx, answer)
}

func (r *AnswerRepository) FindByID(_ shared.TransactionContext, id forum.AnswerID) (*forum.Answer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.items {
		if a.ID().Equals(id) {
			return copyAnswer(a), nil
		}
	}
	return nil, forum.ErrAnswerNotFound.WithContext("answer_id", id.String())
}

func (r *AnswerRepository) FindManyByQuestionID(_ shared.TransactionContext, questionID forum.QuestionID, params shared.PaginationParams) ([]*forum.Answer, error) {
	r.mu.RLock()
	var matched []*forum.Answer
	for _, a := range r.items {
		if a.QuestionID().Equals(questionID) {
			matched = append(matched, copyAnswer(a))
		}
	}
	r.mu.RUnlock()
	slices.SortFunc(matched, func(a, b *forum.Answer) int {
		return compareCreated(a.CreatedAt(), a.ID().String(), b.CreatedAt(), b.ID().String())
	})
	return shared.Paginate(matched, params), nil
}

func (r *AnswerRepository) Save(ctx shared.TransactionContext, answer *forum.Answer) error {
	r.mu.Lock()
	idx := slices.IndexFunc(r.items, func(a *forum.Answer) bool { return a.ID().Equals(answer.ID()) })
	if idx < 0 {
		r.mu.Unlock()
		return forum.ErrAnswerNotFound.WithContext("answer_id", answer.ID().String())
	}
	r.items[idx] = copyAnswer(answer)
	r.mu.Unlock()

	attachments := answer.Attachments()
	if err := r.attachmentRepo.CreateMany(ctx, attachments.GetNewItems()); err != nil {
		return err
	}
	if err := r.attachmentRepo.DeleteMany(ctx, attachments.GetRemovedItems()); err != nil {
		return err
	}
	return dispatch(r.bus, ctx, answer)
}

func (r *AnswerRepository) Delete(ctx shared.TransactionContext, answer *forum.Answer) error {
	r.mu.Lock()
	r.items = slices.DeleteFunc(r.items, func(a *forum.Answer) bool { return a.ID().Equals(answer.ID()) })
	r.mu.Unlock()

	return r.attachmentRepo.DeleteManyByAnswerID(ctx, answer.ID())
}

// ===========================
// Comment Repositories
// ===========================

// QuestionCommentRepository 記憶體問題評論倉儲
type QuestionCommentRepository struct {
	mu    sync.RWMutex
	items []*forum.QuestionComment
	bus   *shared.DomainEventBus
}

func NewQuestionCommentRepository(bus *shared.DomainEventBus) *QuestionCommentRepository {
	return &QuestionCommentRepository{bus: bus}
}

func (r *QuestionCommentRepository) Create(ctx shared.TransactionContext, comment *forum.QuestionComment) error {
	r.mu.Lock()
	r.items = append(r.items, copyQuestionComment(comment))
	r.mu.Unlock()
	return dispatch(r.bus, ctx, comment)
}

func (r *QuestionCommentRepository) FindByID(_ shared.TransactionContext, id forum.QuestionCommentID) (*forum.QuestionComment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID().Equals(id) {
			return copyQuestionComment(c), nil
		}
	}
	return nil, forum.ErrQuestionCommentNotFound.WithContext("question_comment_id", id.String())
}

func (r *QuestionCommentRepository) FindManyByQuestionID(_ shared.TransactionContext, questionID forum.QuestionID, params shared.PaginationParams) ([]*forum.QuestionComment, error) {
	r.mu.RLock()
	var matched []*forum.QuestionComment
	for _, c := range r.items {
		if c.QuestionID().Equals(questionID) {
			matched = append(matched, copyQuestionComment(c))
		}
	}
	r.mu.RUnlock()
	slices.SortFunc(matched, func(a, b *forum.QuestionComment) int {
		return compareCreated(a.CreatedAt(), a.ID().String(), b.CreatedAt(), b.ID().String())
	})
	return shared.Paginate(matched, params), nil
}

func (r *QuestionCommentRepository) Delete(_ shared.TransactionContext, comment *forum.QuestionComment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.DeleteFunc(r.items, func(c *forum.QuestionComment) bool { return c.ID().Equals(comment.ID()) })
	return nil
}

// AnswerCommentRepository 記憶體回答評論倉儲
type AnswerCommentRepository struct {
	mu    sync.RWMutex
	items []*forum.AnswerComment
	bus   *shared.DomainEventBus
}

func NewAnswerCommentRepository(bus *shared.DomainEventBus) *AnswerCommentRepository {
	return &AnswerCommentRepository{bus: bus}
}

func (r *AnswerCommentRepository) Create(ctx shared.TransactionContext, comment *forum.AnswerComment) error {
	r.mu.Lock()
	r.items = append(r.items, copyAnswerComment(comment))
	r.mu.Unlock()
	return dispatch(r.bus, ctx, comment)
}

func (r *AnswerCommentRepository) FindByID(_ shared.TransactionContext, id forum.AnswerCommentID) (*forum.AnswerComment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID().Equals(id) {
			return copyAnswerComment(c), nil
		}
	}
	return nil, forum.ErrAnswerCommentNotFound.WithContext("answer_comment_id", id.String())
}

func (r *AnswerCommentRepository) FindManyByAnswerID(_ shared.TransactionContext, answerID forum.AnswerID, params shared.PaginationParams) ([]*forum.AnswerComment, error) {
	r.mu.RLock()
	var matched []*forum.AnswerComment
	for _, c := range r.items {
		if c.AnswerID().Equals(answerID) {
			matched = append(matched, copyAnswerComment(c))
		}
	}
	r.mu.RUnlock()
	slices.SortFunc(matched, func(a, b *forum.AnswerComment) int {
		return compareCreated(a.CreatedAt(), a.ID().String(), b.CreatedAt(), b.ID().String())
	})
	return shared.Paginate(matched, params), nil
}

func (r *AnswerCommentRepository) Delete(_ shared.TransactionContext, comment *forum.AnswerComment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.DeleteFunc(r.items, func(c *forum.AnswerComment) bool { return c.ID().Equals(comment.ID()) })
	return nil
}

// ===========================
// Attachment Repositories
// ===========================

// QuestionAttachmentRepository 記憶體問題附件關聯倉儲（關聯列不可變，直接共用）
type QuestionAttachmentRepository struct {
	mu    sync.RWMutex
	items []*forum.QuestionAttachment
}

func NewQuestionAttachmentRepository() *QuestionAttachmentRepository {
	return &QuestionAttachmentRepository{}
}

func (r *QuestionAttachmentRepository) CreateMany(_ shared.TransactionContext, attachments []*forum.QuestionAttachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, attachments...)
	return nil
}

// DeleteMany 依問題與附件 ID 刪除
func (r *QuestionAttachmentRepository) DeleteMany(_ shared.TransactionContext, attachments []*forum.QuestionAttachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.DeleteFunc(r.items, func(item *forum.QuestionAttachment) bool {
		return slices.ContainsFunc(attachments, func(removed *forum.QuestionAttachment) bool {
			return item.QuestionID().Equals(removed.QuestionID()) && item.AttachmentID().Equals(removed.AttachmentID())
		})
	})
	return nil
}

func (r *QuestionAttachmentRepository) FindManyByQuestionID(_ shared.TransactionContext, questionID forum.QuestionID) ([]*forum.QuestionAttachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := []*forum.QuestionAttachment{}
	for _, a := range r.items {
		if a.QuestionID().Equals(questionID) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *QuestionAttachmentRepository) DeleteManyByQuestionID(_ shared.TransactionContext, questionID forum.QuestionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.DeleteFunc(r.items, func(a *forum.QuestionAttachment) bool { return a.QuestionID().Equals(questionID) })
	return nil
}

// AnswerAttachmentRepository 記憶體回答附件關聯倉儲
type AnswerAttachmentRepository struct {
	mu    sync.RWMutex
	items []*forum.AnswerAttachment
}

func NewAnswerAttachmentRepository() *AnswerAttachmentRepository {
	return &AnswerAttachmentRepository{}
}

func (r *AnswerAttachmentRepository) CreateMany(_ shared.TransactionContext, attachments []*forum.AnswerAttachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, attachments...)
	return nil
}

func (r *AnswerAttachmentRepository) DeleteMany(_ shared.TransactionContext, attachments []*forum.AnswerAttachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.DeleteFunc(r.items, func(item *forum.AnswerAttachment) bool {
		return slices.ContainsFunc(attachments, func(removed *forum.AnswerAttachment) bool {
			return item.AnswerID().Equals(removed.AnswerID()) && item.AttachmentID().Equals(removed.AttachmentID())
		})
	})
	return nil
}

func (r *AnswerAttachmentRepository) FindManyByAnswerID(_ shared.TransactionContext, answerID forum.AnswerID) ([]*forum.AnswerAttachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := []*forum.AnswerAttachment{}
	for _, a := range r.items {
		if a.AnswerID().Equals(answerID) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *AnswerAttachmentRepository) DeleteManyByAnswerID(_ shared.TransactionContext, answerID forum.AnswerID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.DeleteFunc(r.items, func(a *forum.AnswerAttachment) bool { return a.AnswerID().Equals(answerID) })
	return nil
}
