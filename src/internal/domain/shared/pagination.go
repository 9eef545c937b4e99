package shared

// PageSize 每頁固定筆數（由 Repository 套用，不由用例決定）
const PageSize = 20

// PaginationParams 分頁參數（頁碼從 1 開始）
type PaginationParams struct {
	Page int
}

// NewPaginationParams 建立並驗證分頁參數
func NewPaginationParams(page int) (PaginationParams, error) {
	p := PaginationParams{Page: page}
	if err := p.Validate(); err != nil {
		return PaginationParams{}, err
	}
	return p, nil
}

// Validate 頁碼必須是正整數
func (p PaginationParams) Validate() error {
	if p.Page < 1 {
		return ErrInvalidPage.WithContext("page", p.Page)
	}
	return nil
}

// Offset 返回 (page-1) * PageSize
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * PageSize
}

// Limit 返回每頁筆數
func (p PaginationParams) Limit() int {
	return PageSize
}

// Paginate 對記憶體中的切片取出指定頁
func Paginate[T any](items []T, params PaginationParams) []T {
	start := params.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + params.Limit()
	if end > len(items) {
		end = len(items)
	}
	return append([]T(nil), items[start:end]...)
}
