package shared

// ===========================
// WatchedList[T] 子集合差異追蹤
// ===========================

// WatchedList 追蹤一對多子集合相對於載入基準的淨新增/刪除
//
// 使用場景：聚合在記憶體中修改子集合（例如附件），
// Repository 在保存時只需套用差異（新增的列、刪除的列）。
//
// 語義：
//   - GetNewItems()     = current 中不存在於 initial 的項目（依 current 順序）
//   - GetRemovedItems() = initial 中不存在於 current 的項目（依 initial 順序）
//   - 差異以淨狀態計算，不是操作紀錄：先加後刪、先刪後加都抵銷
//   - 不去重：重複項目逐一比較
//
// 非並發安全，由持有的聚合保護。
type WatchedList[T any] struct {
	initial []T
	current []T
	compare func(a, b T) bool
}

// NewWatchedList 以基準項目建立 WatchedList
//
// 參數：
//
//	initial - 從儲存載入的基準（新聚合傳 nil）
//	compare - 項目相等性（例如比較外鍵 ID 而不是物件身分）
func NewWatchedList[T any](initial []T, compare func(a, b T) bool) *WatchedList[T] {
	return &WatchedList[T]{
		initial: append([]T(nil), initial...),
		current: append([]T(nil), initial...),
		compare: compare,
	}
}

// GetItems 返回目前的項目
func (l *WatchedList[T]) GetItems() []T {
	return append([]T(nil), l.current...)
}

// GetNewItems 返回相對基準新增的項目
func (l *WatchedList[T]) GetNewItems() []T {
	return l.difference(l.current, l.initial)
}

// GetRemovedItems 返回相對基準刪除的項目
func (l *WatchedList[T]) GetRemovedItems() []T {
	return l.difference(l.initial, l.current)
}

// Exists 判斷項目目前是否存在
func (l *WatchedList[T]) Exists(item T) bool {
	return l.indexOf(l.current, item) >= 0
}

// Add 加入項目
//
// 目前不存在才追加到尾端；被刪除的基準項目重新加入時也追加到尾端，
// 因為它重新出現在 current，所以不再算作刪除。
func (l *WatchedList[T]) Add(item T) {
	if l.Exists(item) {
		return
	}
	l.current = append(l.current, item)
}

// Remove 刪除第一個相等的項目
func (l *WatchedList[T]) Remove(item T) {
	idx := l.indexOf(l.current, item)
	if idx < 0 {
		return
	}
	l.current = append(l.current[:idx:idx], l.current[idx+1:]...)
}

// Update 整體替換目前的項目；差異仍然相對原始基準計算
func (l *WatchedList[T]) Update(items []T) {
	l.current = append([]T(nil), items...)
}

// difference 返回 from 中在 against 找不到相等項目的元素
func (l *WatchedList[T]) difference(from, against []T) []T {
	result := make([]T, 0)
	for _, item := range from {
		if l.indexOf(against, item) < 0 {
			result = append(result, item)
		}
	}
	return result
}

func (l *WatchedList[T]) indexOf(items []T, target T) int {
	for i, item := range items {
		if l.compare(item, target) {
			return i
		}
	}
	return -1
}
