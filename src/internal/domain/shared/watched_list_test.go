package shared_test

import (
	"testing"

	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func newIntList(initial ...int) *shared.WatchedList[int] {
	return shared.NewWatchedList(initial, func(a, b int) bool { return a == b })
}

// Test 1: 建構時 current 等於基準副本
func TestWatchedList_Construct_CopiesBaseline(t *testing.T) {
	// Arrange
	baseline := []int{1, 2, 3}

	// Act
	list := newIntList(baseline...)
	baseline[0] = 99

	// Assert
	assert.Equal(t, []int{1, 2, 3}, list.GetItems())
	assert.Empty(t, list.GetNewItems())
	assert.Empty(t, list.GetRemovedItems())
}

// Test 2: 從空清單先加後刪，差異為空
func TestWatchedList_AddThenRemove_NetsToEmpty(t *testing.T) {
	for _, x := range []int{0, 1, 42} {
		// Arrange
		list := newIntList()

		// Act
		list.Add(x)
		list.Remove(x)

		// Assert
		assert.Empty(t, list.GetNewItems())
		assert.Empty(t, list.GetRemovedItems())
		assert.Empty(t, list.GetItems())
	}
}

// Test 3: 加入新項目
func TestWatchedList_Add_NewItem(t *testing.T) {
	list := newIntList(1, 2, 3)

	list.Add(4)

	assert.Equal(t, []int{1, 2, 3, 4}, list.GetItems())
	assert.Equal(t, []int{4}, list.GetNewItems())
	assert.Empty(t, list.GetRemovedItems())
}

// Test 4: 加入已存在的項目不重複
func TestWatchedList_Add_ExistingItem_NoOp(t *testing.T) {
	list := newIntList(1, 2, 3)

	list.Add(2)

	assert.Equal(t, []int{1, 2, 3}, list.GetItems())
	assert.Empty(t, list.GetNewItems())
}

// Test 5: 刪除基準項目
func TestWatchedList_Remove_BaselineItem(t *testing.T) {
	list := newIntList(1, 2, 3)

	list.Remove(2)

	assert.Equal(t, []int{1, 3}, list.GetItems())
	assert.Equal(t, []int{2}, list.GetRemovedItems())
	assert.Empty(t, list.GetNewItems())
}

// Test 6: 刪除後重新加入，追加到尾端且不算刪除
func TestWatchedList_RemoveThenReAdd_AppendsAndCancels(t *testing.T) {
	// Arrange
	list := newIntList(1, 2, 3)

	// Act
	list.Remove(2)
	list.Add(2)

	// Assert
	assert.Empty(t, list.GetRemovedItems())
	assert.Empty(t, list.GetNewItems())
	assert.Equal(t, []int{1, 3, 2}, list.GetItems())
}

// Test 7: Update 相對原始基準計算差異
func TestWatchedList_Update_DiffsAgainstBaseline(t *testing.T) {
	// Arrange
	list := newIntList(1, 2, 3)

	// Act
	list.Update([]int{1, 3, 5})

	// Assert
	assert.Equal(t, []int{2}, list.GetRemovedItems())
	assert.Equal(t, []int{5}, list.GetNewItems())
	assert.Equal(t, []int{1, 3, 5}, list.GetItems())
}

// Test 8: 連續 Update 不會移動基準
func TestWatchedList_UpdateTwice_KeepsOriginalBaseline(t *testing.T) {
	list := newIntList(1, 2, 3)

	list.Update([]int{4})
	list.Update([]int{1, 2, 6})

	assert.Equal(t, []int{3}, list.GetRemovedItems())
	assert.Equal(t, []int{6}, list.GetNewItems())
}

// Test 9: 刪除不存在的項目不影響清單
func TestWatchedList_Remove_Missing_NoOp(t *testing.T) {
	list := newIntList(1, 2)

	list.Remove(9)

	assert.Equal(t, []int{1, 2}, list.GetItems())
	assert.Empty(t, list.GetRemovedItems())
}

// Test 10: 重複項目逐一比較，Remove 只刪第一個
func TestWatchedList_Duplicates_AreKept(t *testing.T) {
	list := newIntList(1, 1, 2)

	list.Remove(1)

	assert.Equal(t, []int{1, 2}, list.GetItems())
	// 基準中的兩個 1 都還能在 current 找到相等項目
	assert.Empty(t, list.GetRemovedItems())
	assert.True(t, list.Exists(1))
}

// Test 11: 自訂比較函數（依外鍵比較而非物件身分）
func TestWatchedList_CustomCompare(t *testing.T) {
	type link struct {
		rowID        string
		attachmentID string
	}
	compare := func(a, b link) bool { return a.attachmentID == b.attachmentID }
	list := shared.NewWatchedList([]link{{"r1", "a1"}, {"r2", "a2"}}, compare)

	list.Update([]link{{"new-row", "a1"}, {"r3", "a3"}})

	assert.Equal(t, []link{{"r2", "a2"}}, list.GetRemovedItems())
	assert.Equal(t, []link{{"r3", "a3"}}, list.GetNewItems())
}

// Test 12: GetItems 返回副本
func TestWatchedList_GetItems_ReturnsCopy(t *testing.T) {
	list := newIntList(1, 2)

	items := list.GetItems()
	items[0] = 100

	assert.Equal(t, []int{1, 2}, list.GetItems())
}
