package shared

import (
	"strings"

	"github.com/google/uuid"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 是一個泛型實體 ID 值對象
//
// 設計原則：
// 1. 類型安全：不同實體的 ID 不能混用（QuestionID ≠ AnswerID）
// 2. 不可變性（unexported field）
// 3. 以字串值比較相等（兩個 ID 字串相同即相等）
//
// 泛型參數 T 只是標記類型（marker type），不需要任何方法或字段：
//
//	type QuestionMarker struct{}
//	type QuestionID = shared.EntityID[QuestionMarker]
type EntityID[T any] struct {
	value string
}

// NewEntityID 生成新的實體 ID（UUID v4 字串）
func NewEntityID[T any]() EntityID[T] {
	return EntityID[T]{value: uuid.NewString()}
}

// EntityIDFromString 從字串還原實體 ID
//
// 參數：
//
//	s - ID 字串（任何非空白字串，例如 UUID 或 "author-1"）
//	errTemplate - 驗證失敗時返回的錯誤（由各 bounded context 提供）
//
// 返回：
//
//	EntityID[T] - 還原的實體 ID
//	error - 空白輸入時返回 errTemplate（附帶上下文）
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		if domainErr, ok := errTemplate.(interface {
			WithContext(keyValues ...interface{}) error
		}); ok {
			return EntityID[T]{}, domainErr.WithContext("input", s)
		}
		return EntityID[T]{}, errTemplate
	}
	return EntityID[T]{value: trimmed}, nil
}

// MustEntityID 從已知有效的字串建立 ID（用於資料庫還原與測試）
func MustEntityID[T any](s string) EntityID[T] {
	return EntityID[T]{value: s}
}

// String 轉換為字串表示
func (e EntityID[T]) String() string {
	return e.value
}

// Equals 比較兩個 EntityID 是否相等
//
// 注意：只能比較相同類型的 ID
//
//	questionID1.Equals(questionID2) ✓
//	questionID.Equals(answerID) ✗ 編譯錯誤（類型不匹配）
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為空 ID（零值）
func (e EntityID[T]) IsEmpty() bool {
	return e.value == ""
}
