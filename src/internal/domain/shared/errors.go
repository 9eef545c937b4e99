package shared

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	// 用例層（Either 的 Left 分支）
	ErrCodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeNotAllowed       ErrorCode = "NOT_ALLOWED"

	// 輸入驗證
	ErrCodeInvalidID       ErrorCode = "INVALID_ID"
	ErrCodeInvalidPage     ErrorCode = "INVALID_PAGE"
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// 事件匯流排
	ErrCodeUnknownEventKind  ErrorCode = "UNKNOWN_EVENT_KIND"
	ErrCodeEventTypeMismatch ErrorCode = "EVENT_TYPE_MISMATCH"

	// 基礎設施
	ErrCodeRepository ErrorCode = "REPOSITORY_ERROR"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 領域錯誤
// 設計原則：
// 1. 包含結構化的錯誤代碼（用於 HTTP 狀態碼映射）
// 2. 支持上下文信息（用於調試和日誌）
// 3. 不可變性（創建後不可修改）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（以錯誤代碼判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ===========================
// 預定義錯誤
// ===========================

var (
	// ErrResourceNotFound 引用的聚合 ID 不存在
	ErrResourceNotFound = &DomainError{
		Code:    ErrCodeResourceNotFound,
		Message: "resource not found",
	}

	// ErrNotAllowed 操作者不是聚合的擁有者/接收者
	ErrNotAllowed = &DomainError{
		Code:    ErrCodeNotAllowed,
		Message: "not allowed",
	}
)

var (
	ErrInvalidID = &DomainError{
		Code:    ErrCodeInvalidID,
		Message: "ID 不能為空",
	}

	ErrInvalidPage = &DomainError{
		Code:    ErrCodeInvalidPage,
		Message: "頁碼必須是正整數（從 1 開始）",
	}

	ErrInvalidArgument = &DomainError{
		Code:    ErrCodeInvalidArgument,
		Message: "無效的參數",
	}
)

var (
	ErrUnknownEventKind = &DomainError{
		Code:    ErrCodeUnknownEventKind,
		Message: "未知的事件類型",
	}

	ErrEventTypeMismatch = &DomainError{
		Code:    ErrCodeEventTypeMismatch,
		Message: "事件與處理器類型不符",
	}
)

// ErrRepository 資料庫操作失敗（Infrastructure 以 WithContext 附上原始錯誤）
var ErrRepository = &DomainError{
	Code:    ErrCodeRepository,
	Message: "資料庫操作失敗",
}
