package forum

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
)

// lookupError 查找失敗的錯誤處理
//
// RESOURCE_NOT_FOUND 原樣返回（用例的 Left 分支），
// 其他 Repository 錯誤加上上下文後返回。
func lookupError(what string, err error) error {
	if errors.Is(err, shared.ErrResourceNotFound) {
		return err
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}

// notAllowed 操作者不是擁有者
func notAllowed(resource, actorID string) error {
	return shared.ErrNotAllowed.WithContext(
		"resource", resource,
		"actor_id", actorID,
	)
}
