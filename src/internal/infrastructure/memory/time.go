package memory

import (
	"strings"
	"time"
)

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// compareCreated 依建立時間由舊到新，時間相同時依 ID 遞增
//
// 與 SQL 倉儲的 ORDER BY created_at, id 相同。
func compareCreated(aTime time.Time, aID string, bTime time.Time, bID string) int {
	if c := aTime.Compare(bTime); c != 0 {
		return c
	}
	return strings.Compare(aID, bID)
}
