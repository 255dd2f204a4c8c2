// File: internal/handler/reports/cache.go
package reports

import (
	"fmt"
	"time"
)

// 報告列表快取鍵與存活時間；建立新報告時由 worker 失效
const listCacheTTL = 5 * time.Minute

func listCacheKey(userID int) string {
	return fmt.Sprintf("reports:%d", userID)
}
