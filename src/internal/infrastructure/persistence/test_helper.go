package persistence

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ===========================
// 測試輔助函數
// ===========================

// NewTestDB 創建測試用的 SQLite in-memory 資料庫
// 使用場景：整合測試，測試 Repository 與真實資料庫的互動
//
// 設計原則：
// 1. 隔離性：每個測試使用獨立命名的 in-memory DB
// 2. 共享快取：連線池中的每條連線（包括事務）看到同一個資料庫
// 3. 真實性：使用真實 SQL 引擎，而非 Mock
//
// migrate 由各子套件提供（例如 forum.AutoMigrate），
// 測試結束時自動關閉連線。
func NewTestDB(t testing.TB, migrate ...func(*gorm.DB) error) *gorm.DB {
	t.Helper()

	// 1. 建立 SQLite in-memory 資料庫
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // 測試時靜音
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// 2. 自動遷移（創建測試表）
	for _, m := range migrate {
		if err := m(db); err != nil {
			t.Fatalf("Failed to migrate test database: %v", err)
		}
	}

	// 3. 註冊清理函數（最後一條連線關閉時資料庫被釋放）
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return db
}
