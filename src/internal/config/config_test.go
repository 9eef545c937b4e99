package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1: 沒有配置檔時使用預設值
func TestLoad_Defaults(t *testing.T) {
	// Arrange
	t.Chdir(t.TempDir())

	// Act
	cfg, err := Load("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "qa-forum", cfg.App.Name)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "forum.db", cfg.Database.DSN)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

// Test 2: 配置檔覆蓋預設值
func TestLoad_FromFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "forum.yaml")
	content := `
app:
  env: production
server:
  port: "9090"
database:
  driver: memory
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Act
	cfg, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

// Test 3: 環境變數優先於預設值
func TestLoad_EnvironmentOverride(t *testing.T) {
	// Arrange
	t.Chdir(t.TempDir())
	t.Setenv("FORUM_SERVER_PORT", "7070")
	t.Setenv("FORUM_DATABASE_DRIVER", "mysql")
	t.Setenv("FORUM_DATABASE_DSN", "user:pass@tcp(localhost:3306)/forum?parseTime=true")

	// Act
	cfg, err := Load("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Contains(t, cfg.Database.DSN, "tcp(localhost:3306)")
}

// Test 4: 不支援的驅動
func TestLoad_UnsupportedDriver(t *testing.T) {
	// Arrange
	t.Chdir(t.TempDir())
	t.Setenv("FORUM_DATABASE_DRIVER", "oracle")

	// Act
	cfg, err := Load("")

	// Assert
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// Test 5: 配置檔格式錯誤
func TestLoad_MalformedFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	// Act
	_, err := Load(path)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// Test 6: 啟用限流時 rate 與 burst 必須為正
func TestValidate_RateLimit(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: DriverMemory},
		Server:   ServerConfig{RateLimit: RateLimitConfig{Enabled: true, Rate: 0, Burst: 10}},
	}

	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Server.RateLimit.Rate = 5
	assert.NoError(t, cfg.Validate())
}

// Test 7: 不支援的 gin 模式
func TestValidate_ServerMode(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Driver: DriverMemory},
		Server:   ServerConfig{Mode: "verbose"},
	}

	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Server.Mode = "release"
	assert.NoError(t, cfg.Validate())
}
