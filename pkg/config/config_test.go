package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := LoadFrom(t.TempDir())
	req.NoError(err)

	req.Equal(":5555", cfg.Server.Address)
	req.Equal("debug", cfg.Server.Mode)
	req.Equal("info", cfg.Log.Level)
	req.Equal("console", cfg.Log.Format)
	req.Equal("sqlite", cfg.DB.Driver)
	req.Equal("app.db", cfg.DB.Path)
	req.Equal(5432, cfg.DB.Port)
	req.Equal(10, cfg.DB.MaxOpenConns)
}

func TestLoadFrom_File(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	content := []byte("server:\n  address: \":8081\"\ndb:\n  driver: postgres\n  name: board\n  max_open_conns: 3\n")
	req.NoError(os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	cfg, err := LoadFrom(dir)
	req.NoError(err)

	req.Equal(":8081", cfg.Server.Address)
	req.Equal("postgres", cfg.DB.Driver)
	req.Equal("board", cfg.DB.Name)
	req.Equal(3, cfg.DB.MaxOpenConns)
	// 未出現在文件中的鍵保留預設值
	req.Equal("app.db", cfg.DB.Path)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	req.NoError(os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("db:\n  path: file.db\n"), 0o644))

	t.Setenv("MESSAGE_BOARD_DB_PATH", "env.db")
	t.Setenv("MESSAGE_BOARD_SERVER_ADDRESS", ":9999")
	t.Setenv("MESSAGE_BOARD_LOG_LEVEL", "debug")

	cfg, err := LoadFrom(dir)
	req.NoError(err)

	req.Equal("env.db", cfg.DB.Path)
	req.Equal(":9999", cfg.Server.Address)
	req.Equal("debug", cfg.Log.Level)
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unterminated"), 0o644))

	_, err := LoadFrom(dir)
	require.Error(t, err)
}
