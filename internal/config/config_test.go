package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/homemaint/internal/model"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DefaultFrequency != model.FrequencyMonthly {
		t.Fatalf("unexpected default frequency: %+v", cfg)
	}
	if cfg.ActivityDBPath != ":memory:" || cfg.ActivityLimit != 10 {
		t.Fatalf("unexpected activity defaults: %+v", cfg)
	}
	if !cfg.DueNotices || cfg.NoticeBuffer != 64 {
		t.Fatalf("unexpected notice defaults: %+v", cfg)
	}
	if cfg.LogFile != "" || cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("unexpected log defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("HOMEMAINT_DEFAULT_FREQUENCY", "weekly")
	t.Setenv("HOMEMAINT_ACTIVITY_DB", "state/activity.db")
	t.Setenv("HOMEMAINT_ACTIVITY_LIMIT", "25")
	t.Setenv("HOMEMAINT_DUE_NOTICES", "off")
	t.Setenv("HOMEMAINT_NOTICE_BUFFER", "128")
	t.Setenv("HOMEMAINT_LOG_FILE", "logs/homemaint.log")
	t.Setenv("HOMEMAINT_LOG_LEVEL", "debug")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DefaultFrequency != model.FrequencyWeekly {
		t.Fatalf("unexpected frequency override: %+v", cfg)
	}
	if cfg.ActivityDBPath != "state/activity.db" || cfg.ActivityLimit != 25 {
		t.Fatalf("unexpected activity overrides: %+v", cfg)
	}
	if cfg.DueNotices || cfg.NoticeBuffer != 128 {
		t.Fatalf("unexpected notice overrides: %+v", cfg)
	}
	if cfg.LogFile != "logs/homemaint.log" || cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("unexpected log overrides: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("HOMEMAINT_DEFAULT_FREQUENCY", "Yearly")
	t.Setenv("HOMEMAINT_ACTIVITY_LIMIT", "-3")
	t.Setenv("HOMEMAINT_DUE_NOTICES", "sometimes")
	t.Setenv("HOMEMAINT_NOTICE_BUFFER", "lots")
	t.Setenv("HOMEMAINT_LOG_LEVEL", "chatty")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg != DefaultRuntimeConfig() {
		t.Fatalf("invalid env values should be ignored, got %+v", cfg)
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "homemaint.log")
	cfg := DefaultRuntimeConfig()
	cfg.LogFile = path

	logger, closer, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("task added", "task_id", "task-1")
	logger.Debug("hidden at info level")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "task added") || !strings.Contains(out, "task_id=task-1") {
		t.Fatalf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
}

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	logger, closer, err := NewLogger(DefaultRuntimeConfig())
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
