package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/homemaint/internal/model"
)

type RuntimeConfig struct {
	DefaultFrequency model.Frequency
	ActivityDBPath   string
	ActivityLimit    int
	DueNotices       bool
	NoticeBuffer     int
	LogFile          string
	LogLevel         slog.Level
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DefaultFrequency: model.FrequencyMonthly,
		ActivityDBPath:   ":memory:",
		ActivityLimit:    10,
		DueNotices:       true,
		NoticeBuffer:     64,
		LogFile:          "",
		LogLevel:         slog.LevelInfo,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("HOMEMAINT_DEFAULT_FREQUENCY"); ok {
		if f, err := model.ParseFrequency(v); err == nil {
			cfg.DefaultFrequency = f
		}
	}
	if v, ok := getEnvString("HOMEMAINT_ACTIVITY_DB"); ok {
		cfg.ActivityDBPath = v
	}
	if v, ok := getEnvInt("HOMEMAINT_ACTIVITY_LIMIT"); ok && v > 0 {
		cfg.ActivityLimit = v
	}
	if v, ok := getEnvBool("HOMEMAINT_DUE_NOTICES"); ok {
		cfg.DueNotices = v
	}
	if v, ok := getEnvInt("HOMEMAINT_NOTICE_BUFFER"); ok && v > 0 {
		cfg.NoticeBuffer = v
	}
	if v, ok := getEnvString("HOMEMAINT_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("HOMEMAINT_LOG_LEVEL"); ok {
		if lvl, err := ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
