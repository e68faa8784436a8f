package logger

import (
	"testing"

	"image-resizer/internal/pkg/config"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New(config.LogConfig{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("error should be enabled at warn level")
	}

	if _, err := New(config.LogConfig{Level: "debug", Format: "console"}); err != nil {
		t.Fatal(err)
	}
	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(config.LogConfig{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
