package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestNew_Level(t *testing.T) {
	if New(false).Core().Enabled(zap.DebugLevel) {
		t.Fatalf("expected debug disabled when debug=false")
	}
	if !New(true).Core().Enabled(zap.DebugLevel) {
		t.Fatalf("expected debug enabled when debug=true")
	}
}
