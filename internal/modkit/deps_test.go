package modkit

import (
	"testing"

	"bbcenglish/internal/platform/logger"
)

func TestDeps_Logger_FallsBackToProcessLogger(t *testing.T) {
	var d Deps
	if d.Logger() != logger.Get() {
		t.Fatal("zero Deps should use the process logger")
	}
}

func TestDeps_Logger_UsesInjected(t *testing.T) {
	l := logger.Named("test")
	d := Deps{Log: l}
	if d.Logger() != l {
		t.Fatal("expected injected logger")
	}
}
