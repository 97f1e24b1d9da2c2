//go:build !(js && wasm)

package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

func capture(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	SetLogger(funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{}))
	t.Cleanup(func() { SetLogger(logr.Discard()) })
	return &lines
}

func TestConsole_RoutesToLogger(t *testing.T) {
	lines := capture(t)

	Log("rendered", 3, "nodes")
	Warn("prop", "age", "ignored")
	Error("render failed:", errors.New("boom"))

	got := *lines
	if len(got) != 3 {
		t.Fatalf("Expected 3 log lines, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], `"msg"="rendered 3 nodes"`) {
		t.Errorf("Unexpected Log output: %s", got[0])
	}
	if !strings.Contains(got[1], `"level"="warn"`) {
		t.Errorf("Expected the warning to be tagged, got %s", got[1])
	}
	if !strings.Contains(got[2], `"msg"="render failed:"`) || !strings.Contains(got[2], `"error"="boom"`) {
		t.Errorf("Unexpected Error output: %s", got[2])
	}
}
