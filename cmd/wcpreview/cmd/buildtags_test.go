//go:build !(js && wasm)

package cmd

import (
	"bufio"
	"go/build/constraint"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSources_ExcludedFromWasm verifies every wcpreview source carries a
// constraint that keeps it out of js/wasm builds, where fsnotify and the
// server-side DOM cannot be used.
func TestSources_ExcludedFromWasm(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, filepath.Join("..", "main.go"))

	for _, path := range files {
		expr := buildConstraint(t, path)
		if expr == nil {
			t.Errorf("%s: expected a build constraint", path)
			continue
		}
		wasm := expr.Eval(func(tag string) bool { return tag == "js" || tag == "wasm" })
		native := expr.Eval(func(tag string) bool { return tag == "linux" || tag == "amd64" })
		if wasm {
			t.Errorf("%s: expected js/wasm builds to be excluded by %q", path, expr)
		}
		if !native {
			t.Errorf("%s: expected native builds to be included by %q", path, expr)
		}
	}
}

func buildConstraint(t *testing.T, path string) constraint.Expr {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "package ") {
			return nil
		}
		if constraint.IsGoBuild(line) {
			expr, err := constraint.Parse(line)
			if err != nil {
				t.Fatalf("%s: %v", path, err)
			}
			return expr
		}
	}
	return nil
}
