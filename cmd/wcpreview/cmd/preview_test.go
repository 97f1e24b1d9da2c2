//go:build !(js && wasm)

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testManifest = `
elements:
  - tag: nojs-greeting
    component: Greeting
    shadow: true
    css: greeting.css
    embeddCss: true
  - tag: nojs-counter
    component: Counter
`

func writeManifest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "elements.yaml")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "greeting.css"), []byte("h2{color:teal}"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPreview_ShadowElement(t *testing.T) {
	reg, err := loadRegistry(writeManifest(t))
	if err != nil {
		t.Fatalf("loadRegistry failed: %v", err)
	}
	var buf bytes.Buffer

	err = preview(&buf, reg, request{
		Tag:   "nojs-greeting",
		Attrs: []keyValue{{Key: "name", Value: "Ada"}},
	})
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`<nojs-greeting name="Ada"><template shadowrootmode="open">`,
		`<h2 class="greeting">Hello, Ada!</h2>`,
		`<style data-stylesheet="greeting.css">h2{color:teal}</style></template></nojs-greeting>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %s, got %s", want, out)
		}
	}
}

func TestPreview_LightElementWithProps(t *testing.T) {
	reg, err := loadRegistry(writeManifest(t))
	if err != nil {
		t.Fatalf("loadRegistry failed: %v", err)
	}
	var buf bytes.Buffer

	err = preview(&buf, reg, request{
		Tag:   "nojs-counter",
		Attrs: []keyValue{{Key: "start", Value: "4"}},
		Props: []keyValue{{Key: "label", Value: "Clicks"}},
	})
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	if want := `<span class="value">Clicks: 4</span>`; !strings.Contains(buf.String(), want) {
		t.Errorf("Expected output to contain %s, got %s", want, buf.String())
	}
	if strings.Contains(buf.String(), "<template") {
		t.Errorf("Expected no shadow root in light DOM mode")
	}
}

func TestPreview_UnknownTag(t *testing.T) {
	reg, err := loadRegistry(writeManifest(t))
	if err != nil {
		t.Fatalf("loadRegistry failed: %v", err)
	}
	if err := preview(&bytes.Buffer{}, reg, request{Tag: "nojs-missing"}); err == nil {
		t.Errorf("Expected an error for an undefined tag")
	}
}

func TestParseKeyValues(t *testing.T) {
	kv, err := parseKeyValues([]string{"name=Ada", "empty=", "expr=a=b"})
	if err != nil {
		t.Fatalf("parseKeyValues failed: %v", err)
	}
	if len(kv) != 3 || kv[1].Value != "" || kv[2].Value != "a=b" {
		t.Errorf("Unexpected pairs: %+v", kv)
	}
	if _, err := parseKeyValues([]string{"novalue"}); err == nil {
		t.Errorf("Expected an error for a pair without '='")
	}
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"list", "--manifest", writeManifest(t)})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := "nojs-counter\tlight\t[label, start]\nnojs-greeting\tshadow\t[age, name]\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}
