//go:build !wasm

package element

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-wc/dom/htmldom"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"x-person", true},
		{"nojs-greeting", true},
		{"my-el.v2", true},
		{"a-", true},
		{"person", false},
		{"X-person", false},
		{"-person", false},
		{"1-person", false},
		{"x-Person", false},
		{"font-face", false},
		{"annotation-xml", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidName(tt.name); got != tt.want {
			t.Errorf("ValidName(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestRegistry_Define(t *testing.T) {
	reg := NewRegistry()
	fw := &recordingFramework{}
	a := NewClass(person{}, fw, Options{})

	if err := reg.Define("x-person", a); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if a.Name() != "x-person" {
		t.Errorf("Expected class name 'x-person', got %q", a.Name())
	}

	// Same name, new class
	if err := reg.Define("x-person", NewClass(person{}, fw, Options{})); !errors.Is(err, ErrAlreadyDefined) {
		t.Errorf("Expected ErrAlreadyDefined for a taken name, got %v", err)
	}
	// Same class, new name
	if err := reg.Define("x-other", a); !errors.Is(err, ErrAlreadyDefined) {
		t.Errorf("Expected ErrAlreadyDefined for a class defined twice, got %v", err)
	}
	if err := reg.Define("person", NewClass(person{}, fw, Options{})); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}

	if diff := cmp.Diff([]string{"x-person"}, reg.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry()
	class := NewClass(person{}, &recordingFramework{}, Options{Shadow: true})
	if err := reg.Define("x-person", class); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	doc := htmldom.NewDocument()

	el, err := reg.Create("x-person", doc.CreateHost("x-person"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if el.Class() != class {
		t.Errorf("Expected the instance to belong to the defined class")
	}
	if el.Host().ShadowRoot() == nil {
		t.Errorf("Expected the shadow root to be attached at construction")
	}

	if _, err := reg.Create("x-missing", doc.CreateHost("x-missing")); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("Expected ErrUnknownElement, got %v", err)
	}
}
