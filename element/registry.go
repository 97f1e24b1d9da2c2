package element

import (
	"regexp"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-wc/dom"
)

var (
	ErrInvalidName     = errors.New("invalid custom element name")
	ErrAlreadyDefined  = errors.New("custom element already defined")
	ErrUnknownElement  = errors.New("custom element not defined")
	ErrNotConfigurable = errors.New("property is not configurable")
)

// Lowercase ASCII start, at least one hyphen. Non-ASCII name characters are not accepted.
var validName = regexp.MustCompile(`^[a-z][-._0-9a-z]*-[-._0-9a-z]*$`)

// reservedNames are hyphenated names SVG and MathML already use.
var reservedNames = map[string]struct{}{
	"annotation-xml":   {},
	"color-profile":    {},
	"font-face":        {},
	"font-face-src":    {},
	"font-face-uri":    {},
	"font-face-format": {},
	"font-face-name":   {},
	"missing-glyph":    {},
}

// ValidName reports whether name can be used for a custom element.
func ValidName(name string) bool {
	if _, reserved := reservedNames[name]; reserved {
		return false
	}
	return validName.MatchString(name)
}

// Registry maps tag names to classes, the way the platform's custom element
// registry does. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*Class)}
}

// Define registers c under name. A class can only be defined once, under one name.
func (r *Registry) Define(name string, c *Class) error {
	if !ValidName(name) {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.classes[name]; ok {
		return errors.Wrapf(ErrAlreadyDefined, "%q", name)
	}
	if c.name != "" {
		return errors.Wrapf(ErrAlreadyDefined, "class is already defined as %q", c.name)
	}
	c.name = name
	r.classes[name] = c
	return nil
}

// Lookup returns the class defined under name.
func (r *Registry) Lookup(name string) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.classes[name]
	return c, ok
}

// Names returns the defined names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.classes))
	for n := range r.classes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Create constructs an instance of the class defined under name on host.
func (r *Registry) Create(name string, host dom.Host) (*Element, error) {
	c, ok := r.Lookup(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownElement, "%q", name)
	}
	return c.New(host), nil
}
