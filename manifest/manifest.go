// Package manifest reads elements.yaml, the list of custom elements an
// application defines and the component each one wraps.
//
//	elements:
//	  - tag: nojs-greeting
//	    component: Greeting
//	    shadow: true
//	    css: greeting.css
//	    embeddCss: true
//	    styleFile: styles/greeting.css
package manifest

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vcrobe/nojs-wc/element"
)

// FileName is the manifest file looked up by LoadOptional.
const FileName = "elements.yaml"

var ErrInvalid = errors.New("invalid manifest")

// Manifest is the parsed elements.yaml.
type Manifest struct {
	Elements []Entry `yaml:"elements"`
}

// Entry declares one custom element.
type Entry struct {
	Tag       string `yaml:"tag"`
	Component string `yaml:"component"`
	// StyleFile is read into Options.Style when EmbeddCSS is set. Relative to
	// the manifest directory. Defaults to CSS.
	StyleFile string `yaml:"styleFile,omitempty"`

	element.Options `yaml:",inline"`
}

// Resolved is an entry ready to be defined.
type Resolved struct {
	Tag       string
	Component string
	Options   element.Options
}

// LoadOptional reads FileName from dir. A missing file yields an empty manifest.
func LoadOptional(dir string) (*Manifest, error) {
	m, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	return m, err
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load %s", path)
	}
	return m, nil
}

// Parse decodes and validates manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "cannot parse manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks tags and component names.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Elements))
	for i, e := range m.Elements {
		tag := strings.TrimSpace(e.Tag)
		switch {
		case !element.ValidName(tag):
			return errors.Wrapf(ErrInvalid, "elements[%d]: %q is not a valid custom element name", i, e.Tag)
		case strings.TrimSpace(e.Component) == "":
			return errors.Wrapf(ErrInvalid, "elements[%d] (%s): component is required", i, tag)
		case e.EmbeddCSS && e.CSS == "" && e.StyleFile == "":
			return errors.Wrapf(ErrInvalid, "elements[%d] (%s): embeddCss needs css or styleFile", i, tag)
		}
		if _, dup := seen[tag]; dup {
			return errors.Wrapf(ErrInvalid, "elements[%d]: %s is declared twice", i, tag)
		}
		seen[tag] = struct{}{}
	}
	return nil
}

// Resolve fills in defaults and reads embedded stylesheets from fsys, which
// is rooted at the manifest directory.
func (m *Manifest) Resolve(fsys fs.FS) ([]Resolved, error) {
	out := make([]Resolved, 0, len(m.Elements))
	for _, e := range m.Elements {
		opts := e.Options
		if opts.EmbeddCSS {
			styleFile := e.StyleFile
			if styleFile == "" {
				styleFile = opts.CSS
			}
			if opts.CSS == "" {
				opts.CSS = styleFile
			}
			style, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Clean(styleFile)))
			if err != nil {
				return nil, errors.Wrapf(err, "%s: cannot read style file", e.Tag)
			}
			opts.Style = string(style)
		}
		out = append(out, Resolved{
			Tag:       strings.TrimSpace(e.Tag),
			Component: strings.TrimSpace(e.Component),
			Options:   opts,
		})
	}
	return out, nil
}
