// SPDX-License-Identifier: MIT
// Package loader reads declarative family files (YAML) and applies them to a
// core.Registry.
//
// File layout:
//
//	members:               # optional explicit declarations
//	  - name: Carmen Perez
//	    code: carmen       # optional; defaults to the lowercased name
//	relations:
//	  - member: Norelis Santander
//	    parents: [Florelia Santander, Isidro Garcia]
//	    children: []
//
// The same document can be written as TOML ([[members]] and [[relations]]
// tables); LoadFile picks the decoder from the file extension.
//
// Members are declared first, then relations in file order, so the file order
// is the discovery order of every lineage walk. A relation reference that
// matches a known code (explicit or derived) links that member and keeps its
// declared name; any other reference is a display name added on the fly.
package loader

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinship/core"
)

// Sentinel errors for family files.
var (
	// ErrEmptyMember indicates a member or relation entry without a name.
	ErrEmptyMember = errors.New("loader: member name is empty")

	// ErrEmptyFile indicates a document with neither members nor relations.
	ErrEmptyFile = errors.New("loader: family file is empty")
)

//go:embed sample.yaml
var sampleYAML []byte

// MemberSpec declares a member, optionally under an explicit code.
type MemberSpec struct {
	Name string `yaml:"name" toml:"name"`
	Code string `yaml:"code,omitempty" toml:"code,omitempty"`
}

// RelationSpec declares the parents and children of one member.
type RelationSpec struct {
	Member   string   `yaml:"member" toml:"member"`
	Parents  []string `yaml:"parents,omitempty" toml:"parents,omitempty"`
	Children []string `yaml:"children,omitempty" toml:"children,omitempty"`
}

// File is a decoded family file.
type File struct {
	Members   []MemberSpec   `yaml:"members,omitempty" toml:"members,omitempty"`
	Relations []RelationSpec `yaml:"relations,omitempty" toml:"relations,omitempty"`
}

// Option configures Apply.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger logs every applied entry at Debug. nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Sample returns the embedded reference family.
func Sample() *File {
	f, err := Parse(sampleYAML)
	if err != nil {
		panic(fmt.Sprintf("loader: embedded sample is invalid: %v", err))
	}

	return f
}

// Parse decodes and validates a family document. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes and validates a family document from r.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("loader: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// LoadTOML decodes and validates a TOML family document from r.
// Keys that do not map onto File are rejected.
func LoadTOML(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("loader: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("loader: decode: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// LoadFile reads and decodes the family file at path: TOML for a .toml
// extension, YAML otherwise.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer fh.Close()

	load := Load
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		load = LoadTOML
	}
	f, err := load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Validate reports entries the Registry would silently ignore.
func (f *File) Validate() error {
	if len(f.Members) == 0 && len(f.Relations) == 0 {
		return ErrEmptyFile
	}
	for i, m := range f.Members {
		if core.NormalizeName(m.Name) == "" {
			return fmt.Errorf("%w: members[%d]", ErrEmptyMember, i)
		}
	}
	for i, rel := range f.Relations {
		if core.NormalizeName(rel.Member) == "" {
			return fmt.Errorf("%w: relations[%d]", ErrEmptyMember, i)
		}
	}

	return nil
}

// Apply declares every member and relation of f on reg, in file order.
func (f *File) Apply(reg *core.Registry, opts ...Option) error {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if err := f.Validate(); err != nil {
		return err
	}

	for _, m := range f.Members {
		reg.AddWithCode(m.Name, m.Code)
		o.logger.Debug("member declared", "name", m.Name, "code", m.Code)
	}
	for _, rel := range f.Relations {
		m := reg.Get(rel.Member)
		m.LinkInheritances(core.Parent, rel.Parents...)
		m.LinkInheritances(core.Child, rel.Children...)
		o.logger.Debug("relations applied",
			"member", m.Code(),
			"parents", len(rel.Parents),
			"children", len(rel.Children))
	}

	return nil
}

// Registry builds a fresh Registry from f.
func (f *File) Registry(opts ...core.RegistryOption) (*core.Registry, error) {
	reg := core.NewRegistry(opts...)
	if err := f.Apply(reg); err != nil {
		return nil, err
	}

	return reg, nil
}
