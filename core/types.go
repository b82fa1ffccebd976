// SPDX-License-Identifier: MIT
// Package core defines the central Registry, Member and Kind types,
// and provides thread-safe primitives for declaring and querying family graphs.
//
// All Registry APIs use a single sync.RWMutex internally (mu guards members
// and the relationship index), so a Registry can be shared across goroutines.
//
// This file declares Kind, Member, Registry, RegistryOption, sentinel errors,
// and the NewRegistry constructor.
//
// Errors:
//
//	ErrEmptyCode        - code normalizes to the empty string.
//	ErrMemberNotFound   - requested member does not exist (Find only).
//	ErrCycleDetected    - a guarded lineage walk reached a cycle.
//	ErrOptionViolation  - an invalid LineageOption was supplied.
package core

import (
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Sentinel errors for core registry operations.
var (
	// ErrEmptyCode indicates that the provided code or name normalizes to "".
	ErrEmptyCode = errors.New("core: member code is empty")

	// ErrMemberNotFound indicates a strict lookup referenced a non-existent member.
	ErrMemberNotFound = errors.New("core: member not found")

	// ErrCycleDetected indicates a guarded lineage walk found a member that is
	// its own ancestor (or descendant) in the requested direction.
	ErrCycleDetected = errors.New("core: cycle detected")

	// ErrOptionViolation indicates an invalid LineageOption value.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// DefaultName is substituted for empty display names.
const DefaultName = "John Doe"

// Kind selects the direction of a relationship: Parent is ancestor-ward,
// Child is descendant-ward.
type Kind int

const (
	// Parent addresses a member's parents.
	Parent Kind = iota
	// Child addresses a member's children.
	Child
)

// normalize maps any value other than Parent to Child.
func (k Kind) normalize() Kind {
	if k != Parent {
		return Child
	}

	return Parent
}

// Opposite returns the mirrored direction (Parent <-> Child).
func (k Kind) Opposite() Kind {
	if k.normalize() == Parent {
		return Child
	}

	return Parent
}

// String returns "parent" or "child".
func (k Kind) String() string {
	if k.normalize() == Parent {
		return "parent"
	}

	return "child"
}

// relations is the index entry of one member: both directions, each an
// insertion-ordered set of codes.
type relations struct {
	parents  *codeSet
	children *codeSet
}

// of returns the set addressed by kind.
func (r *relations) of(kind Kind) *codeSet {
	if kind.normalize() == Parent {
		return r.parents
	}

	return r.children
}

// Member represents one person in the family graph.
//
// A Member is a view bound to a code: relationship queries and mutations
// delegate to the owning Registry.
type Member struct {
	// registry is the owning Registry (non-owning back-reference).
	registry *Registry

	// code is the normalized, immutable identity.
	code string

	// name is the display name; guarded by registry.mu.
	name string
}

// RegistryOption configures a Registry before first use.
type RegistryOption func(r *Registry)

// WithLogger routes registry diagnostics to logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStrictLineage makes every lineage walk of this Registry (including those
// issued through Member and Tree) run with WithCycleGuard.
func WithStrictLineage() RegistryOption {
	return func(r *Registry) { r.strict = true }
}

// WithDefaultName overrides the placeholder used for empty display names.
// An empty or whitespace-only placeholder is ignored.
func WithDefaultName(name string) RegistryOption {
	return func(r *Registry) {
		if n := NormalizeName(name); n != "" {
			r.defaultName = n
		}
	}
}

// Registry owns the members of one family graph and the bidirectional
// parent/child index between them.
//
// mu protects members and index. Members are never removed.
type Registry struct {
	mu sync.RWMutex

	// Configuration
	logger      *slog.Logger
	strict      bool
	defaultName string

	// Storage
	members map[string]*Member // code → Member

	// index[code] = {parents, children}; every code in any set has a member.
	index map[string]*relations
}

// NewRegistry creates an empty Registry with the given options.
// By default lineage walks are unguarded and diagnostics are discarded.
// Complexity: O(len(opts))
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaultName: DefaultName,
		members:     make(map[string]*Member),
		index:       make(map[string]*relations),
	}
	// Apply options
	for _, opt := range opts {
		opt(r)
	}

	return r
}
