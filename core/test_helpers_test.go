// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for kinship/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Registry.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/kinship/core"
)

// Member names of the sample family used across core tests.
const (
	NameNorelis      = "Norelis Santander"
	NameAntonio      = "Antonio Garcia"
	NameJesusMarques = "Jesus Marques"
	NameFlorelia     = "Florelia Santander"
	NameCarmen       = "Carmen Perez"
	NameIsidro       = "Isidro Garcia"
	NameYolanda      = "Yolanda Zambrano"
	NameJesusGarcia  = "Jesus Garcia"
	NameMaria        = "Maria Herrera"
)

// Codes of the sample family.
const (
	CodeNorelis      = "norelis santander"
	CodeAntonio      = "antonio garcia"
	CodeJesusMarques = "jesus marques"
	CodeFlorelia     = "florelia santander"
	CodeCarmen       = "carmen perez"
	CodeIsidro       = "isidro garcia"
	CodeYolanda      = "yolanda zambrano"
	CodeJesusGarcia  = "jesus garcia"
	CodeMaria        = "maria herrera"
)

// Sample family size.
const (
	SampleMembers = 9
	SampleEdges   = 9
)

// BuildSampleFamily RETURNS a registry populated with the reference family:
//
//	Norelis, Antonio  ← Florelia, Isidro
//	Jesus Marques, Florelia ← Carmen
//	Isidro ← Yolanda, Jesus Garcia
//	Jesus Garcia ← Maria
func BuildSampleFamily(opts ...core.RegistryOption) *core.Registry {
	r := core.NewRegistry(opts...)
	r.Get(NameNorelis).AddParents(NameFlorelia, NameIsidro)
	r.Get(NameAntonio).AddParents(NameFlorelia, NameIsidro)
	r.Get(NameJesusMarques).AddParent(NameCarmen)
	r.Get(NameFlorelia).AddParent(NameCarmen)
	r.Get(NameIsidro).AddParents(NameYolanda, NameJesusGarcia)
	r.Get(NameJesusGarcia).AddParent(NameMaria)

	return r
}

// MustErrorNil FAILS the test if err != nil.
func MustErrorNil(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs FAILS the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want error %v, got %v", op, target, err)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// MustEqualString FAILS the test if got != want.
func MustEqualString(t *testing.T, got, want, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %q, want %q", op, got, want)
	}
}

// MustEqualStrings FAILS the test if the slices differ (nil and empty are equal).
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %q, want %q", op, got, want)
	}
}

// MustEqualLines FAILS the test if the generation lists differ.
func MustEqualLines(t *testing.T, got, want [][]string, op string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d generations %q, want %d %q", op, len(got), got, len(want), want)
	}
	for i := range want {
		MustEqualStrings(t, got[i], want[i], op)
	}
}

// MustSymmetric FAILS the test if any edge lacks its mirror.
func MustSymmetric(t *testing.T, r *core.Registry) {
	t.Helper()
	for _, m := range r.Members() {
		for _, p := range r.Inheritance(core.Parent, m.Code()) {
			if !contains(r.Inheritance(core.Child, p), m.Code()) {
				t.Fatalf("symmetry: %q has parent %q but is not its child", m.Code(), p)
			}
		}
		for _, c := range r.Inheritance(core.Child, m.Code()) {
			if !contains(r.Inheritance(core.Parent, c), m.Code()) {
				t.Fatalf("symmetry: %q has child %q but is not its parent", m.Code(), c)
			}
		}
	}
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}
