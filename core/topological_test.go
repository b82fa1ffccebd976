// SPDX-License-Identifier: MIT

package core_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/kinship/core"
)

// TestElderOrder_Sample verifies the deterministic order and that every
// parent precedes its children.
func TestElderOrder_Sample(t *testing.T) {
	r := BuildSampleFamily()

	got, err := r.ElderOrder(context.Background())
	MustErrorNil(t, err, "ElderOrder")

	want := []string{
		CodeYolanda, CodeMaria, CodeJesusGarcia, CodeIsidro,
		CodeCarmen, CodeFlorelia, CodeNorelis, CodeJesusMarques, CodeAntonio,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ElderOrder = %v; want %v", got, want)
	}

	pos := make(map[string]int, len(got))
	for i, c := range got {
		pos[c] = i
	}
	for _, m := range r.Members() {
		for _, child := range m.Children().Codes() {
			if pos[m.Code()] > pos[child] {
				t.Errorf("%s ordered after its child %s", m.Code(), child)
			}
		}
	}
}

func TestElderOrder_Empty(t *testing.T) {
	got, err := core.NewRegistry().ElderOrder(nil)
	MustErrorNil(t, err, "ElderOrder")
	MustEqualInt(t, len(got), 0, "len(ElderOrder)")
}

func TestElderOrder_Cycle(t *testing.T) {
	r := core.NewRegistry()
	r.Get("A").AddParent("B")
	r.Get("B").AddParent("A")

	_, err := r.ElderOrder(context.Background())
	MustErrorIs(t, err, core.ErrCycleDetected, "ElderOrder")
}

func TestElderOrder_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildSampleFamily().ElderOrder(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ElderOrder error = %v; want context.Canceled", err)
	}
}
