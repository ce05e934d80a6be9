package utils

import (
	"testing"

	"go-tower-siege/internal/defs"
)

func TestChooseWeightedIsDeterministicForSeed(t *testing.T) {
	entries := []defs.SpawnEntry{
		{EnemyID: "A", Weight: 3},
		{EnemyID: "B", Weight: 1},
	}
	first := NewPRNGService(42)
	second := NewPRNGService(42)
	for i := 0; i < 50; i++ {
		a, b := first.ChooseWeighted(entries), second.ChooseWeighted(entries)
		if a != b {
			t.Fatalf("step %d: same seed produced %q and %q", i, a, b)
		}
	}
}

func TestChooseWeightedEdgeCases(t *testing.T) {
	rng := NewPRNGService(1)
	if got := rng.ChooseWeighted(nil); got != "" {
		t.Errorf("expected empty id for empty table, got %q", got)
	}
	only := []defs.SpawnEntry{{EnemyID: "ONLY", Weight: 0}}
	if got := rng.ChooseWeighted(only); got != "ONLY" {
		t.Errorf("expected first entry for zero total weight, got %q", got)
	}
	counts := map[string]int{}
	entries := []defs.SpawnEntry{{EnemyID: "A", Weight: 1}, {EnemyID: "B", Weight: 0}}
	for i := 0; i < 100; i++ {
		counts[rng.ChooseWeighted(entries)]++
	}
	if counts["B"] != 0 {
		t.Errorf("expected zero-weight entry never chosen, got %d", counts["B"])
	}
}
