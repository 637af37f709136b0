package greed

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestRollIsDeterministic ensures the seed fully determines the dice.
func TestRollIsDeterministic(t *testing.T) {
	seed := int64(42)
	rng := rand.New(rand.NewSource(seed))
	want := make([]int, DefaultDice)
	for i := range want {
		want[i] = rng.Intn(6) + 1
	}

	result, err := Roll(RollRequest{Count: DefaultDice, Seed: seed})
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if diff := cmp.Diff(want, result.Dice); diff != "" {
		t.Fatalf("dice mismatch (-want +got):\n%s", diff)
	}
	if result.Seed != seed {
		t.Fatalf("expected seed %d, got %d", seed, result.Seed)
	}
	if result.Score != Score(want) {
		t.Fatalf("expected score %d, got %d", Score(want), result.Score)
	}
	if result.Breakdown.Total != result.Score {
		t.Fatalf("breakdown total %d != score %d", result.Breakdown.Total, result.Score)
	}

	again, err := Roll(RollRequest{Count: DefaultDice, Seed: seed})
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if diff := cmp.Diff(result, again); diff != "" {
		t.Fatalf("repeat roll mismatch (-first +second):\n%s", diff)
	}
}

func TestRollFacesInRange(t *testing.T) {
	result, err := Roll(RollRequest{Count: MaxDice, Seed: 7})
	if err != nil {
		t.Fatalf("Roll returned error: %v", err)
	}
	if len(result.Dice) != MaxDice {
		t.Fatalf("expected %d dice, got %d", MaxDice, len(result.Dice))
	}
	for i, face := range result.Dice {
		if face < MinFace || face > MaxFace {
			t.Fatalf("die %d = %d, out of range", i, face)
		}
	}
}

func TestRollRejectsMissingDice(t *testing.T) {
	_, err := Roll(RollRequest{Seed: 1})
	if !errors.Is(err, ErrMissingDice) {
		t.Fatalf("Roll error = %v, want %v", err, ErrMissingDice)
	}
}

func TestRollRejectsInvalidCount(t *testing.T) {
	for _, count := range []int{-1, MaxDice + 1} {
		_, err := Roll(RollRequest{Count: count, Seed: 1})
		if !errors.Is(err, ErrInvalidDiceCount) {
			t.Fatalf("Roll(count=%d) error = %v, want %v", count, err, ErrInvalidDiceCount)
		}
	}
}
