package scenario

import (
	"github.com/louisbranch/greed/internal/greed"
	"github.com/louisbranch/greed/internal/random"
)

func (r *Runner) runStep(step Step) error {
	switch step.Kind {
	case "score":
		return r.runScoreStep(step)
	case "roll":
		return r.runRollStep(step)
	case "permute":
		return r.runPermuteStep(step)
	default:
		return r.failf("unknown step kind %q", step.Kind)
	}
}

func (r *Runner) runScoreStep(step Step) error {
	dice, err := r.diceArg(step)
	if err != nil {
		return err
	}
	expect, ok := intArg(step.Args, "expect")
	if !ok {
		return r.failf("score step requires expect")
	}
	got := greed.Score(dice)
	r.logf("score %v = %d", dice, got)
	if got != expect {
		return r.assertf("score %v = %d, want %d", dice, got, expect)
	}
	return nil
}

func (r *Runner) runRollStep(step Step) error {
	count, ok := intArg(step.Args, "count")
	if !ok {
		count = greed.DefaultDice
	}
	seed, err := r.resolveSeed(step)
	if err != nil {
		return err
	}

	result, err := greed.Roll(greed.RollRequest{Count: count, Seed: seed})
	if err != nil {
		return r.failf("roll: %w", err)
	}
	r.logf("roll seed=%d dice=%v score=%d", result.Seed, result.Dice, result.Score)

	if result.Breakdown.Total != greed.Score(result.Dice) {
		return r.assertf("roll %v breakdown total %d != score %d", result.Dice, result.Breakdown.Total, greed.Score(result.Dice))
	}
	if expect, ok := intArg(step.Args, "expect"); ok && result.Score != expect {
		return r.assertf("roll seed=%d dice=%v score %d, want %d", result.Seed, result.Dice, result.Score, expect)
	}
	return nil
}

func (r *Runner) resolveSeed(step Step) (int64, error) {
	if seed, ok := intArg(step.Args, "seed"); ok && seed != 0 {
		return int64(seed), nil
	}
	if r.seeds != nil {
		return random.SeedFrom(r.seeds)
	}
	return random.ResolveSeed(0)
}

// runPermuteStep checks that every rotation and the reversal of a roll
// score the same as the roll itself.
func (r *Runner) runPermuteStep(step Step) error {
	dice, err := r.diceArg(step)
	if err != nil {
		return err
	}
	want := greed.Score(dice)
	for _, variant := range orderings(dice) {
		if got := greed.Score(variant); got != want {
			return r.assertf("score %v = %d, want %d (same dice as %v)", variant, got, want, dice)
		}
	}
	r.logf("permute %v = %d", dice, want)
	return nil
}

func orderings(dice []int) [][]int {
	variants := make([][]int, 0, len(dice)+1)
	for shift := range dice {
		rotated := make([]int, 0, len(dice))
		rotated = append(rotated, dice[shift:]...)
		rotated = append(rotated, dice[:shift]...)
		variants = append(variants, rotated)
	}
	reversed := make([]int, len(dice))
	for i, face := range dice {
		reversed[len(dice)-1-i] = face
	}
	return append(variants, reversed)
}

func (r *Runner) diceArg(step Step) ([]int, error) {
	dice, ok := step.Args["dice"].([]int)
	if !ok {
		return nil, r.failf("%s step requires dice", step.Kind)
	}
	return dice, nil
}

func intArg(args map[string]any, key string) (int, bool) {
	value, ok := args[key].(int)
	return value, ok
}
