package greed

import (
	"errors"
	"math/rand"
)

const (
	// DefaultDice is the number of dice thrown in a Greed roll.
	DefaultDice = 5
	// MaxDice bounds the dice rolled in a single request.
	MaxDice = 64
)

// ErrMissingDice indicates a roll request asked for no dice.
var ErrMissingDice = errors.New("at least one die must be rolled")

// ErrInvalidDiceCount indicates a roll request asked for a negative or excessive number of dice.
var ErrInvalidDiceCount = errors.New("dice count must be between 1 and 64")

// RollRequest describes a roll of six-sided dice.
type RollRequest struct {
	Count int
	Seed  int64
}

// RollResult captures a roll and its score.
type RollResult struct {
	Dice      []int
	Seed      int64
	Score     int
	Breakdown Breakdown
}

// Roll throws Count six-sided dice and scores them.
//
// Roll is deterministic with respect to Seed: the same Seed and Count always
// produce the same dice in the same order.
func Roll(request RollRequest) (RollResult, error) {
	switch {
	case request.Count == 0:
		return RollResult{}, ErrMissingDice
	case request.Count < 0 || request.Count > MaxDice:
		return RollResult{}, ErrInvalidDiceCount
	}

	rng := rand.New(rand.NewSource(request.Seed))
	dice := make([]int, request.Count)
	for i := range dice {
		dice[i] = rollDie(rng)
	}

	breakdown := Explain(dice)
	return RollResult{
		Dice:      dice,
		Seed:      request.Seed,
		Score:     breakdown.Total,
		Breakdown: breakdown,
	}, nil
}

func rollDie(rng *rand.Rand) int {
	return rng.Intn(MaxFace) + MinFace
}
