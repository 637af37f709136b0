package greed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidFace indicates a die value is not a face between 1 and 6.
var ErrInvalidFace = errors.New("die face must be between 1 and 6")

// ParseDice parses faces separated by whitespace or commas, e.g. "1 1 5" or "1,1,5".
func ParseDice(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	dice := make([]int, 0, len(fields))
	for i, field := range fields {
		face, err := strconv.Atoi(field)
		if err != nil || face < MinFace || face > MaxFace {
			return nil, fmt.Errorf("die %d (%q): %w", i+1, field, ErrInvalidFace)
		}
		dice = append(dice, face)
	}
	return dice, nil
}

// ParseDiceArgs parses command-line arguments, each holding one or more faces.
func ParseDiceArgs(args []string) ([]int, error) {
	return ParseDice(strings.Join(args, " "))
}
