package greed

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDice(t *testing.T) {
	tcs := []struct {
		input string
		want  []int
	}{
		{input: "", want: []int{}},
		{input: "1 1 5", want: []int{1, 1, 5}},
		{input: "1,1,5", want: []int{1, 1, 5}},
		{input: " 2, 5 ,2\t2 3 ", want: []int{2, 5, 2, 2, 3}},
	}
	for _, tc := range tcs {
		got, err := ParseDice(tc.input)
		if err != nil {
			t.Fatalf("ParseDice(%q) returned error: %v", tc.input, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ParseDice(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestParseDiceRejectsInvalidFaces(t *testing.T) {
	tcs := []struct {
		input    string
		position string
	}{
		{input: "1 x 5", position: "die 2"},
		{input: "7", position: "die 1"},
		{input: "1,1,0", position: "die 3"},
		{input: "115", position: "die 1"},
	}
	for _, tc := range tcs {
		_, err := ParseDice(tc.input)
		if !errors.Is(err, ErrInvalidFace) {
			t.Fatalf("ParseDice(%q) error = %v, want %v", tc.input, err, ErrInvalidFace)
		}
		if !strings.Contains(err.Error(), tc.position) {
			t.Fatalf("ParseDice(%q) error = %q, want position %q", tc.input, err, tc.position)
		}
	}
}

func TestParseDiceArgs(t *testing.T) {
	got, err := ParseDiceArgs([]string{"1,1", "1", "5 1"})
	if err != nil {
		t.Fatalf("ParseDiceArgs returned error: %v", err)
	}
	if diff := cmp.Diff([]int{1, 1, 1, 5, 1}, got); diff != "" {
		t.Fatalf("ParseDiceArgs mismatch (-want +got):\n%s", diff)
	}
}
