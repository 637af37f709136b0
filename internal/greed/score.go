// Package greed implements the scoring rules for the dice game Greed.
package greed

import (
	"fmt"
	"strings"
)

const (
	// MinFace is the lowest face on a Greed die.
	MinFace = 1
	// MaxFace is the highest face on a Greed die.
	MaxFace = 6
)

// Counts tallies dice by face. Index 0 is unused so faces index directly.
type Counts struct {
	Faces [MaxFace + 1]int
	// Ignored counts values outside MinFace..MaxFace.
	Ignored int
}

// Of returns how many dice show face.
func (c Counts) Of(face int) int {
	if face < MinFace || face > MaxFace {
		return 0
	}
	return c.Faces[face]
}

// Kind identifies how a group of dice scored.
type Kind int

const (
	KindUnspecified Kind = iota
	KindTriple
	KindSingle
)

func (k Kind) String() string {
	switch k {
	case KindTriple:
		return "triple"
	case KindSingle:
		return "single"
	default:
		return "unspecified"
	}
}

// Part is one scoring contribution within a roll.
type Part struct {
	Face   int
	Kind   Kind
	Dice   int
	Points int
}

func (p Part) String() string {
	switch p.Kind {
	case KindTriple:
		return fmt.Sprintf("triple %ds %d", p.Face, p.Points)
	case KindSingle:
		if p.Dice == 1 {
			return fmt.Sprintf("single %d %d", p.Face, p.Points)
		}
		return fmt.Sprintf("%d x single %d %d", p.Dice, p.Face, p.Points)
	default:
		return fmt.Sprintf("%d", p.Points)
	}
}

// Breakdown lists the parts that make up a score.
type Breakdown struct {
	Parts []Part
	Total int
}

func (b Breakdown) String() string {
	if len(b.Parts) == 0 {
		return "no scoring dice"
	}
	parts := make([]string, 0, len(b.Parts))
	for _, part := range b.Parts {
		parts = append(parts, part.String())
	}
	return strings.Join(parts, " + ")
}

// triplePoints holds the triple bonus per face.
var triplePoints = [MaxFace + 1]int{0, 1000, 200, 300, 400, 500, 600}

// singlePoints holds the value of a face left over after triples.
var singlePoints = [MaxFace + 1]int{0, 100, 0, 0, 0, 50, 0}

// Tally counts the dice by face.
func Tally(dice []int) Counts {
	var counts Counts
	for _, face := range dice {
		if face < MinFace || face > MaxFace {
			counts.Ignored++
			continue
		}
		counts.Faces[face]++
	}
	return counts
}

// Score returns the Greed score for a single roll.
//
// Each face seen three or more times earns its triple bonus once; dice left
// over after the triple score as singles. Only 1s (100) and 5s (50) score as
// singles. Order does not matter, and values outside 1-6 score nothing.
func Score(dice []int) int {
	return Explain(dice).Total
}

// Explain scores a roll and reports every part that contributed.
// Parts are ordered by face, triples before singles.
func Explain(dice []int) Breakdown {
	counts := Tally(dice)
	var breakdown Breakdown
	for face := MinFace; face <= MaxFace; face++ {
		remaining := counts.Faces[face]
		if remaining >= 3 {
			breakdown.add(Part{Face: face, Kind: KindTriple, Dice: 3, Points: triplePoints[face]})
			remaining -= 3
		}
		if remaining > 0 && singlePoints[face] > 0 {
			breakdown.add(Part{Face: face, Kind: KindSingle, Dice: remaining, Points: remaining * singlePoints[face]})
		}
	}
	return breakdown
}

func (b *Breakdown) add(part Part) {
	b.Parts = append(b.Parts, part)
	b.Total += part.Points
}
