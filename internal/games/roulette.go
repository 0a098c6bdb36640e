package games

import (
	"math"

	"github.com/Flapjacck/pbat/internal/engine"
)

// wheelNumbers is the physical pocket order of a European wheel, clockwise
// from zero. Used for the neighbourhood display, not for picking winners.
var wheelNumbers = [37]int{
	0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13, 36, 11, 30,
	8, 23, 10, 5, 24, 16, 33, 1, 20, 14, 31, 9, 22, 18, 29, 7,
	28, 12, 35, 3, 26,
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// PocketColor returns "green", "red" or "black" for a pocket number.
func PocketColor(n int) string {
	switch {
	case n == 0:
		return "green"
	case redNumbers[n]:
		return "red"
	default:
		return "black"
	}
}

// WheelIndex returns the position of a pocket on the physical wheel.
func WheelIndex(n int) int {
	for i, v := range wheelNumbers {
		if v == n {
			return i
		}
	}
	return -1
}

// WheelNeighbors returns the k pockets either side of n in wheel order,
// with n itself in the middle.
func WheelNeighbors(n, k int) []int {
	idx := WheelIndex(n)
	if idx < 0 {
		return nil
	}
	out := make([]int, 0, 2*k+1)
	for d := -k; d <= k; d++ {
		out = append(out, wheelNumbers[((idx+d)%37+37)%37])
	}
	return out
}

// RouletteGame implements European roulette (37 pockets, 0-36).
type RouletteGame struct{}

// Spec returns metadata about the Roulette game.
func (g *RouletteGame) Spec() GameSpec {
	return GameSpec{
		ID:          "roulette",
		Name:        "Roulette",
		MetricLabel: "pocket",
	}
}

// SpinPocket draws the winning pocket for a nonce: floor(float * 37).
func SpinPocket(seeds engine.Seeds, nonce uint64) int {
	f := engine.NewStream(seeds, nonce, 0).Float64()
	pocket := int(math.Floor(f * 37))
	if pocket > 36 {
		pocket = 36
	}
	return pocket
}

// Replay recomputes the winning pocket and its table properties.
func (g *RouletteGame) Replay(seeds engine.Seeds, nonce uint64, params map[string]any) (Outcome, error) {
	pocket := SpinPocket(seeds, nonce)

	isEven := pocket > 0 && pocket%2 == 0
	isLow := pocket >= 1 && pocket <= 18

	return Outcome{
		Metric:      float64(pocket),
		MetricLabel: "pocket",
		Details: map[string]any{
			"pocket": pocket,
			"color":  PocketColor(pocket),
			"even":   isEven,
			"low":    isLow,
		},
	}, nil
}
