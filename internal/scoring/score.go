// Package scoring holds the deterministic health-score rules shared by the
// batch recompute job and the per-request breakdown generator. Everything in
// this package is a pure function of its inputs.
package scoring

import "strings"

const (
	// DefaultScore is used when a product has no nutrition row.
	DefaultScore = 50

	nutritionBase = 60
	additiveBonus = 30
	organicBonus  = 10
)

// Nutrition carries the per-100g facts needed to score a product.
type Nutrition struct {
	SugarPer100g   float64
	SaltPer100g    float64
	ProteinPer100g float64
	FiberPer100g   float64
	HasAdditives   bool
}

// ComputeHealthScore maps nutrition facts plus product identity to an
// integer score in [0,100]. Missing nutrition defaults to DefaultScore
// rather than failing.
func ComputeHealthScore(n *Nutrition, brand, name string) int {
	if n == nil {
		return DefaultScore
	}

	points := nutritionBase

	switch {
	case n.SugarPer100g > 15:
		points -= 20
	case n.SugarPer100g > 5:
		points -= 10
	}

	switch {
	case n.SaltPer100g > 1.5:
		points -= 15
	case n.SaltPer100g > 0.8:
		points -= 8
	}

	if n.ProteinPer100g > 20 {
		points += 5
	}
	if n.FiberPer100g > 5 {
		points += 5
	}

	points = clamp(points, 0, nutritionBase)

	score := points
	if !n.HasAdditives {
		score += additiveBonus
	}
	if isOrganic(brand, name) {
		score += organicBonus
	}

	return clamp(score, 0, 100)
}

func isOrganic(brand, name string) bool {
	return strings.Contains(strings.ToLower(name), "organic") ||
		strings.Contains(strings.ToLower(brand), "organic")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
