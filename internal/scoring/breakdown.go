package scoring

import "strings"

// Rating buckets for a single metric.
const (
	RatingExcellent = "excellent"
	RatingGood      = "good"
	RatingPoor      = "poor"
)

// UserContext selects which nudge variant to render. It never changes the
// numeric rating, only the wording.
type UserContext struct {
	Diet   string `json:"diet"`
	Health string `json:"health"`
}

// DefaultUserContext is used when no user is supplied or found.
func DefaultUserContext() UserContext {
	return UserContext{Diet: "Standard", Health: "General Wellness"}
}

// MetricRating is one row of the score breakdown shown to the user.
type MetricRating struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	Icon   string  `json:"icon"`
	Rating string  `json:"rating"`
	Nudge  string  `json:"nudge"`
}

// rule is one threshold row. Rules are evaluated top to bottom and the
// first match wins.
type rule struct {
	match  func(v float64) bool
	rating string
	nudge  func(uc UserContext) string
}

type metricSpec struct {
	metric string
	unit   string
	icon   string
	value  func(n Nutrition) float64
	rules  []rule
}

func static(text string) func(UserContext) string {
	return func(UserContext) string { return text }
}

func goalIs(uc UserContext, goal string) bool {
	return strings.EqualFold(strings.TrimSpace(uc.Health), goal)
}

// breakdownSpecs lists the five metrics in their fixed display order.
var breakdownSpecs = []metricSpec{
	{
		metric: "protein",
		unit:   "g",
		icon:   "💪",
		value:  func(n Nutrition) float64 { return n.ProteinPer100g },
		rules: []rule{
			{
				match:  func(v float64) bool { return v > 15 },
				rating: RatingExcellent,
				nudge: func(uc UserContext) string {
					if goalIs(uc, "High Protein") {
						return "Excellent protein hit for your high-protein goal."
					}
					if goalIs(uc, "Weight Loss") {
						return "High protein keeps you fuller for longer."
					}
					return "Excellent source of protein."
				},
			},
			{
				match:  func(v float64) bool { return v > 5 },
				rating: RatingGood,
				nudge:  static("Decent protein content."),
			},
			{
				match:  func(v float64) bool { return true },
				rating: RatingPoor,
				nudge: func(uc UserContext) string {
					if goalIs(uc, "High Protein") {
						return "Too little protein for your goal — look for 15g+ per 100g."
					}
					return "Low in protein."
				},
			},
		},
	},
	{
		metric: "sugar",
		unit:   "g",
		icon:   "🍬",
		value:  func(n Nutrition) float64 { return n.SugarPer100g },
		rules: []rule{
			{
				match:  func(v float64) bool { return v <= 5 },
				rating: RatingExcellent,
				nudge: func(uc UserContext) string {
					if goalIs(uc, "Diabetic") {
						return "Low sugar — a safe pick for blood sugar control."
					}
					return "Low in sugar."
				},
			},
			{
				match:  func(v float64) bool { return v <= 15 },
				rating: RatingGood,
				nudge: func(uc UserContext) string {
					if goalIs(uc, "Diabetic") {
						return "Moderate sugar — keep portions small."
					}
					return "Moderate sugar content."
				},
			},
			{
				match:  func(v float64) bool { return true },
				rating: RatingPoor,
				nudge: func(uc UserContext) string {
					if goalIs(uc, "Diabetic") {
						return "High sugar — best avoided with diabetes."
					}
					if goalIs(uc, "Weight Loss") {
						return "High sugar works against your weight-loss goal."
					}
					return "High in sugar."
				},
			},
		},
	},
	{
		metric: "fiber",
		unit:   "g",
		icon:   "🌾",
		value:  func(n Nutrition) float64 { return n.FiberPer100g },
		rules: []rule{
			{
				match:  func(v float64) bool { return v > 6 },
				rating: RatingExcellent,
				nudge:  static("Excellent source of fiber."),
			},
			{
				match:  func(v float64) bool { return v > 3 },
				rating: RatingGood,
				nudge:  static("Good fiber content."),
			},
			{
				match:  func(v float64) bool { return true },
				rating: RatingPoor,
				nudge:  static("Low in fiber."),
			},
		},
	},
	{
		metric: "salt",
		unit:   "g",
		icon:   "🧂",
		value:  func(n Nutrition) float64 { return n.SaltPer100g },
		rules: []rule{
			{
				match:  func(v float64) bool { return v < 0.3 },
				rating: RatingExcellent,
				nudge:  static("Very low in salt."),
			},
			{
				match:  func(v float64) bool { return v < 1.5 },
				rating: RatingGood,
				nudge:  static("Moderate salt content."),
			},
			{
				match:  func(v float64) bool { return true },
				rating: RatingPoor,
				nudge:  static("High in salt."),
			},
		},
	},
	{
		metric: "additives",
		unit:   "",
		icon:   "🧪",
		value: func(n Nutrition) float64 {
			if n.HasAdditives {
				return 1
			}
			return 0
		},
		rules: []rule{
			{
				match:  func(v float64) bool { return v == 0 },
				rating: RatingExcellent,
				nudge:  static("Clean Label"),
			},
			{
				match:  func(v float64) bool { return true },
				rating: RatingPoor,
				nudge:  static("Contains Additives"),
			},
		},
	},
}

// GenerateBreakdown rates the five fixed metrics in order. The user context
// only affects nudge wording.
func GenerateBreakdown(n Nutrition, uc UserContext) []MetricRating {
	out := make([]MetricRating, 0, len(breakdownSpecs))
	for _, spec := range breakdownSpecs {
		v := spec.value(n)
		for _, r := range spec.rules {
			if !r.match(v) {
				continue
			}
			out = append(out, MetricRating{
				Metric: spec.metric,
				Value:  v,
				Unit:   spec.unit,
				Icon:   spec.icon,
				Rating: r.rating,
				Nudge:  r.nudge(uc),
			})
			break
		}
	}
	return out
}
