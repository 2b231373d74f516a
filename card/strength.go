package card

// Strength is the passphrase strength level of an account
type Strength int

const (
	VeryWeak Strength = iota
	Weak
	Fair
	Strong
	VeryStrong
)

var strengthColors = map[Strength]string{
	VeryWeak:   "#f38ba8",
	Weak:       "#fab387",
	Fair:       "#f9e2af",
	Strong:     "#a6e3a1",
	VeryStrong: "#94e2d5",
}

var strengthLabels = map[Strength]string{
	VeryWeak:   "very weak",
	Weak:       "weak",
	Fair:       "fair",
	Strong:     "strong",
	VeryStrong: "very strong",
}

// ClampStrength maps any score to a level in VeryWeak..VeryStrong
func ClampStrength(score int) Strength {
	return Strength(max(int(VeryWeak), min(score, int(VeryStrong))))
}

// Color returns indicator color of strength
func (s Strength) Color() string {
	return strengthColors[ClampStrength(int(s))]
}

// Label returns human readable strength
func (s Strength) Label() string {
	return strengthLabels[ClampStrength(int(s))]
}
