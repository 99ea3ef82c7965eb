package matching

// Recommendation labels differ by path: the semantic engine's scores are
// trusted up to "Strong Match", while the deterministic fallback tops out at
// "Good Match". The thresholds are per-path and must stay that way.
const (
	StrengthStrong = "Strong Match"
	StrengthGood   = "Good Match"
	StrengthFair   = "Fair Match"
)

func PrimaryStrength(score float64) string {
	if score > 80 {
		return StrengthStrong
	}
	return StrengthGood
}

func FallbackStrength(score int) string {
	if score > 75 {
		return StrengthGood
	}
	return StrengthFair
}
