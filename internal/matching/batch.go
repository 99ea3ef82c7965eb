package matching

import (
	"strings"

	"github.com/fadilmartias/talent-matcher/internal/model"
)

// The batch path ships its own, much cruder heuristic: a fixed three-keyword
// skill check, one-directional location containment and an index tie-break
// on a small base score. It produces different numbers than ScoreCandidate
// for the same pair on purpose; unifying the two is a product decision, not
// a refactor. Keep them separate.
var batchKeywords = []string{"python", "java", "javascript"}

type BatchScore struct {
	Candidate       model.Candidate
	Score           int
	SkillMatches    int
	LocationMatched bool
}

// BatchScoreCandidate scores one candidate for the batch fallback. index is
// the candidate's position in the sampled list and nudges earlier entries up.
func BatchScoreCandidate(jobRequirements, jobLocation string, cand model.Candidate, index int) BatchScore {
	reqLower := strings.ToLower(jobRequirements)
	skillsLower := strings.ToLower(cand.TechnicalSkills)

	matches := 0
	for _, kw := range batchKeywords {
		if strings.Contains(skillsLower, kw) && strings.Contains(reqLower, kw) {
			matches++
		}
	}

	locationMatched := false
	if jobLocation != "" && cand.Location != "" {
		locationMatched = strings.Contains(strings.ToLower(cand.Location), strings.ToLower(jobLocation))
	}

	score := 60 + matches*10 + (5 - index)
	if locationMatched {
		score += 10
	}
	if score > maxTotal {
		score = maxTotal
	}

	return BatchScore{
		Candidate:       cand,
		Score:           score,
		SkillMatches:    matches,
		LocationMatched: locationMatched,
	}
}
