package matching

import (
	"sort"
	"strings"

	"github.com/fadilmartias/talent-matcher/internal/model"
)

// Scoring weights and bounds for the deterministic fallback. The total is
// deliberately clamped into [50, 95]: without the semantic engine the
// algorithm never claims certainty in either direction.
const (
	skillWeight      = 0.5
	experienceWeight = 0.3
	locationWeight   = 0.2

	neutralScore = 50
	minTotal     = 50
	maxTotal     = 95

	pointsPerSkill = 12
)

// JobProfile is the per-job precomputation shared across all candidates of
// one match run. Build it once with ProfileJob.
type JobProfile struct {
	Tokens        map[string]struct{}
	Location      string
	RequiredYears int
	HasYears      bool
}

func ProfileJob(job *model.Job) JobProfile {
	reqText := strings.ToLower(job.RequirementText())
	years, ok := RequiredYears(reqText)
	return JobProfile{
		Tokens:        SkillTokens(reqText),
		Location:      strings.ToLower(strings.TrimSpace(job.Location)),
		RequiredYears: years,
		HasYears:      ok,
	}
}

type CandidateScore struct {
	Candidate       model.Candidate
	Total           int
	MatchedSkills   []string
	SkillScore      int
	ExperienceScore int
	LocationScore   int
}

// ScoreCandidate computes the weighted deterministic score of one candidate
// against one job profile.
func ScoreCandidate(p JobProfile, cand model.Candidate) CandidateScore {
	matched := MatchedSkills(p.Tokens, cand.TechnicalSkills)

	skillScore := neutralScore
	if len(p.Tokens) > 0 {
		skillScore = pointsPerSkill * len(matched)
		if skillScore > 100 {
			skillScore = 100
		}
	}

	locationScore := 0
	candLocation := strings.ToLower(strings.TrimSpace(cand.Location))
	if p.Location != "" && candLocation != "" &&
		(strings.Contains(candLocation, p.Location) || strings.Contains(p.Location, candLocation)) {
		locationScore = 100
	}

	experienceScore := neutralScore
	if p.HasYears {
		exp := cand.Experience()
		if exp >= p.RequiredYears {
			experienceScore = 100
		} else {
			experienceScore = 100 * exp / p.RequiredYears
			if experienceScore < 0 {
				experienceScore = 0
			}
		}
	}

	total := int(float64(skillScore)*skillWeight +
		float64(experienceScore)*experienceWeight +
		float64(locationScore)*locationWeight)
	if total < minTotal {
		total = minTotal
	}
	if total > maxTotal {
		total = maxTotal
	}

	return CandidateScore{
		Candidate:       cand,
		Total:           total,
		MatchedSkills:   matched,
		SkillScore:      skillScore,
		ExperienceScore: experienceScore,
		LocationScore:   locationScore,
	}
}

// Rank orders scores for output: total desc, then skill score desc, then
// experience score desc. Stable so equal candidates keep scan order.
func Rank(scores []CandidateScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Total != scores[j].Total {
			return scores[i].Total > scores[j].Total
		}
		if scores[i].SkillScore != scores[j].SkillScore {
			return scores[i].SkillScore > scores[j].SkillScore
		}
		return scores[i].ExperienceScore > scores[j].ExperienceScore
	})
}
