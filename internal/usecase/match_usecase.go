package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fadilmartias/talent-matcher/internal/auth"
	"github.com/fadilmartias/talent-matcher/internal/dto"
	"github.com/fadilmartias/talent-matcher/internal/matching"
	"github.com/fadilmartias/talent-matcher/internal/model"
	"github.com/fadilmartias/talent-matcher/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	agentStatusConnected    = "connected"
	agentStatusDisconnected = "disconnected"
	agentStatusScoped       = "scoped"
	agentStatusError        = "error"

	versionScoped        = "2.0.0-scoped"
	versionFallback      = "2.0.0-db-fallback"
	versionBatchFallback = "2.0.0-db-fallback-batch"
	versionAgentDefault  = "2.0.0-agent"

	maxSingleLimit = 50
	maxBatchJobs   = 10

	// fallback scan bounds: the whole pool for a single job, a small fixed
	// sample for batch
	candidateScanLimit   = 2000
	batchCandidateSample = 5
)

type MatchUsecase struct {
	jobs       JobStore
	candidates CandidateStore
	scopes     *ScopeResolver
	agent      service.AgentServiceInterface
	logger     *zap.Logger
}

func NewMatchUsecase(jobs JobStore, candidates CandidateStore, scopes *ScopeResolver, agent service.AgentServiceInterface, logger *zap.Logger) *MatchUsecase {
	return &MatchUsecase{jobs: jobs, candidates: candidates, scopes: scopes, agent: agent, logger: logger}
}

// TopMatches ranks candidates for one job on behalf of caller. The agent
// service is the primary path; any non-success there drops us into the
// deterministic fallback. A restricted scope with no candidates never
// reaches the agent at all.
func (uc *MatchUsecase) TopMatches(ctx context.Context, caller auth.Caller, jobID string, limit int) (*dto.MatchResponse, error) {
	if limit < 1 || limit > maxSingleLimit {
		return nil, ErrInvalidLimit
	}

	scope, err := uc.scopes.ForJob(caller, jobID)
	if err != nil {
		return nil, err
	}

	if scope.Empty() {
		return &dto.MatchResponse{
			Matches:          []dto.MatchRecord{},
			TopCandidates:    []dto.MatchRecord{},
			JobID:            jobID,
			Limit:            limit,
			AlgorithmVersion: versionScoped,
			AIAnalysis:       "No applicants in recruiter scope",
			AgentStatus:      agentStatusScoped,
		}, nil
	}

	var scopeIDs []string
	if scope.IsRestricted() {
		scopeIDs = scope.IDs()
	}

	result, err := uc.agent.Match(ctx, jobID, scopeIDs)
	if err != nil {
		uc.logger.Warn("agent service unavailable, using fallback matching",
			zap.String("job_id", jobID), zap.Error(err))
		return uc.fallback(jobID, limit, scope), nil
	}
	return uc.primaryResponse(jobID, limit, scope, result), nil
}

// primaryResponse reconciles the agent's ranking against the caller's scope:
// out-of-scope candidates are discarded, the rest re-sorted by the agent's
// own score and truncated. The agent's scores are trusted as-is.
func (uc *MatchUsecase) primaryResponse(jobID string, limit int, scope matching.Scope, result *service.AgentMatchResult) *dto.MatchResponse {
	candidates := result.TopCandidates
	if scope.IsRestricted() {
		kept := make([]service.AgentCandidate, 0, len(candidates))
		for _, c := range candidates {
			if scope.Contains(c.CandidateID) {
				kept = append(kept, c)
			}
		}
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Score > kept[j].Score })
		capped := limit
		if scope.Size() < capped {
			capped = scope.Size()
		}
		if len(kept) > capped {
			kept = kept[:capped]
		}
		candidates = kept
	} else if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	records := make([]dto.MatchRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, dto.MatchRecord{
			CandidateID:            c.CandidateID,
			Name:                   c.Name,
			Email:                  c.Email,
			Score:                  c.Score,
			SkillsMatch:            strings.Join(c.SkillsMatch, ", "),
			ExperienceMatch:        c.ExperienceMatch,
			LocationMatch:          c.LocationMatch,
			Reasoning:              c.Reasoning,
			RecommendationStrength: matching.PrimaryStrength(c.Score),
		})
	}

	version := result.AlgorithmVersion
	if version == "" {
		version = versionAgentDefault
	}
	analysis := "Semantic matching via agent service"
	if scope.IsRestricted() {
		analysis += " (scoped to recruiter applicants)"
	}
	return &dto.MatchResponse{
		Matches:          records,
		TopCandidates:    records,
		JobID:            jobID,
		Limit:            limit,
		TotalCandidates:  len(records),
		AlgorithmVersion: version,
		ProcessingTime:   result.ProcessingTime,
		AIAnalysis:       analysis,
		AgentStatus:      agentStatusConnected,
	}
}

// fallback is the deterministic single-job scorer. It never returns a Go
// error: a missing job or a store failure comes back as a zero-match
// response with the reason annotated.
func (uc *MatchUsecase) fallback(jobID string, limit int, scope matching.Scope) *dto.MatchResponse {
	start := time.Now()

	job, err := uc.jobs.FindJobByID(jobID)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reason = "Job not found"
		}
		return &dto.MatchResponse{
			Matches:       []dto.MatchRecord{},
			TopCandidates: []dto.MatchRecord{},
			JobID:         jobID,
			Limit:         limit,
			Error:         reason,
			AgentStatus:   agentStatusError,
		}
	}

	var candidates []model.Candidate
	if scope.IsRestricted() {
		candidates, err = uc.candidates.FindByIDs(scope.IDs())
	} else {
		candidates, err = uc.candidates.FindAll(candidateScanLimit)
	}
	if err != nil {
		return &dto.MatchResponse{
			Matches:       []dto.MatchRecord{},
			TopCandidates: []dto.MatchRecord{},
			JobID:         jobID,
			Limit:         limit,
			Error:         err.Error(),
			AgentStatus:   agentStatusError,
		}
	}

	profile := matching.ProfileJob(job)
	scored := make([]matching.CandidateScore, 0, len(candidates))
	for _, cand := range candidates {
		scored = append(scored, matching.ScoreCandidate(profile, cand))
	}
	matching.Rank(scored)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	records := make([]dto.MatchRecord, 0, len(scored))
	for _, s := range scored {
		skillsMatch := strings.Join(s.MatchedSkills, ", ")
		if skillsMatch == "" {
			skillsMatch = s.Candidate.TechnicalSkills
		}
		records = append(records, dto.MatchRecord{
			CandidateID:     s.Candidate.ID,
			Name:            s.Candidate.Name,
			Email:           s.Candidate.Email,
			Score:           float64(s.Total),
			SkillsMatch:     skillsMatch,
			ExperienceMatch: s.ExperienceScore,
			LocationMatch:   s.LocationScore,
			Reasoning: fmt.Sprintf("Skills: %d match job requirements; experience %d%%; location %d%%",
				len(s.MatchedSkills), s.ExperienceScore, s.LocationScore),
			RecommendationStrength: matching.FallbackStrength(s.Total),
		})
	}

	return &dto.MatchResponse{
		Matches:          records,
		TopCandidates:    records,
		JobID:            jobID,
		Limit:            limit,
		TotalCandidates:  len(records),
		AlgorithmVersion: versionFallback,
		ProcessingTime:   fmt.Sprintf("%.2fs", time.Since(start).Seconds()),
		AIAnalysis:       "Database fallback - matched by job requirements, skills, experience and location",
		AgentStatus:      agentStatusDisconnected,
	}
}

// BatchMatches runs matching for up to ten jobs at once. This is the
// privileged bulk path: no per-job caller scoping is applied, and the
// fallback uses the coarse batch heuristic instead of the single-job scorer.
func (uc *MatchUsecase) BatchMatches(ctx context.Context, jobIDs []string) (*dto.BatchMatchResponse, error) {
	if len(jobIDs) == 0 {
		return nil, ErrNoJobIDs
	}
	if len(jobIDs) > maxBatchJobs {
		return nil, ErrBatchTooLarge
	}

	result, err := uc.agent.BatchMatch(ctx, jobIDs)
	if err != nil {
		uc.logger.Warn("agent service unavailable, using batch fallback",
			zap.Int("jobs", len(jobIDs)), zap.Error(err))
		return uc.batchFallback(jobIDs)
	}
	return uc.batchPrimaryResponse(jobIDs, result), nil
}

func (uc *MatchUsecase) batchPrimaryResponse(jobIDs []string, result *service.AgentBatchResult) *dto.BatchMatchResponse {
	batchResults := make(map[string]dto.BatchJobResult, len(result.BatchResults))
	for jobID, jobResult := range result.BatchResults {
		records := make([]dto.MatchRecord, 0, len(jobResult.Matches))
		for _, c := range jobResult.Matches {
			records = append(records, dto.MatchRecord{
				CandidateID:            c.CandidateID,
				Name:                   c.Name,
				Email:                  c.Email,
				Score:                  c.Score,
				SkillsMatch:            strings.Join(c.SkillsMatch, ", "),
				ExperienceMatch:        c.ExperienceMatch,
				LocationMatch:          c.LocationMatch,
				Reasoning:              c.Reasoning,
				RecommendationStrength: matching.PrimaryStrength(c.Score),
			})
		}
		batchResults[jobID] = dto.BatchJobResult{
			JobID:           jobResult.JobID,
			Matches:         records,
			TopCandidates:   records,
			TotalCandidates: len(records),
			Algorithm:       jobResult.Algorithm,
			ProcessingTime:  jobResult.ProcessingTime,
			AIAnalysis:      "Semantic matching via agent service",
		}
	}

	totalJobs := result.TotalJobsProcessed
	if totalJobs == 0 {
		totalJobs = len(jobIDs)
	}
	return &dto.BatchMatchResponse{
		BatchResults:            batchResults,
		TotalJobsProcessed:      totalJobs,
		TotalCandidatesAnalyzed: result.TotalCandidatesAnalyzed,
		AlgorithmVersion:        result.AlgorithmVersion,
		Status:                  "success",
		AgentStatus:             agentStatusConnected,
	}
}

// batchFallback scores a small fixed sample of candidates against each job
// with the batch heuristic. Jobs that cannot be loaded degrade to empty
// requirement text instead of failing the whole batch.
func (uc *MatchUsecase) batchFallback(jobIDs []string) (*dto.BatchMatchResponse, error) {
	start := time.Now()

	candidates, err := uc.candidates.FindAll(batchCandidateSample)
	if err != nil {
		return nil, fmt.Errorf("batch fallback: %w", err)
	}

	batchResults := make(map[string]dto.BatchJobResult, len(jobIDs))
	for _, jobID := range jobIDs {
		requirements := ""
		location := ""
		if job, err := uc.jobs.FindJobByID(jobID); err == nil {
			requirements = job.Requirements
			location = job.Location
		}

		records := make([]dto.MatchRecord, 0, len(candidates))
		for i, cand := range candidates {
			bs := matching.BatchScoreCandidate(requirements, location, cand, i)
			records = append(records, dto.MatchRecord{
				CandidateID:     bs.Candidate.ID,
				Name:            bs.Candidate.Name,
				Email:           bs.Candidate.Email,
				Score:           float64(bs.Score),
				SkillsMatch:     bs.Candidate.TechnicalSkills,
				ExperienceMatch: fmt.Sprintf("Skills: %d matches", bs.SkillMatches),
				LocationMatch:   bs.LocationMatched,
				Reasoning: fmt.Sprintf("Fallback batch matching: %d skill matches, location: %t",
					bs.SkillMatches, bs.LocationMatched),
				RecommendationStrength: matching.FallbackStrength(bs.Score),
			})
		}

		batchResults[jobID] = dto.BatchJobResult{
			JobID:           jobID,
			Matches:         records,
			TopCandidates:   records,
			TotalCandidates: len(records),
			Algorithm:       "fallback-batch",
			ProcessingTime:  fmt.Sprintf("%.2fs", time.Since(start).Seconds()),
			AIAnalysis:      "Database fallback - agent service unavailable",
		}
	}

	return &dto.BatchMatchResponse{
		BatchResults:            batchResults,
		TotalJobsProcessed:      len(jobIDs),
		TotalCandidatesAnalyzed: len(candidates),
		AlgorithmVersion:        versionBatchFallback,
		Status:                  "fallback_success",
		AgentStatus:             agentStatusDisconnected,
	}, nil
}
