package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fadilmartias/talent-matcher/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// AgentCandidate is one ranked candidate as returned by the agent service.
// The agent's score is trusted as-is; experience_match and location_match are
// passed through untyped because the agent is free to send numbers, strings
// or booleans there.
type AgentCandidate struct {
	CandidateID     string
	Name            string
	Email           string
	Score           float64
	SkillsMatch     []string
	ExperienceMatch any
	LocationMatch   any
	Reasoning       string
}

type AgentMatchResult struct {
	TopCandidates    []AgentCandidate
	AlgorithmVersion string
	ProcessingTime   string
}

type AgentBatchJob struct {
	JobID          string
	Matches        []AgentCandidate
	Algorithm      string
	ProcessingTime string
}

type AgentBatchResult struct {
	BatchResults            map[string]AgentBatchJob
	TotalJobsProcessed      int
	TotalCandidatesAnalyzed int
	AlgorithmVersion        string
}

type AgentServiceInterface interface {
	Match(ctx context.Context, jobID string, candidateIDs []string) (*AgentMatchResult, error)
	BatchMatch(ctx context.Context, jobIDs []string) (*AgentBatchResult, error)
}

// AgentService talks to the remote semantic matcher. It never touches the
// database; any non-success outcome (transport error, timeout, non-200,
// unparseable body) comes back as a plain error and the caller decides what
// to do with it.
type AgentService struct {
	client       *resty.Client
	baseURL      string
	matchTimeout time.Duration
	batchTimeout time.Duration
	logger       *zap.Logger
}

func NewAgentService(logger *zap.Logger) *AgentService {
	return newAgentService(config.LoadAgentConfig(), logger)
}

func newAgentService(cfg *config.AgentConfig, logger *zap.Logger) *AgentService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &AgentService{
		client:       client,
		baseURL:      cfg.BaseURL,
		matchTimeout: cfg.MatchTimeout,
		batchTimeout: cfg.BatchTimeout,
		logger:       logger,
	}
}

func (s *AgentService) Match(ctx context.Context, jobID string, candidateIDs []string) (*AgentMatchResult, error) {
	if candidateIDs == nil {
		candidateIDs = []string{}
	}
	ctx, cancel := context.WithTimeout(ctx, s.matchTimeout)
	defer cancel()

	s.logger.Debug("calling agent /match",
		zap.String("job_id", jobID),
		zap.Int("scoped_candidates", len(candidateIDs)))

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"job_id":        jobID,
			"candidate_ids": candidateIDs,
		}).
		Post("/match")
	if err != nil {
		return nil, fmt.Errorf("agent match call: %w", err)
	}

	body, err := agentBody(resp)
	if err != nil {
		return nil, err
	}

	result := &AgentMatchResult{
		AlgorithmVersion: gjson.Get(body, "algorithm_version").String(),
		ProcessingTime:   processingTime(gjson.Get(body, "processing_time")),
	}
	for _, c := range gjson.Get(body, "top_candidates").Array() {
		result.TopCandidates = append(result.TopCandidates, parseAgentCandidate(c))
	}
	return result, nil
}

func (s *AgentService) BatchMatch(ctx context.Context, jobIDs []string) (*AgentBatchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.batchTimeout)
	defer cancel()

	s.logger.Debug("calling agent /batch-match", zap.Int("jobs", len(jobIDs)))

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{"job_ids": jobIDs}).
		Post("/batch-match")
	if err != nil {
		return nil, fmt.Errorf("agent batch-match call: %w", err)
	}

	body, err := agentBody(resp)
	if err != nil {
		return nil, err
	}

	result := &AgentBatchResult{
		BatchResults:            map[string]AgentBatchJob{},
		TotalJobsProcessed:      int(gjson.Get(body, "total_jobs_processed").Int()),
		TotalCandidatesAnalyzed: int(gjson.Get(body, "total_candidates_analyzed").Int()),
		AlgorithmVersion:        gjson.Get(body, "algorithm_version").String(),
	}
	gjson.Get(body, "batch_results").ForEach(func(key, value gjson.Result) bool {
		job := AgentBatchJob{
			JobID:          value.Get("job_id").String(),
			Algorithm:      value.Get("algorithm").String(),
			ProcessingTime: processingTime(value.Get("processing_time")),
		}
		for _, c := range value.Get("matches").Array() {
			job.Matches = append(job.Matches, parseAgentCandidate(c))
		}
		result.BatchResults[key.String()] = job
		return true
	})
	return result, nil
}

func agentBody(resp *resty.Response) (string, error) {
	if resp.StatusCode() != http.StatusOK {
		// 503 while the engine loads its model is the common case here
		return "", fmt.Errorf("agent service returned status %d", resp.StatusCode())
	}
	body := resp.String()
	if !gjson.Valid(body) {
		return "", fmt.Errorf("agent service returned malformed body")
	}
	return body, nil
}

func parseAgentCandidate(c gjson.Result) AgentCandidate {
	skills := make([]string, 0)
	for _, s := range c.Get("skills_match").Array() {
		skills = append(skills, s.String())
	}
	return AgentCandidate{
		CandidateID:     c.Get("candidate_id").String(),
		Name:            c.Get("name").String(),
		Email:           c.Get("email").String(),
		Score:           c.Get("score").Float(),
		SkillsMatch:     skills,
		ExperienceMatch: c.Get("experience_match").Value(),
		LocationMatch:   c.Get("location_match").Value(),
		Reasoning:       c.Get("reasoning").String(),
	}
}

func processingTime(r gjson.Result) string {
	if !r.Exists() {
		return "0s"
	}
	if r.Type == gjson.String {
		return r.String()
	}
	return fmt.Sprintf("%vs", r.Value())
}
