package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/talent-matcher/internal/auth"
	"github.com/fadilmartias/talent-matcher/internal/model"
	"github.com/fadilmartias/talent-matcher/internal/service"
	"github.com/fadilmartias/talent-matcher/internal/usecase"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// stubStore backs all four store interfaces with in-memory maps.
type stubStore struct {
	jobs          map[string]*model.Job
	recruiterJobs map[string][]string // recruiter id -> active job ids
	clientJobs    map[string][]string // client id -> active job ids
	applicants    map[string][]string // job id -> candidate ids
	connections   map[string][]string // client id -> recruiter ids
	candidates    []model.Candidate
}

func (s *stubStore) FindJobByID(id string) (*model.Job, error) {
	if j, ok := s.jobs[id]; ok {
		return j, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStore) ActiveJobIDsByRecruiter(recruiterID string) ([]string, error) {
	return s.recruiterJobs[recruiterID], nil
}

func (s *stubStore) ActiveJobIDsByClient(clientID string) ([]string, error) {
	return s.clientJobs[clientID], nil
}

func (s *stubStore) ActiveJobIDsByRecruiters(recruiterIDs []string) ([]string, error) {
	var ids []string
	for _, r := range recruiterIDs {
		ids = append(ids, s.recruiterJobs[r]...)
	}
	return ids, nil
}

func (s *stubStore) DistinctCandidateIDs(jobIDs []string) ([]string, error) {
	seen := map[string]bool{}
	var ids []string
	for _, jobID := range jobIDs {
		for _, cid := range s.applicants[jobID] {
			if !seen[cid] {
				seen[cid] = true
				ids = append(ids, cid)
			}
		}
	}
	return ids, nil
}

func (s *stubStore) FindByIDs(ids []string) ([]model.Candidate, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Candidate
	for _, c := range s.candidates {
		if want[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubStore) FindAll(limit int) ([]model.Candidate, error) {
	if len(s.candidates) > limit {
		return s.candidates[:limit], nil
	}
	return s.candidates, nil
}

func (s *stubStore) ConnectedRecruiterIDs(clientID string) ([]string, error) {
	return s.connections[clientID], nil
}

// stubAgent records calls and serves canned results.
type stubAgent struct {
	matchCalls  int
	batchCalls  int
	lastJobID   string
	lastScope   []string
	matchResult *service.AgentMatchResult
	matchErr    error
	batchResult *service.AgentBatchResult
	batchErr    error
}

func (a *stubAgent) Match(_ context.Context, jobID string, candidateIDs []string) (*service.AgentMatchResult, error) {
	a.matchCalls++
	a.lastJobID = jobID
	a.lastScope = candidateIDs
	if a.matchErr != nil {
		return nil, a.matchErr
	}
	return a.matchResult, nil
}

func (a *stubAgent) BatchMatch(_ context.Context, jobIDs []string) (*service.AgentBatchResult, error) {
	a.batchCalls++
	if a.batchErr != nil {
		return nil, a.batchErr
	}
	return a.batchResult, nil
}

func newUsecase(store *stubStore, agent *stubAgent) *usecase.MatchUsecase {
	scopes := usecase.NewScopeResolver(store, store, store)
	return usecase.NewMatchUsecase(store, store, scopes, agent, zap.NewNop())
}

func TestTopMatchesRejectsInvalidLimit(t *testing.T) {
	uc := newUsecase(&stubStore{}, &stubAgent{})
	for _, limit := range []int{0, -1, 51} {
		_, err := uc.TopMatches(context.Background(), auth.APIKey(), "j1", limit)
		if !errors.Is(err, usecase.ErrInvalidLimit) {
			t.Errorf("limit %d: expected ErrInvalidLimit, got %v", limit, err)
		}
	}
}

func TestTopMatchesEmptyScopeNeverCallsAgent(t *testing.T) {
	agent := &stubAgent{matchErr: errors.New("must not be reached")}
	store := &stubStore{
		recruiterJobs: map[string][]string{"r1": {"j1"}},
		applicants:    map[string][]string{}, // no one applied yet
	}
	uc := newUsecase(store, agent)

	resp, err := uc.TopMatches(context.Background(), auth.Caller{Role: auth.RoleRecruiter, UserID: "r1"}, "j1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AgentStatus != "scoped" {
		t.Errorf("agent status = %q, want scoped", resp.AgentStatus)
	}
	if len(resp.Matches) != 0 {
		t.Errorf("expected zero matches, got %d", len(resp.Matches))
	}
	if agent.matchCalls != 0 {
		t.Errorf("agent was called %d times for an empty scope", agent.matchCalls)
	}
}

func TestTopMatchesRecruiterForeignJobRejected(t *testing.T) {
	store := &stubStore{
		recruiterJobs: map[string][]string{"r1": {"j1"}},
		applicants:    map[string][]string{"j1": {"c1"}},
	}
	uc := newUsecase(store, &stubAgent{})

	_, err := uc.TopMatches(context.Background(), auth.Caller{Role: auth.RoleRecruiter, UserID: "r1"}, "j2", 10)
	if !errors.Is(err, usecase.ErrJobForbidden) {
		t.Fatalf("expected ErrJobForbidden, got %v", err)
	}

	// a recruiter owning no jobs has no access at all
	_, err = uc.TopMatches(context.Background(), auth.Caller{Role: auth.RoleRecruiter, UserID: "r2"}, "j1", 10)
	if !errors.Is(err, usecase.ErrJobForbidden) {
		t.Fatalf("expected ErrJobForbidden for jobless recruiter, got %v", err)
	}
}

func TestTopMatchesClientScope(t *testing.T) {
	agent := &stubAgent{matchResult: &service.AgentMatchResult{}}
	store := &stubStore{
		clientJobs:    map[string][]string{"cl1": {"j1"}},
		connections:   map[string][]string{"cl1": {"r1"}},
		recruiterJobs: map[string][]string{"r1": {"j2"}},
	}
	uc := newUsecase(store, agent)
	client := auth.Caller{Role: auth.RoleClient, UserID: "cl1"}

	// job posted by a connected recruiter counts as the client's own
	resp, err := uc.TopMatches(context.Background(), client, "j2", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AgentStatus != "connected" {
		t.Errorf("agent status = %q, want connected", resp.AgentStatus)
	}
	// clients see the full applicant universe, so the agent gets no scope
	if len(agent.lastScope) != 0 {
		t.Errorf("expected unrestricted agent call, got scope %v", agent.lastScope)
	}

	_, err = uc.TopMatches(context.Background(), client, "j3", 10)
	if !errors.Is(err, usecase.ErrJobForbidden) {
		t.Fatalf("expected ErrJobForbidden for foreign job, got %v", err)
	}
}

func TestTopMatchesPrimaryFiltersToScope(t *testing.T) {
	agent := &stubAgent{matchResult: &service.AgentMatchResult{
		TopCandidates: []service.AgentCandidate{
			{CandidateID: "outsider", Score: 99},
			{CandidateID: "c1", Score: 70},
			{CandidateID: "c2", Score: 80},
		},
		AlgorithmVersion: "2.0.0-phase2-ai",
	}}
	store := &stubStore{
		recruiterJobs: map[string][]string{"r1": {"j1"}},
		applicants:    map[string][]string{"j1": {"c1", "c2"}},
	}
	uc := newUsecase(store, agent)

	resp, err := uc.TopMatches(context.Background(), auth.Caller{Role: auth.RoleRecruiter, UserID: "r1"}, "j1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Matches) != 2 {
		t.Fatalf("expected 2 in-scope matches, got %d", len(resp.Matches))
	}
	for _, m := range resp.Matches {
		if m.CandidateID == "outsider" {
			t.Fatal("out-of-scope candidate leaked into output")
		}
	}
	// re-sorted by the agent's score, descending
	if resp.Matches[0].CandidateID != "c2" || resp.Matches[1].CandidateID != "c1" {
		t.Errorf("unexpected order: %s then %s", resp.Matches[0].CandidateID, resp.Matches[1].CandidateID)
	}
	if resp.Matches[0].RecommendationStrength != "Good Match" {
		t.Errorf("score 80 should label Good Match, got %q", resp.Matches[0].RecommendationStrength)
	}
	if resp.AlgorithmVersion != "2.0.0-phase2-ai" {
		t.Errorf("algorithm version not passed through: %q", resp.AlgorithmVersion)
	}
}

func TestTopMatchesFallbackOnAgentFailure(t *testing.T) {
	jobID := uuid.NewString()
	agent := &stubAgent{matchErr: errors.New("connection refused")}
	store := &stubStore{
		jobs: map[string]*model.Job{jobID: {
			ID:           jobID,
			Requirements: "python, django, 5 years experience",
			Location:     "Bangalore",
		}},
		candidates: []model.Candidate{
			{ID: "c1", Name: "A", TechnicalSkills: "Python, Django", Location: "Bangalore", ExperienceYears: "6"},
			{ID: "c2", Name: "B", TechnicalSkills: "Excel"},
		},
	}
	uc := newUsecase(store, agent)

	resp, err := uc.TopMatches(context.Background(), auth.APIKey(), jobID, 10)
	if err != nil {
		t.Fatalf("fallback must not surface agent errors, got %v", err)
	}
	if resp.AgentStatus != "disconnected" {
		t.Errorf("agent status = %q, want disconnected", resp.AgentStatus)
	}
	if len(resp.Matches) != 2 {
		t.Fatalf("expected 2 fallback matches, got %d", len(resp.Matches))
	}
	if resp.Matches[0].CandidateID != "c1" {
		t.Errorf("expected the matching candidate first, got %q", resp.Matches[0].CandidateID)
	}
	for _, m := range resp.Matches {
		if m.Score < 50 || m.Score > 95 {
			t.Errorf("fallback score %v outside [50, 95]", m.Score)
		}
	}
}

func TestTopMatchesFallbackJobNotFound(t *testing.T) {
	agent := &stubAgent{matchErr: errors.New("timeout")}
	uc := newUsecase(&stubStore{}, agent)

	resp, err := uc.TopMatches(context.Background(), auth.APIKey(), "missing", 10)
	if err != nil {
		t.Fatalf("missing job must not be a hard error, got %v", err)
	}
	if resp.Error != "Job not found" {
		t.Errorf("error annotation = %q, want Job not found", resp.Error)
	}
	if len(resp.Matches) != 0 || resp.AgentStatus != "error" {
		t.Errorf("expected empty error-status response, got %+v", resp)
	}
}

func TestBatchMatchesValidation(t *testing.T) {
	uc := newUsecase(&stubStore{}, &stubAgent{})

	if _, err := uc.BatchMatches(context.Background(), nil); !errors.Is(err, usecase.ErrNoJobIDs) {
		t.Errorf("expected ErrNoJobIDs, got %v", err)
	}

	tooMany := make([]string, 11)
	for i := range tooMany {
		tooMany[i] = uuid.NewString()
	}
	if _, err := uc.BatchMatches(context.Background(), tooMany); !errors.Is(err, usecase.ErrBatchTooLarge) {
		t.Errorf("expected ErrBatchTooLarge, got %v", err)
	}
}

func TestBatchMatchesFallback(t *testing.T) {
	agent := &stubAgent{batchErr: errors.New("503")}
	store := &stubStore{
		jobs: map[string]*model.Job{"j1": {
			ID:           "j1",
			Requirements: "python and java",
			Location:     "Jakarta",
		}},
		candidates: []model.Candidate{
			{ID: "c1", TechnicalSkills: "Python", Location: "Jakarta"},
			{ID: "c2", TechnicalSkills: "Figma"},
		},
	}
	uc := newUsecase(store, agent)

	// j2 does not exist; the batch still covers it with degraded inputs
	resp, err := uc.BatchMatches(context.Background(), []string{"j1", "j2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "fallback_success" || resp.AgentStatus != "disconnected" {
		t.Errorf("unexpected status %q/%q", resp.Status, resp.AgentStatus)
	}
	if len(resp.BatchResults) != 2 {
		t.Fatalf("expected results for 2 jobs, got %d", len(resp.BatchResults))
	}
	for jobID, jr := range resp.BatchResults {
		if jr.Algorithm != "fallback-batch" {
			t.Errorf("%s: algorithm = %q, want fallback-batch", jobID, jr.Algorithm)
		}
		if len(jr.Matches) != 2 {
			t.Errorf("%s: expected 2 matches, got %d", jobID, len(jr.Matches))
		}
	}
	j1 := resp.BatchResults["j1"]
	if j1.Matches[0].Score <= resp.BatchResults["j2"].Matches[0].Score {
		t.Error("candidate matching skills and location should outscore the degraded job")
	}
}

func TestBatchMatchesPrimary(t *testing.T) {
	agent := &stubAgent{batchResult: &service.AgentBatchResult{
		BatchResults: map[string]service.AgentBatchJob{
			"j1": {JobID: "j1", Matches: []service.AgentCandidate{
				{CandidateID: "c1", Score: 91},
				{CandidateID: "c2", Score: 55},
			}},
		},
		TotalJobsProcessed:      1,
		TotalCandidatesAnalyzed: 2,
		AlgorithmVersion:        "3.0.0-batch",
	}}
	uc := newUsecase(&stubStore{}, agent)

	resp, err := uc.BatchMatches(context.Background(), []string{"j1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "success" || resp.AgentStatus != "connected" {
		t.Errorf("unexpected status %q/%q", resp.Status, resp.AgentStatus)
	}
	matches := resp.BatchResults["j1"].Matches
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].RecommendationStrength != "Strong Match" {
		t.Errorf("score 91 should label Strong Match, got %q", matches[0].RecommendationStrength)
	}
	if matches[1].RecommendationStrength != "Good Match" {
		t.Errorf("score 55 on the primary path should label Good Match, got %q", matches[1].RecommendationStrength)
	}
}
