package dto

// MatchRecord is the externally visible shape of one scored candidate. The
// experience_match and location_match fields are loosely typed on the wire:
// the single-job fallback puts sub-score percentages there, the batch
// fallback a summary string and a bool, and the primary path passes the
// agent's values through untouched.
type MatchRecord struct {
	CandidateID            string  `json:"candidate_id"`
	Name                   string  `json:"name"`
	Email                  string  `json:"email"`
	Score                  float64 `json:"score"`
	SkillsMatch            string  `json:"skills_match"`
	ExperienceMatch        any     `json:"experience_match"`
	LocationMatch          any     `json:"location_match"`
	Reasoning              string  `json:"reasoning"`
	RecommendationStrength string  `json:"recommendation_strength"`
}

// MatchResponse is the single-job response. AgentStatus tells which path
// produced the result: "connected" (agent), "disconnected" (fallback),
// "scoped" (empty visibility scope, no matching attempted) or "error".
type MatchResponse struct {
	Matches          []MatchRecord `json:"matches"`
	TopCandidates    []MatchRecord `json:"top_candidates"`
	JobID            string        `json:"job_id"`
	Limit            int           `json:"limit"`
	TotalCandidates  int           `json:"total_candidates"`
	AlgorithmVersion string        `json:"algorithm_version,omitempty"`
	ProcessingTime   string        `json:"processing_time,omitempty"`
	AIAnalysis       string        `json:"ai_analysis,omitempty"`
	AgentStatus      string        `json:"agent_status"`
	Error            string        `json:"error,omitempty"`
}

type BatchMatchRequest struct {
	JobIDs []string `json:"job_ids"`
	Limit  int      `json:"limit"`
}

type BatchJobResult struct {
	JobID           string        `json:"job_id"`
	Matches         []MatchRecord `json:"matches"`
	TopCandidates   []MatchRecord `json:"top_candidates"`
	TotalCandidates int           `json:"total_candidates"`
	Algorithm       string        `json:"algorithm"`
	ProcessingTime  string        `json:"processing_time,omitempty"`
	AIAnalysis      string        `json:"ai_analysis,omitempty"`
}

type BatchMatchResponse struct {
	BatchResults            map[string]BatchJobResult `json:"batch_results"`
	TotalJobsProcessed      int                       `json:"total_jobs_processed"`
	TotalCandidatesAnalyzed int                       `json:"total_candidates_analyzed"`
	AlgorithmVersion        string                    `json:"algorithm_version,omitempty"`
	Status                  string                    `json:"status"`
	AgentStatus             string                    `json:"agent_status"`
}
