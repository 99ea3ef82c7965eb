package usecase

import (
	"strings"

	"github.com/fadilmartias/talent-matcher/internal/auth"
	"github.com/fadilmartias/talent-matcher/internal/matching"
	"github.com/fadilmartias/talent-matcher/internal/model"
)

// Store interfaces cover the read-only queries the matcher needs. The gorm
// repositories in internal/repository satisfy them.
type JobStore interface {
	FindJobByID(id string) (*model.Job, error)
	ActiveJobIDsByRecruiter(recruiterID string) ([]string, error)
	ActiveJobIDsByClient(clientID string) ([]string, error)
	ActiveJobIDsByRecruiters(recruiterIDs []string) ([]string, error)
}

type CandidateStore interface {
	FindByIDs(ids []string) ([]model.Candidate, error)
	FindAll(limit int) ([]model.Candidate, error)
}

type ApplicationStore interface {
	DistinctCandidateIDs(jobIDs []string) ([]string, error)
}

type ConnectionStore interface {
	ConnectedRecruiterIDs(clientID string) ([]string, error)
}

// ScopeResolver computes the candidate visibility scope for a caller and
// checks job ownership. Malformed or empty identifiers degrade to empty id
// sets, which read as "no access" rather than an internal error.
type ScopeResolver struct {
	jobs         JobStore
	applications ApplicationStore
	connections  ConnectionStore
}

func NewScopeResolver(jobs JobStore, applications ApplicationStore, connections ConnectionStore) *ScopeResolver {
	return &ScopeResolver{jobs: jobs, applications: applications, connections: connections}
}

// ForJob resolves the visibility scope of caller for one target job.
//
// Recruiters are confined to candidates who applied to their own active jobs;
// asking for a job they do not own is an authorization violation. Clients may
// only ask about their own jobs (directly owned or posted by a connected
// recruiter) but then see the full applicant universe for it, not a narrowed
// pool. Privileged callers are unrestricted.
func (r *ScopeResolver) ForJob(caller auth.Caller, jobID string) (matching.Scope, error) {
	switch caller.Role {
	case auth.RoleRecruiter:
		return r.recruiterScope(caller.UserID, jobID)
	case auth.RoleClient:
		return r.clientScope(caller.UserID, jobID)
	default:
		return matching.Unrestricted(), nil
	}
}

func (r *ScopeResolver) recruiterScope(recruiterID, jobID string) (matching.Scope, error) {
	recruiterID = strings.TrimSpace(recruiterID)
	if recruiterID == "" {
		return matching.Scope{}, ErrJobForbidden
	}
	jobIDs, err := r.jobs.ActiveJobIDsByRecruiter(recruiterID)
	if err != nil {
		return matching.Scope{}, err
	}
	if !containsID(jobIDs, jobID) {
		return matching.Scope{}, ErrJobForbidden
	}
	// Pool is the recruiter's applicants across all their active jobs, the
	// same population their dashboard counts.
	candidateIDs, err := r.applications.DistinctCandidateIDs(jobIDs)
	if err != nil {
		return matching.Scope{}, err
	}
	return matching.Restricted(candidateIDs), nil
}

func (r *ScopeResolver) clientScope(clientID, jobID string) (matching.Scope, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return matching.Scope{}, ErrJobForbidden
	}
	jobIDs, err := r.jobs.ActiveJobIDsByClient(clientID)
	if err != nil {
		return matching.Scope{}, err
	}
	recruiterIDs, err := r.connections.ConnectedRecruiterIDs(clientID)
	if err != nil {
		return matching.Scope{}, err
	}
	if len(recruiterIDs) > 0 {
		recruiterJobIDs, err := r.jobs.ActiveJobIDsByRecruiters(recruiterIDs)
		if err != nil {
			return matching.Scope{}, err
		}
		jobIDs = append(jobIDs, recruiterJobIDs...)
	}
	if !containsID(jobIDs, jobID) {
		return matching.Scope{}, ErrJobForbidden
	}
	// Clients see every applicant for their own job.
	return matching.Unrestricted(), nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
