package auth

// Caller identifies who is asking for matches. Verification of credentials
// happens upstream (API key middleware or the gateway's JWT check); this
// type only carries the outcome.
type Caller struct {
	Role   string
	UserID string
}

const (
	RoleOpen      = "open"      // no auth configured, full visibility
	RoleAPIKey    = "api_key"   // privileged service-to-service caller
	RoleRecruiter = "recruiter" // sees only applicants to their own jobs
	RoleClient    = "client"    // sees matches for their own jobs only
)

func Open() Caller {
	return Caller{Role: RoleOpen}
}

func APIKey() Caller {
	return Caller{Role: RoleAPIKey}
}

func (c Caller) Privileged() bool {
	return c.Role == RoleAPIKey || c.Role == RoleOpen
}
