package models

// ExternalIdentity is what a completed Google sign-in tells us about the user.
// Subject is the stable key; the rest is refreshed on every sign-in.
type ExternalIdentity struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	default:
		return "unknown"
	}
}
