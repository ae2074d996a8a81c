package domain

// Principal is the authenticated identity acting on the current request.
// It is rebuilt from the verified token plus a fresh user lookup on every
// request and never persisted.
type Principal struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
