package services

const (
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

// Requester is the identity/role pair supplied by the auth layer. It is
// threaded explicitly through every call that scopes or mutates data,
// never read from ambient state.
type Requester struct {
	Email string
	Role  string
}

func (r Requester) IsAdmin() bool { return r.Role == RoleAdmin }
