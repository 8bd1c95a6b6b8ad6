package domain

// MaxRoleNameLen caps the role name length.
const MaxRoleNameLen = 10

// Role is an authorization label. Name is used verbatim as the role claim
// string in issued tokens, e.g. "ADMIN" or "USER".
type Role struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
