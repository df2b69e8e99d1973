package user

// Identity is the authenticated caller as resolved from the access token.
// Services receive it explicitly so authorization checks live with the
// domain logic instead of scattered role-string comparisons.
type Identity struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

// Can resolves a capability for the identity's role.
func (i Identity) Can(p Permission) bool {
	return HasPermission(i.Role, p)
}
