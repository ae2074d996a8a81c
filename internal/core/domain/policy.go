package domain

// RoleAllows reports whether a principal holding role satisfies required.
// Admin satisfies any requirement.
func RoleAllows(role, required string) bool {
	return role == RoleAdmin || role == required
}

// Owns reports whether the principal may mutate a resource owned by
// ownerEmail. Admin bypasses the ownership check.
func (p Principal) Owns(ownerEmail string) bool {
	return p.Role == RoleAdmin || p.Email == ownerEmail
}
