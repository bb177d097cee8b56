package auth

// IsOwner reports whether the caller may mutate a resource owned by ownerID.
// Identities are compared as opaque strings.
func IsOwner(ownerID, callerID string) bool {
	return ownerID != "" && ownerID == callerID
}
