package utils

import "github.com/google/uuid"

// IsOwnerOrAdmin is the single authorization rule for mutating a resource
// owned by another user. Stores, ratings and the store dashboard all route
// their ownership checks through here so the policy cannot drift between
// handlers.
func IsOwnerOrAdmin(callerID uuid.UUID, callerRole string, ownerID uuid.UUID) bool {
	if callerRole == "admin" {
		return true
	}
	return callerID == ownerID
}
