// Package authz implements the access rules for trips. Membership is
// carried inside the trip document itself, so the checks are plain
// predicates over the aggregate rather than lookups in a role table.
package authz

import "travelmate/internal/models"

// IsParticipant reports whether subject may read the trip and mutate
// its sub-collections.
func IsParticipant(trip *models.Trip, subject string) bool {
	if trip == nil {
		return false
	}
	for _, p := range trip.Participants {
		if p == subject {
			return true
		}
	}
	return false
}

// IsOwner reports whether subject may update or delete the trip itself
// and invite new participants.
func IsOwner(trip *models.Trip, subject string) bool {
	return trip != nil && trip.CreatedBy == subject
}
