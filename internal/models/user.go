package models

import "time"

// User is a profile document keyed by the identity provider's subject
// identifier. It is upserted from verified claims, never created with
// local credentials.
type User struct {
	UID         string                 `json:"uid" bson:"_id" example:"firebase-uid-1"`
	Email       string                 `json:"email" bson:"email" example:"user@example.com"`
	Name        string                 `json:"name" bson:"name" example:"Jean Dupont"`
	Picture     string                 `json:"picture" bson:"picture" example:"https://example.com/avatar.png"`
	Preferences map[string]interface{} `json:"preferences" bson:"preferences"`
	UpdatedAt   time.Time              `json:"updatedAt" bson:"updatedAt"`
}

// PublicUser is the subset of a profile exposed to other users.
type PublicUser struct {
	UID         string                 `json:"uid" example:"firebase-uid-1"`
	Name        string                 `json:"name" example:"Jean Dupont"`
	Picture     string                 `json:"picture,omitempty"`
	Preferences map[string]interface{} `json:"preferences"`
}

// SearchedUser is one result of an email search.
type SearchedUser struct {
	UID     string `json:"uid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

// UpdateProfileRequest is the payload for updating the caller's profile.
type UpdateProfileRequest struct {
	Name        string                 `json:"name" binding:"omitempty,min=2,max=100" example:"Jean Dupont"`
	Preferences map[string]interface{} `json:"preferences"`
}
