package models

import "time"

// User is the minimal identity record behind the auth token contract.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FCMToken     string    `json:"fcm_token,omitempty" bson:"fcm_token,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Identity is what authenticated handlers hand to the chat service. A zero
// UserID means the caller is not authenticated.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"-"`
}

// IsAuthenticated reports whether the identity carries a real user.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != ""
}
