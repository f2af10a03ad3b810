package models

import "time"

// Session is a server-side login session stored in MongoDB. The token is
// carried in an HttpOnly cookie; user id and email are the server-recognized
// proof of login every ownership check compares against.
type Session struct {
	Token     string    `json:"session_id" bson:"token"`
	UserID    uint      `json:"user_id" bson:"user_id"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"-" bson:"created_at"`
	ExpiresAt time.Time `json:"-" bson:"expires_at"`
}
