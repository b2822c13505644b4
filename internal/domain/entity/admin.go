package entity

import "time"

// Admin is an authenticated operator. The core treats the verified admin id
// as an opaque caller identity.
type Admin struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}
