package models

import "time"

// AdminCredentials is the singleton record written by the one-time admin init
// endpoint. The password is stored as a bcrypt hash.
type AdminCredentials struct {
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
