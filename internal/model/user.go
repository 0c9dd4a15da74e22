// Package model defines the data structures used throughout the application.
// These are plain structs — the repository layer maps them to and from SQL,
// the service layer enforces rules on them, and the presentation layer
// renders them.
package model

import "time"

// User represents a registered account.
//
// The password hash is deliberately not a field here. It never leaves the
// repository layer: Register writes it, Authenticate compares against it,
// and everything above those two calls sees only this struct.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}
