package models

import "time"

// User is a storefront visitor. Users are created or refreshed on
// every inbound interaction and never hard-deleted; blocked users stay
// in the table but are excluded from listings and broadcasts.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	JoinedAt     time.Time
	IsBlocked    bool
	LastActivity time.Time
}
