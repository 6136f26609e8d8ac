package models

import "time"

// Admin is a dynamically granted operator. Membership in the admins
// table implies access to every privileged operation except admin
// management itself, which stays owner-only.
type Admin struct {
	UserID   int64
	Username string
	AddedBy  int64
	AddedAt  time.Time
}
