package models

import "time"

// StatusPending is the only status the bot ever writes. Verification is
// a manual, out-of-band step; nothing here transitions an order further.
const StatusPending = "pending"

// ScreenshotProductName marks the synthetic order row created for an
// uploaded payment screenshot. A screenshot row is independent of any
// purchase-intent row; the two carry no shared key and are reconciled
// by a human, correlated only by user and proximity in time.
const ScreenshotProductName = "Screenshot Upload"

// Order is an append-only record. ProductName is denormalized, not a
// foreign key; later catalog edits never touch existing rows.
type Order struct {
	ID               int64
	UserID           int64
	ProductName      string
	Amount           string
	Status           string
	OrderedAt        time.Time
	ScreenshotFileID string
}
