// Package access implements the two-tier capability check gating every
// privileged operation: a fixed owner set configured at startup plus
// the mutable admins table. There is no session or token concept; the
// predicate is re-evaluated from the caller's identity on every action.
package access

import (
	"context"

	"digital-store-bot/internal/common/logger"
)

// AdminChecker answers dynamic admin membership. Satisfied by the admin
// feature service.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// Authorizer is built once at process start and threaded into every
// component that gates an operation.
type Authorizer struct {
	owners map[int64]struct{}
	admins AdminChecker
}

func NewAuthorizer(ownerIDs []int64, admins AdminChecker) *Authorizer {
	owners := make(map[int64]struct{}, len(ownerIDs))
	for _, id := range ownerIDs {
		owners[id] = struct{}{}
	}
	return &Authorizer{owners: owners, admins: admins}
}

// IsOwner reports membership in the fixed owner set. Owners have
// unconditional access to everything, including admin management.
func (a *Authorizer) IsOwner(userID int64) bool {
	_, ok := a.owners[userID]
	return ok
}

// IsPrivileged reports whether the user is an owner or a current admin.
// The admin table is consulted at call time, so a revoked admin is
// denied on their very next action. A storage fault during the lookup
// denies access rather than granting it.
func (a *Authorizer) IsPrivileged(ctx context.Context, userID int64) bool {
	if a.IsOwner(userID) {
		return true
	}
	ok, err := a.admins.IsAdmin(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Int64("user_id", userID).Msg("admin check failed, denying access")
		return false
	}
	return ok
}
