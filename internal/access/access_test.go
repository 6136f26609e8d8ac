package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAdminChecker struct {
	admins map[int64]bool
	err    error
}

func (f *fakeAdminChecker) IsAdmin(_ context.Context, userID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[userID], nil
}

func TestOwnerIsAlwaysPrivileged(t *testing.T) {
	authz := NewAuthorizer([]int64{1}, &fakeAdminChecker{admins: map[int64]bool{}})

	assert.True(t, authz.IsOwner(1))
	assert.True(t, authz.IsPrivileged(context.Background(), 1))
	assert.False(t, authz.IsOwner(2))
}

func TestPrivilegeFollowsAdminTable(t *testing.T) {
	checker := &fakeAdminChecker{admins: map[int64]bool{2: true}}
	authz := NewAuthorizer([]int64{1}, checker)
	ctx := context.Background()

	assert.True(t, authz.IsPrivileged(ctx, 2))
	assert.False(t, authz.IsOwner(2))

	// Revocation takes effect on the next check.
	checker.admins[2] = false
	assert.False(t, authz.IsPrivileged(ctx, 2))
}

func TestLookupErrorDeniesAccess(t *testing.T) {
	authz := NewAuthorizer([]int64{1}, &fakeAdminChecker{err: errors.New("db down")})
	ctx := context.Background()

	assert.False(t, authz.IsPrivileged(ctx, 2))
	// Owners never hit the lookup.
	assert.True(t, authz.IsPrivileged(ctx, 1))
}
