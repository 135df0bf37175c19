package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunohmachado/vitrine/internal/common"
)

func TestAdminAdd_AssignsUniqueIDs(t *testing.T) {
	as := NewAdminService(newTestData(t)).(*adminService)
	ctx := context.Background()

	// A frozen clock would otherwise hand out the same timestamp id twice.
	frozen := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	as.now = func() time.Time { return frozen }

	first, err := as.Add(ctx, "Carlos", "c@x.com")
	require.NoError(t, err)
	second, err := as.Add(ctx, "Duda", "d@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAdminAdd_DuplicateEmailsAllowed(t *testing.T) {
	svc := NewAdminService(newTestData(t))
	ctx := context.Background()

	_, err := svc.Add(ctx, "Carlos", "same@x.com")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Duda", "same@x.com")
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAdminSearch_MatchesNameOrEmailSubstring(t *testing.T) {
	svc := NewAdminService(newTestData(t))
	ctx := context.Background()

	_, err := svc.Add(ctx, "Carlos Pereira", "carlos@x.com")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Duda Lima", "duda@y.com")
	require.NoError(t, err)

	byName, err := svc.Search(ctx, "pereira")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Carlos Pereira", byName[0].Name)

	byEmail, err := svc.Search(ctx, "y.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Duda Lima", byEmail[0].Name)

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAdminRemove(t *testing.T) {
	svc := NewAdminService(newTestData(t))
	ctx := context.Background()

	a, err := svc.Add(ctx, "Carlos", "c@x.com")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, a.ID))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.ErrorIs(t, svc.Remove(ctx, a.ID), common.ErrNotFound)
}
