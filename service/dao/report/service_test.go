package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/viant/gitsetup/policy"
	"github.com/viant/gitsetup/progress"
	"github.com/viant/gitsetup/service/dao"
	"github.com/viant/gitsetup/service/sequencer"
)

func TestService_SaveLoad(t *testing.T) {
	ctx := context.Background()
	srv, err := New(ctx, "mem://localhost/gitsetup/reports", afs.New())
	require.NoError(t, err)

	record := &Record{
		ID:        "run-1",
		Platform:  "linux",
		Name:      "A B",
		Email:     "a@b.com",
		Policy:    policy.ToConfig(policy.New(policy.ModeAuto)),
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Results: []*sequencer.Result{
			{Key: "alias.ci", Command: "git config --global alias.ci commit", Outcome: sequencer.OutcomeConfigured},
		},
		Summary: progress.Counters{Total: 1, Configured: 1},
	}
	require.NoError(t, srv.Save(ctx, record))

	loaded, err := srv.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.EqualValues(t, record, loaded)

	records, err := srv.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, srv.Delete(ctx, "run-1"))
	_, err = srv.Load(ctx, "run-1")
	assert.ErrorIs(t, err, dao.ErrNotFound)
	assert.ErrorIs(t, srv.Delete(ctx, "run-1"), dao.ErrNotFound)
}

func TestService_Invalid(t *testing.T) {
	ctx := context.Background()
	srv, err := New(ctx, "mem://localhost/gitsetup/invalid", afs.New())
	require.NoError(t, err)
	assert.ErrorIs(t, srv.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, srv.Save(ctx, &Record{}), dao.ErrInvalidID)
	_, err = srv.Load(ctx, "")
	assert.ErrorIs(t, err, dao.ErrInvalidID)
	assert.ErrorIs(t, srv.Delete(ctx, ""), dao.ErrInvalidID)
}
