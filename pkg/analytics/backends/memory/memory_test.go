package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reframe/pkg/analytics"
)

func TestRecorder_RecordsInCallOrder(t *testing.T) {
	rec := New()
	ctx := context.Background()

	require.NoError(t, rec.Screen(ctx, "home"))
	require.NoError(t, rec.Track(ctx, "user_downloaded"))
	require.NoError(t, rec.TrackWithProperties(ctx, "log", analytics.Properties{"label": "x"}))
	require.NoError(t, rec.Identify(ctx, "anon-1"))

	calls := rec.Calls()
	require.Len(t, calls, 4)
	assert.Equal(t, Call{Op: "screen", Name: "home"}, calls[0])
	assert.Equal(t, Call{Op: "track", Name: "user_downloaded"}, calls[1])
	assert.Equal(t, "x", calls[2].Properties["label"])
	assert.Equal(t, "anon-1", calls[3].ID)
}

func TestRecorder_CallsReturnsCopy(t *testing.T) {
	rec := New()
	require.NoError(t, rec.Track(context.Background(), "user_downloaded"))

	calls := rec.Calls()
	calls[0].Name = "mutated"

	assert.Equal(t, "user_downloaded", rec.Calls()[0].Name)
}

func TestRecorder_Clear(t *testing.T) {
	rec := New()
	require.NoError(t, rec.Track(context.Background(), "user_downloaded"))

	rec.Clear()

	assert.Empty(t, rec.Calls())
}
