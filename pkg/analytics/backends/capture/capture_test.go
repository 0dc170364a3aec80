package capture

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reframe/pkg/analytics"
	"reframe/pkg/platform/sentinel"
)

func newTestBackend(t *testing.T, status int, received *[]event) *Backend {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var evt event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&evt))
		*received = append(*received, evt)

		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	b, err := New(Config{
		Endpoint:        srv.URL,
		AndroidWriteKey: "phc_android_test",
		IOSWriteKey:     "phc_ios_test",
		Platform:        PlatformAndroid,
	})
	require.NoError(t, err)
	return b
}

func TestBackend_Track_SendsOneCaptureRequest(t *testing.T) {
	var received []event
	b := newTestBackend(t, http.StatusOK, &received)

	err := b.Track(context.Background(), "user_downloaded")
	require.NoError(t, err)

	require.Len(t, received, 1)
	evt := received[0]
	assert.Equal(t, "phc_android_test", evt.APIKey)
	assert.Equal(t, "user_downloaded", evt.Event)
	assert.NotEmpty(t, evt.UUID)
	assert.NotEmpty(t, evt.DistinctID)
	assert.NotEmpty(t, evt.Timestamp)
	assert.Nil(t, evt.Properties)
}

func TestBackend_TrackWithProperties(t *testing.T) {
	var received []event
	b := newTestBackend(t, http.StatusOK, &received)

	err := b.TrackWithProperties(context.Background(), "user_subscribed", analytics.Properties{
		"expirationDate": "2023-11-14",
	})
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, "user_subscribed", received[0].Event)
	assert.Equal(t, "2023-11-14", received[0].Properties["expirationDate"])
}

func TestBackend_Screen_MapsToScreenEvent(t *testing.T) {
	var received []event
	b := newTestBackend(t, http.StatusOK, &received)

	err := b.Screen(context.Background(), "settings")
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, "$screen", received[0].Event)
	assert.Equal(t, "settings", received[0].Properties["$screen_name"])
}

func TestBackend_Identify_SwitchesDistinctID(t *testing.T) {
	var received []event
	b := newTestBackend(t, http.StatusOK, &received)
	ctx := context.Background()

	require.NoError(t, b.Track(ctx, "user_downloaded"))
	require.NoError(t, b.Identify(ctx, "anon-42"))
	require.NoError(t, b.Track(ctx, "user_saw_apology"))

	require.Len(t, received, 3)
	assert.NotEqual(t, "anon-42", received[0].DistinctID, "pre-identify events keep the random anonymous ID")
	assert.Equal(t, "$identify", received[1].Event)
	assert.Equal(t, "anon-42", received[1].DistinctID)
	assert.Equal(t, "anon-42", received[2].DistinctID)
}

func TestBackend_IdentifyWithTraits_SetsTraits(t *testing.T) {
	var received []event
	b := newTestBackend(t, http.StatusOK, &received)

	err := b.IdentifyWithTraits(context.Background(), "anon-7", analytics.Properties{"cohort": "b"})
	require.NoError(t, err)

	require.Len(t, received, 1)
	set, ok := received[0].Properties["$set"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "b", set["cohort"])
}

func TestBackend_StatusErrors(t *testing.T) {
	t.Run("unauthorized maps to invalid write key", func(t *testing.T) {
		var received []event
		b := newTestBackend(t, http.StatusUnauthorized, &received)

		err := b.Track(context.Background(), "user_downloaded")
		require.ErrorIs(t, err, sentinel.ErrInvalidWriteKey)
	})

	t.Run("server error maps to unavailable", func(t *testing.T) {
		var received []event
		b := newTestBackend(t, http.StatusServiceUnavailable, &received)

		err := b.Track(context.Background(), "user_downloaded")
		require.ErrorIs(t, err, sentinel.ErrUnavailable)
	})
}

func TestNew_Validation(t *testing.T) {
	t.Run("requires endpoint", func(t *testing.T) {
		_, err := New(Config{AndroidWriteKey: "k", Platform: PlatformAndroid})
		require.Error(t, err)
	})

	t.Run("requires write key for active platform", func(t *testing.T) {
		_, err := New(Config{Endpoint: "http://localhost", AndroidWriteKey: "k", Platform: PlatformIOS})
		require.ErrorIs(t, err, sentinel.ErrInvalidWriteKey)
	})

	t.Run("selects the ios key on ios", func(t *testing.T) {
		b, err := New(Config{
			Endpoint:        "http://localhost",
			AndroidWriteKey: "android-key",
			IOSWriteKey:     "ios-key",
			Platform:        PlatformIOS,
		})
		require.NoError(t, err)
		assert.Equal(t, "ios-key", b.writeKey)
	})
}
