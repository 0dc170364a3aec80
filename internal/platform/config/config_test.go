package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "https://capture.reframe.app/capture", cfg.CaptureEndpoint)
	assert.Equal(t, "android", cfg.Platform)
	assert.False(t, cfg.Development)
	assert.NotEmpty(t, cfg.AndroidWriteKey)
	assert.NotEmpty(t, cfg.IOSWriteKey)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("REFRAME_CAPTURE_ENDPOINT", "http://localhost:9000/capture")
	t.Setenv("REFRAME_ANDROID_WRITE_KEY", "phc_prod_android")
	t.Setenv("REFRAME_IOS_WRITE_KEY", "phc_prod_ios")
	t.Setenv("REFRAME_PLATFORM", "ios")
	t.Setenv("REFRAME_ENV", "development")

	cfg := FromEnv()

	assert.Equal(t, "http://localhost:9000/capture", cfg.CaptureEndpoint)
	assert.Equal(t, "phc_prod_android", cfg.AndroidWriteKey)
	assert.Equal(t, "phc_prod_ios", cfg.IOSWriteKey)
	assert.Equal(t, "ios", cfg.Platform)
	assert.True(t, cfg.Development)
}
