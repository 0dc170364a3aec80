package config

import "os"

// Telemetry captures everything the telemetry layer reads from the
// environment. Write keys default to the development project so local builds
// work out of the box; production deployments must override them.
type Telemetry struct {
	CaptureEndpoint string
	AndroidWriteKey string
	IOSWriteKey     string
	Platform        string
	Development     bool
}

// FromEnv builds a Telemetry config from environment variables so main stays
// lean.
func FromEnv() Telemetry {
	endpoint := os.Getenv("REFRAME_CAPTURE_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://capture.reframe.app/capture"
	}

	androidKey := os.Getenv("REFRAME_ANDROID_WRITE_KEY")
	if androidKey == "" {
		// Development project key - overridden in production
		androidKey = "phc_dev_android_00000000"
	}
	iosKey := os.Getenv("REFRAME_IOS_WRITE_KEY")
	if iosKey == "" {
		iosKey = "phc_dev_ios_00000000"
	}

	platform := os.Getenv("REFRAME_PLATFORM")
	if platform == "" {
		platform = "android"
	}

	return Telemetry{
		CaptureEndpoint: endpoint,
		AndroidWriteKey: androidKey,
		IOSWriteKey:     iosKey,
		Platform:        platform,
		Development:     os.Getenv("REFRAME_ENV") == "development",
	}
}
