package indictrans

// Version information for indictrans.
// These values can be overridden at build time using ldflags:
//
//	go build -ldflags "-X github.com/arhrid/indic-translator-sub001.Version=1.0.0"
const (
	// Name is the application name.
	Name = "indictrans"

	// Description is a short description of the application.
	Description = "Translation orchestration and caching for the scheduled languages of India"

	// Version is the semantic version of the application.
	// Override at build time with ldflags for releases.
	Version = "0.1.0"

	// Repository is the source code repository URL.
	Repository = "https://github.com/arhrid/indic-translator-sub001"

	// License is the software license.
	License = "MIT"
)

// BuildInfo contains build-time information.
// These are typically set via ldflags during build.
var (
	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// FullVersion returns the version string with optional build info.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}

// UserAgent returns a user agent string for HTTP requests.
func UserAgent() string {
	return Name + "/" + Version
}
