package version

import (
	"fmt"
	"time"
)

// Заполняются линковщиком: -ldflags "-X gridworld/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

var buildEpoch = time.Date(
	2024, time.June, 1,
	0, 0, 0, 0,
	time.UTC,
)

// Info describes the build metadata in structured form.
type Info struct {
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate"`
	Commit     string `json:"commit"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID derives a monotonically growing build number from the
// build date: days since the project epoch.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Using hours avoids DST issues; epoch and build date are both UTC.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Get returns structured version information. Safe to call at any time.
func Get() Info {
	info := Info{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Get()
	if !info.Calculated {
		return fmt.Sprintf("Build unknown (%s)", info.Error)
	}

	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("Build %d (%s) commit[%s]", info.BuildID, info.BuildDate, commit)
}
