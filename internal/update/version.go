// Package update checks for newer tabline releases
package update

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Version information injected by ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the one-line build description
func String() string {
	return fmt.Sprintf("tabline %s (commit %s, built %s, %s/%s)", Version, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}

// ReleaseInfo represents a GitHub release
type ReleaseInfo struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
	Assets      []Asset   `json:"assets"`
}

// Asset represents a release asset
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// AssetFor returns the archive built for the given platform, matched by
// the "<goos>_<goarch>" fragment in its name
func (r *ReleaseInfo) AssetFor(goos, goarch string) (Asset, bool) {
	fragment := goos + "_" + goarch
	for _, a := range r.Assets {
		if strings.Contains(strings.ToLower(a.Name), fragment) {
			return a, true
		}
	}
	return Asset{}, false
}
