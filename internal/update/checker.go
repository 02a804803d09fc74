package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	// DefaultReleasesURL is the GitHub API endpoint for the latest release
	DefaultReleasesURL = "https://api.github.com/repos/young1lin/tabline/releases/latest"
	// checkInterval is how often to check for updates
	checkInterval = 24 * time.Hour
)

// State tracks the last update check
type State struct {
	LastCheck     time.Time `json:"last_check"`
	LatestVersion string    `json:"latest_version"`
	OptOut        bool      `json:"opt_out"`
}

// Checker checks for updates
type Checker struct {
	currentVersion string
	releasesURL    string
	stateFile      string
	httpClient     *http.Client
	now            func() time.Time
}

// Option configures a Checker
type Option func(*Checker)

// WithReleasesURL overrides the release endpoint
func WithReleasesURL(url string) Option {
	return func(c *Checker) { c.releasesURL = url }
}

// WithStateFile overrides where the last check is remembered
func WithStateFile(path string) Option {
	return func(c *Checker) { c.stateFile = path }
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) { c.httpClient = client }
}

// NewChecker creates a new update checker
func NewChecker(version string, opts ...Option) *Checker {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	c := &Checker{
		currentVersion: version,
		releasesURL:    DefaultReleasesURL,
		stateFile:      filepath.Join(cacheDir, "tabline", "update-state.json"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns the latest release when it is newer than the running
// version, or nil. Unless force is set, a check is made at most once per
// day and never after opting out.
func (c *Checker) Check(ctx context.Context, force bool) (*ReleaseInfo, error) {
	state, err := c.loadState()
	if err != nil {
		state = &State{}
	}

	if !force && (state.OptOut || c.now().Sub(state.LastCheck) < checkInterval) {
		return nil, nil
	}

	release, err := c.fetchLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	latest := parseVersion(release.TagName)
	state.LastCheck = c.now()
	state.LatestVersion = latest
	_ = c.saveState(state)

	if c.needsUpdate(latest) {
		return release, nil
	}
	return nil, nil
}

// fetchLatest fetches the latest release from GitHub
func (c *Checker) fetchLatest(ctx context.Context) (*ReleaseInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releasesURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "tabline/"+c.currentVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}

	return &release, nil
}

// needsUpdate reports whether latest is newer than the running version.
// Development builds always report an update.
func (c *Checker) needsUpdate(latest string) bool {
	if c.currentVersion == "dev" {
		return true
	}

	currentV, err := semver.NewVersion(c.currentVersion)
	if err != nil {
		return false
	}
	latestV, err := semver.NewVersion(latest)
	if err != nil {
		return false
	}

	return latestV.GreaterThan(currentV)
}

// parseVersion extracts the version from a tag name ("v1.2.3" -> "1.2.3")
func parseVersion(tag string) string {
	return strings.TrimPrefix(strings.TrimSpace(tag), "v")
}

// loadState loads the update state from disk
func (c *Checker) loadState() (*State, error) {
	data, err := os.ReadFile(c.stateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return &State{}, nil
	}
	return &state, nil
}

// saveState saves the update state to disk
func (c *Checker) saveState(state *State) error {
	if err := os.MkdirAll(filepath.Dir(c.stateFile), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.stateFile, data, 0o644)
}

// SetOptOut sets the opt-out preference for update checks
func (c *Checker) SetOptOut(optOut bool) error {
	state, err := c.loadState()
	if err != nil {
		state = &State{}
	}
	state.OptOut = optOut
	return c.saveState(state)
}
