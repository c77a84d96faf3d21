package updater

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nerdboi-ui/nerdboi-ui/internal/branding"
	"github.com/nerdboi-ui/nerdboi-ui/internal/ui"
)

// Check asks GitHub for the latest release, records the answer in the cache
// under configDir, and returns it. Cache write failures are ignored.
func (u *Updater) Check(ctx context.Context, configDir string) (*VersionCache, error) {
	release, err := u.CheckLatestVersion(ctx)
	if err != nil {
		return nil, err
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.TagName)
	if err != nil {
		return nil, err
	}

	cache := &VersionCache{
		LatestVersion:   release.TagName,
		CurrentVersion:  u.currentVersion,
		ReleaseURL:      release.HTMLURL,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	}
	_ = SaveCache(configDir, cache)
	return cache, nil
}

// CheckAndPrintBanner prints an update banner from the cache when a newer
// release is known. It never blocks: a stale cache is refreshed by a
// background goroutine for the next invocation.
func (u *Updater) CheckAndPrintBanner(w io.Writer, configDir string) {
	if !IsRelease(u.currentVersion) {
		return
	}

	cache, err := LoadCache(configDir)
	if err != nil {
		return
	}

	if cache != nil && cache.CurrentVersion == u.currentVersion && cache.UpdateAvailable {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if IsCacheStale(cache, u.currentVersion, DefaultCacheMaxAge) {
		go u.refreshCache(configDir)
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest string) {
	fmt.Fprintln(w)
	ui.Warn(w, "Update available: %s -> %s", current, latest)
	ui.Hint(w, "    Run `%s version --check` for details", branding.CLIName())
	fmt.Fprintln(w)
}

func (u *Updater) refreshCache(configDir string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = u.Check(ctx, configDir)
}
