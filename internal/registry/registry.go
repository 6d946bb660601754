package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sitectl/internal/errors"
	"sitectl/internal/logger"
)

// Registry manages the rendered site files in the available directory and
// the enabled symlinks pointing at them. Presence of a same-named symlink in
// the enabled directory is the sole record of a site being active; no other
// metadata is kept.
type Registry struct {
	available string
	enabled   string

	// combined is set when one directory serves both roles, as in RHEL
	// conf.d or Homebrew servers layouts. There are no symlinks then;
	// file presence alone marks a site enabled.
	combined bool
}

// Entry is one site as seen on disk.
type Entry struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// New creates a Registry over the given directories. Passing the same
// directory for both puts the registry in combined mode, where no symlinks
// are created and every present file counts as enabled.
func New(available, enabled string) *Registry {
	return &Registry{
		available: available,
		enabled:   enabled,
		combined:  filepath.Clean(available) == filepath.Clean(enabled),
	}
}

// AvailableDir returns the available directory path.
func (r *Registry) AvailableDir() string {
	return r.available
}

// EnabledDir returns the enabled directory path.
func (r *Registry) EnabledDir() string {
	return r.enabled
}

// availablePath returns the config file path for a domain.
func (r *Registry) availablePath(domain string) string {
	return filepath.Join(r.available, domain)
}

// enabledPath returns the symlink path for a domain.
func (r *Registry) enabledPath(domain string) string {
	return filepath.Join(r.enabled, domain)
}

// Write persists rendered config content for a domain, overwriting any
// previous file, and enables the site by creating (or replacing) the
// symlink. Enabling is implicit in creation. In a combined directory the
// written file is already live and no symlink is made.
func (r *Registry) Write(domain, content string) error {
	if err := os.MkdirAll(r.available, 0755); err != nil {
		return fmt.Errorf("failed to create available directory: %w", err)
	}
	if err := os.MkdirAll(r.enabled, 0755); err != nil {
		return fmt.Errorf("failed to create enabled directory: %w", err)
	}

	path := r.availablePath(domain)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	logger.Debug("wrote %d bytes to %s", len(content), path)

	if r.combined {
		return nil
	}

	link := r.enabledPath(domain)
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("failed to replace enabled symlink: %w", err)
		}
	}
	if err := os.Symlink(path, link); err != nil {
		return fmt.Errorf("failed to enable site: %w", err)
	}

	return nil
}

// List returns all sites in the available directory with their enabled
// state, sorted by name for deterministic output.
func (r *Registry) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(r.available)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read available directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		enabled, err := r.IsEnabled(de.Name())
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: de.Name(), Enabled: enabled})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Exists reports whether a config file exists for the domain.
func (r *Registry) Exists(domain string) bool {
	_, err := os.Stat(r.availablePath(domain))
	return err == nil
}

// IsEnabled checks if a site has an enabled symlink.
func (r *Registry) IsEnabled(domain string) (bool, error) {
	_, err := os.Lstat(r.enabledPath(domain))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site status: %w", err)
	}
	return true, nil
}

// Enable activates a site by creating its symlink. In a combined directory
// every present file is already enabled.
func (r *Registry) Enable(domain string) error {
	source := r.availablePath(domain)
	if _, err := os.Stat(source); os.IsNotExist(err) {
		return errors.NotFound(domain)
	}

	if r.combined {
		return errors.Validation(fmt.Sprintf("site %s is already enabled", domain))
	}

	target := r.enabledPath(domain)
	if _, err := os.Lstat(target); err == nil {
		return errors.Validation(fmt.Sprintf("site %s is already enabled", domain))
	}

	if err := os.Symlink(source, target); err != nil {
		return fmt.Errorf("failed to enable site: %w", err)
	}
	return nil
}

// Disable deactivates a site by removing its symlink. It refuses to remove
// anything that is not a symlink, and in a combined directory there is
// nothing to unlink without deleting the config itself.
func (r *Registry) Disable(domain string) error {
	if r.combined {
		return errors.Validation(fmt.Sprintf("site %s cannot be disabled here, this layout has no enabled directory; remove the site instead", domain))
	}

	target := r.enabledPath(domain)

	info, err := os.Lstat(target)
	if os.IsNotExist(err) {
		return errors.Validation(fmt.Sprintf("site %s is not enabled", domain))
	}
	if err != nil {
		return fmt.Errorf("failed to check site status: %w", err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return errors.Validation(fmt.Sprintf("site %s is not a symlink, refusing to remove", domain))
	}

	if err := os.Remove(target); err != nil {
		return fmt.Errorf("failed to disable site: %w", err)
	}
	return nil
}

// Remove deletes a site's enabled symlink and its available file. Each
// deletion is independently best-effort; the absence of one never blocks
// removing the other. It reports not-found only when the available file
// never existed.
func (r *Registry) Remove(domain string) error {
	if !r.combined {
		link := r.enabledPath(domain)
		if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
			logger.Warn("could not remove enabled symlink %s: %v", link, err)
		}
	}

	if err := os.Remove(r.availablePath(domain)); err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound(domain)
		}
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	return nil
}
