// Package registry is the on-disk site store.
//
// It mirrors the nginx sites-available/sites-enabled convention: one rendered
// config file per domain in the available directory (filename = domain) and a
// same-named symlink in the enabled directory for each active site. The
// filesystem is the only state; there are no timestamps, no ownership records
// and no database.
//
// Some installations keep a single directory for both roles (RHEL's conf.d,
// Homebrew's servers). The registry detects that case at construction and
// skips symlink management entirely: a present file is an enabled site, and
// disabling without removing is not offered.
//
// Operations are best-effort, not transactional. Concurrent modification of
// the directories by another process is unsupported.
package registry
