package config

import (
	"fmt"
	"strings"

	"sitectl/internal/errors"
)

// Site describes a virtual host to be rendered. It exists only for the
// duration of a create operation; the rendered file on disk is the sole
// persistent record of a site.
type Site struct {
	Domain     string // validated hostname
	Type       string // one of the Type constants
	Root       string // document root, unused for proxy sites
	PHPVersion string // only for laravel/wordpress sites
	Port       int    // only for node/proxy sites
	SSL        bool   // request a Let's Encrypt certificate
	Email      string // certbot account email, required when SSL is set
	WWW        bool   // also serve the www. host
	WWWPrimary bool   // www. host is canonical; ignored unless WWW is set
}

// Site type constants.
const (
	TypeStatic    = "static"
	TypeLaravel   = "laravel"
	TypeNode      = "node"
	TypeWordPress = "wordpress"
	TypeSPA       = "spa"
	TypeProxy     = "proxy"
)

// ValidTypes returns all valid site types.
func ValidTypes() []string {
	return []string{TypeStatic, TypeLaravel, TypeNode, TypeWordPress, TypeSPA, TypeProxy}
}

// IsValidType checks if the given type is valid.
func IsValidType(t string) bool {
	for _, valid := range ValidTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// NeedsPHP reports whether the type routes requests through PHP-FPM.
func NeedsPHP(t string) bool {
	return t == TypeLaravel || t == TypeWordPress
}

// NeedsPort reports whether the type proxies to a local port.
func NeedsPort(t string) bool {
	return t == TypeNode || t == TypeProxy
}

// NeedsRoot reports whether the type serves files from a document root.
func NeedsRoot(t string) bool {
	return t != TypeProxy
}

// ValidateDomain checks a candidate hostname against DNS label syntax:
// one or more dot-separated labels, each 1-63 characters, alphanumeric with
// interior hyphens only. No resolution or reachability check is performed.
func ValidateDomain(domain string) error {
	if domain == "" {
		return errors.Validation("domain cannot be empty")
	}

	for _, label := range strings.Split(domain, ".") {
		if len(label) == 0 {
			return errors.Validation(fmt.Sprintf("domain %q has an empty label", domain))
		}
		if len(label) > 63 {
			return errors.Validation(fmt.Sprintf("domain label %q exceeds 63 characters", label))
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return errors.Validation(fmt.Sprintf("domain label %q cannot start or end with a hyphen", label))
		}
		for _, c := range label {
			if !isLabelChar(c) {
				return errors.Validation(fmt.Sprintf("domain label %q contains invalid character %q", label, c))
			}
		}
	}

	return nil
}

func isLabelChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-':
		return true
	}
	return false
}

// Validate checks the site definition for internal consistency.
func (s *Site) Validate() error {
	if err := ValidateDomain(s.Domain); err != nil {
		return err
	}
	if !IsValidType(s.Type) {
		return errors.Validation(fmt.Sprintf("invalid site type %q, valid types: %s", s.Type, strings.Join(ValidTypes(), ", ")))
	}
	if NeedsRoot(s.Type) && s.Root == "" {
		return errors.Validation(fmt.Sprintf("root path is required for type %s", s.Type))
	}
	if NeedsPort(s.Type) && (s.Port < 1 || s.Port > 65535) {
		return errors.Validation(fmt.Sprintf("a port between 1 and 65535 is required for type %s", s.Type))
	}
	if s.SSL && s.Email == "" {
		return errors.Validation("an email address is required when SSL is enabled")
	}
	return nil
}
