package template

import (
	"fmt"
	"strconv"
	"strings"

	"sitectl/internal/config"
	"sitectl/internal/errors"
)

// Placeholder tokens recognized in templates.
const (
	tokenDomain        = "{{DOMAIN}}"
	tokenLogDomain     = "{{LOG_DOMAIN}}"
	tokenRootPath      = "{{ROOT_PATH}}"
	tokenPHPVersion    = "{{PHP_VERSION}}"
	tokenPort          = "{{PORT}}"
	tokenUpstreamName  = "{{UPSTREAM_NAME}}"
	tokenRedirectBlock = "{{REDIRECT_BLOCK}}"
)

// DeriveUpstream converts a domain into an nginx upstream identifier by
// replacing dots with underscores. Upstream names appear in contexts where
// nginx's identifier grammar forbids dots.
func DeriveUpstream(domain string) string {
	return strings.ReplaceAll(domain, ".", "_")
}

// Render produces the nginx configuration for a site by substituting the
// placeholder tokens in the template for its type. Rendering is
// deterministic: the same site always yields byte-identical output.
//
// Substitution is a single left-to-right pass over the template text only;
// replacement values are never rescanned. A placeholder token appearing
// literally inside a supplied value (say, a root path containing
// "{{DOMAIN}}") is therefore passed through unmodified, not expanded and not
// escaped.
func Render(site *config.Site) (string, error) {
	raw, ok := load(site.Type)
	if !ok {
		return "", errors.TemplateMissing(site.Type)
	}

	serverName, redirect := resolveWWW(site)

	port := ""
	if site.Port > 0 {
		port = strconv.Itoa(site.Port)
	}

	r := strings.NewReplacer(
		tokenDomain, serverName,
		tokenLogDomain, site.Domain,
		tokenRootPath, site.Root,
		tokenPHPVersion, site.PHPVersion,
		tokenPort, port,
		tokenUpstreamName, DeriveUpstream(site.Domain),
		tokenRedirectBlock, redirect,
	)

	return r.Replace(raw), nil
}

// resolveWWW decides the primary server_name and the redirect server block.
//
// With www disabled the site answers on the naked domain only. With www
// enabled, one host is canonical and the other becomes a dedicated server
// block issuing a permanent redirect that preserves scheme and request URI.
func resolveWWW(site *config.Site) (serverName, redirect string) {
	if !site.WWW {
		return site.Domain, ""
	}
	www := "www." + site.Domain
	if site.WWWPrimary {
		return www, redirectBlock(site.Domain, www)
	}
	return site.Domain, redirectBlock(www, site.Domain)
}

// redirectBlock builds a server block that 301-redirects from one host to
// another, keeping the scheme and the original request path and query.
func redirectBlock(from, to string) string {
	return fmt.Sprintf(`server {
    listen 80;
    listen [::]:80;
    server_name %s;

    return 301 $scheme://%s$request_uri;
}

`, from, to)
}
