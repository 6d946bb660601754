package template

import (
	"strings"
	"testing"

	"sitectl/internal/config"
	"sitectl/internal/errors"
)

func TestDeriveUpstream(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"api.example.com", "api_example_com"},
		{"example.com", "example_com"},
		{"localhost", "localhost"},
	}

	for _, tt := range tests {
		if got := DeriveUpstream(tt.domain); got != tt.want {
			t.Errorf("DeriveUpstream(%q) = %q, want %q", tt.domain, got, tt.want)
		}
	}
}

func TestRenderStatic(t *testing.T) {
	site := &config.Site{
		Domain: "blog.test",
		Type:   config.TypeStatic,
		Root:   "/var/www/blog.test",
	}

	out, err := Render(site)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(out, "server_name blog.test;") {
		t.Error("expected server_name blog.test")
	}
	if !strings.Contains(out, "root /var/www/blog.test;") {
		t.Error("expected root directive")
	}
	if !strings.Contains(out, "/var/log/nginx/blog.test.access.log") {
		t.Error("expected access log named after the domain")
	}
	if strings.Contains(out, "return 301") {
		t.Error("expected no redirect block with www disabled")
	}
	if strings.Contains(out, "{{") {
		t.Errorf("unresolved placeholder in output:\n%s", out)
	}
}

func TestRenderAllTypesResolveAllPlaceholders(t *testing.T) {
	for _, siteType := range config.ValidTypes() {
		t.Run(siteType, func(t *testing.T) {
			site := &config.Site{
				Domain:     "example.com",
				Type:       siteType,
				Root:       "/var/www/example.com",
				PHPVersion: "8.2",
				Port:       3000,
			}

			out, err := Render(site)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if strings.Contains(out, "{{") || strings.Contains(out, "}}") {
				t.Errorf("unresolved placeholder in %s output:\n%s", siteType, out)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	site := &config.Site{
		Domain:     "app.example.com",
		Type:       config.TypeNode,
		Root:       "/var/www/app",
		Port:       3000,
		WWW:        true,
		WWWPrimary: true,
	}

	first, err := Render(site)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := Render(site)
	if err != nil {
		t.Fatalf("second Render failed: %v", err)
	}
	if first != second {
		t.Error("rendering the same site twice should produce byte-identical output")
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	site := &config.Site{
		Domain: "example.com",
		Type:   "mainframe",
		Root:   "/var/www/html",
	}

	_, err := Render(site)
	if err == nil {
		t.Fatal("expected error for unknown site type")
	}
	if !errors.Is(err, errors.ErrTemplateMissing) {
		t.Errorf("expected ErrTemplateMissing, got %v", err)
	}
}

func TestRenderWWWPrimary(t *testing.T) {
	site := &config.Site{
		Domain:     "example.com",
		Type:       config.TypeStatic,
		Root:       "/var/www/example.com",
		WWW:        true,
		WWWPrimary: true,
	}

	out, err := Render(site)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(out, "server_name www.example.com;") {
		t.Error("expected www.example.com as primary server_name")
	}
	// Redirect block sends the naked domain to www
	if !strings.Contains(out, "server_name example.com;") {
		t.Error("expected redirect block for the naked domain")
	}
	if !strings.Contains(out, "return 301 $scheme://www.example.com$request_uri;") {
		t.Error("expected 301 redirect to www.example.com preserving scheme and URI")
	}
}

func TestRenderWWWSecondary(t *testing.T) {
	site := &config.Site{
		Domain: "example.com",
		Type:   config.TypeStatic,
		Root:   "/var/www/example.com",
		WWW:    true,
	}

	out, err := Render(site)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(out, "server_name www.example.com;") {
		t.Error("expected redirect block for the www host")
	}
	if !strings.Contains(out, "return 301 $scheme://example.com$request_uri;") {
		t.Error("expected 301 redirect to the naked domain")
	}
	// The redirect block comes before the main server block
	if strings.Index(out, "return 301") > strings.Index(out, "root /var/www/example.com;") {
		t.Error("redirect block should precede the main server block")
	}
}

func TestRenderNodeUpstream(t *testing.T) {
	site := &config.Site{
		Domain: "api.example.com",
		Type:   config.TypeNode,
		Root:   "/var/www/api",
		Port:   4000,
	}

	out, err := Render(site)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(out, "upstream api_example_com {") {
		t.Error("expected upstream block named after the underscored domain")
	}
	if !strings.Contains(out, "server 127.0.0.1:4000;") {
		t.Error("expected upstream server on the configured port")
	}
	if !strings.Contains(out, "proxy_pass http://api_example_com;") {
		t.Error("expected proxy_pass to reference the upstream")
	}
}

func TestRenderPHPVersion(t *testing.T) {
	site := &config.Site{
		Domain:     "shop.example.com",
		Type:       config.TypeWordPress,
		Root:       "/var/www/shop",
		PHPVersion: "8.3",
	}

	out, err := Render(site)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(out, "unix:/run/php/php8.3-fpm.sock") {
		t.Error("expected PHP-FPM socket for the configured version")
	}
}

func TestRenderValueContainingToken(t *testing.T) {
	// A token literal inside a value passes through untouched: substitution
	// never rescans replacement text.
	site := &config.Site{
		Domain: "example.com",
		Type:   config.TypeStatic,
		Root:   "/var/www/{{DOMAIN}}",
	}

	out, err := Render(site)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(out, "root /var/www/{{DOMAIN}};") {
		t.Errorf("token in value should not be expanded, got:\n%s", out)
	}
}
