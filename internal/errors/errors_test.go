package errors

import (
	"fmt"
	"testing"
)

func TestSiteErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *SiteError
		want string
	}{
		{
			name: "message only",
			err:  &SiteError{Code: ErrCodeValidation, Message: "invalid domain"},
			want: "invalid domain",
		},
		{
			name: "with domain",
			err:  &SiteError{Code: ErrCodeNotFound, Message: "site not found", Domain: "example.com"},
			want: "site example.com: site not found",
		},
		{
			name: "with wrapped error",
			err:  &SiteError{Code: ErrCodeConfig, Message: "failed to load settings", Err: fmt.Errorf("permission denied")},
			want: "failed to load settings: permission denied",
		},
		{
			name: "with domain and wrapped error",
			err:  &SiteError{Code: ErrCodeServer, Message: "write failed", Domain: "example.com", Err: fmt.Errorf("disk full")},
			want: "site example.com: write failed: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := NotFound("example.com")
	if !Is(err, ErrSiteNotFound) {
		t.Error("NotFound error should match ErrSiteNotFound")
	}
	if Is(err, ErrInvalidDomain) {
		t.Error("NotFound error should not match ErrInvalidDomain")
	}
}

func TestIsUnwrapsChain(t *testing.T) {
	inner := NotFound("example.com")
	outer := fmt.Errorf("during removal: %w", inner)
	if !Is(outer, ErrSiteNotFound) {
		t.Error("wrapped NotFound should still match ErrSiteNotFound")
	}
}

func TestAsExtractsSiteError(t *testing.T) {
	err := WrapDomain(ErrCodeSSL, "example.com", fmt.Errorf("certbot exited 1"))

	var siteErr *SiteError
	if !As(err, &siteErr) {
		t.Fatal("As should find SiteError in chain")
	}
	if siteErr.Code != ErrCodeSSL {
		t.Errorf("expected code %s, got %s", ErrCodeSSL, siteErr.Code)
	}
	if siteErr.Domain != "example.com" {
		t.Errorf("expected domain example.com, got %s", siteErr.Domain)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Wrap(ErrCodeServer, "reload failed", cause)

	var siteErr *SiteError
	if !As(err, &siteErr) {
		t.Fatal("expected SiteError")
	}
	if siteErr.Unwrap() != cause {
		t.Error("Unwrap should return the wrapped cause")
	}
}

func TestTemplateMissing(t *testing.T) {
	err := TemplateMissing("node")
	if !Is(err, ErrTemplateMissing) {
		t.Error("TemplateMissing should match ErrTemplateMissing")
	}
	want := `no template for site type "node"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
