package cli

import (
	"strings"
	"testing"

	"sitectl/internal/errors"
)

func TestRunRenew(t *testing.T) {
	setupTestDeps(t)
	certbot := fakeCertbot(t, true)

	if err := runRenew(renewCmd, []string{"example.com"}); err != nil {
		t.Fatalf("runRenew failed: %v", err)
	}

	if len(certbot.Calls) != 1 {
		t.Fatalf("expected 1 certbot call, got %d", len(certbot.Calls))
	}
	joined := strings.Join(certbot.Calls[0].Args, " ")
	if !strings.Contains(joined, "renew --cert-name example.com") {
		t.Errorf("unexpected certbot args: %q", joined)
	}
}

func TestRunRenewCertbotMissing(t *testing.T) {
	setupTestDeps(t)
	fakeCertbot(t, false)

	err := runRenew(renewCmd, []string{"example.com"})
	if !errors.Is(err, errors.ErrCertbotNotFound) {
		t.Errorf("expected ErrCertbotNotFound, got %v", err)
	}
}

func TestRunRenewInvalidDomain(t *testing.T) {
	setupTestDeps(t)

	if err := runRenew(renewCmd, []string{"bad_domain"}); err == nil {
		t.Error("expected validation error for invalid domain")
	}
}
