package ssl

import (
	"fmt"
	"strings"
	"testing"

	"sitectl/internal/errors"
	"sitectl/internal/executor"
)

func TestIsInstalled(t *testing.T) {
	SetRunner(&executor.FakeRunner{})
	defer ResetRunner()

	if !IsInstalled() {
		t.Error("expected installed with default fake LookPath")
	}

	SetRunner(&executor.FakeRunner{
		LookPathFunc: func(file string) (string, error) {
			return "", fmt.Errorf("not found")
		},
	})
	if IsInstalled() {
		t.Error("expected not installed when LookPath fails")
	}
}

func TestIssueArguments(t *testing.T) {
	fake := &executor.FakeRunner{}
	SetRunner(fake)
	defer ResetRunner()

	if err := Issue("example.com", "admin@example.com", false); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if len(fake.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fake.Calls))
	}
	call := fake.Calls[0]
	if call.Name != "certbot" {
		t.Errorf("expected certbot, got %s", call.Name)
	}

	joined := strings.Join(call.Args, " ")
	for _, want := range []string{
		"--nginx",
		"-d example.com",
		"--email admin@example.com",
		"--agree-tos",
		"--non-interactive",
		"--redirect",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in certbot args, got %q", want, joined)
		}
	}
	if strings.Contains(joined, "www.example.com") {
		t.Error("www host should not be requested when includeWww is false")
	}
}

func TestIssueIncludesWwwHost(t *testing.T) {
	fake := &executor.FakeRunner{}
	SetRunner(fake)
	defer ResetRunner()

	if err := Issue("example.com", "admin@example.com", true); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	joined := strings.Join(fake.Calls[0].Args, " ")
	if !strings.Contains(joined, "-d example.com -d www.example.com") {
		t.Errorf("expected both hosts in certbot args, got %q", joined)
	}
}

func TestIssueCertbotMissing(t *testing.T) {
	SetRunner(&executor.FakeRunner{
		LookPathFunc: func(file string) (string, error) {
			return "", fmt.Errorf("not found")
		},
	})
	defer ResetRunner()

	err := Issue("example.com", "admin@example.com", false)
	if !errors.Is(err, errors.ErrCertbotNotFound) {
		t.Errorf("expected ErrCertbotNotFound, got %v", err)
	}
}

func TestIssueFailure(t *testing.T) {
	SetRunner(&executor.FakeRunner{
		RunFunc: func(name string, args ...string) ([]byte, error) {
			return []byte("challenge failed"), fmt.Errorf("exit status 1")
		},
	})
	defer ResetRunner()

	err := Issue("example.com", "admin@example.com", false)
	if err == nil {
		t.Fatal("expected error for failing certbot")
	}
	if !strings.Contains(err.Error(), "challenge failed") {
		t.Errorf("expected certbot output in error, got %v", err)
	}
}

func TestRenew(t *testing.T) {
	fake := &executor.FakeRunner{}
	SetRunner(fake)
	defer ResetRunner()

	if err := Renew("example.com"); err != nil {
		t.Fatalf("Renew failed: %v", err)
	}

	joined := strings.Join(fake.Calls[0].Args, " ")
	if !strings.Contains(joined, "renew --cert-name example.com --non-interactive") {
		t.Errorf("unexpected renew args: %q", joined)
	}
}
