package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sitectl/internal/input"
)

func TestParseMenuChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    menuAction
		wantErr bool
	}{
		{"1", actionCreate, false},
		{"2", actionList, false},
		{"3", actionRemove, false},
		{"4", actionTest, false},
		{"5", actionReload, false},
		{"0", actionExit, false},
		{"q", actionExit, false},
		{"exit", actionExit, false},
		{" 2 ", actionList, false},
		{"2\n", actionList, false},
		{"", 0, true},
		{"6", 0, true},
		{"create", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseMenuChoice(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseMenuChoice(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseMenuChoice(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMenuExitImmediately(t *testing.T) {
	env := setupTestDeps(t, "0\n")

	if err := runMenu(); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "sitectl - nginx site management") {
		t.Error("expected the menu banner")
	}
}

func TestMenuInvalidSelectionReprompts(t *testing.T) {
	env := setupTestDeps(t, "banana\n", "0\n")

	if err := runMenu(); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "invalid selection") {
		t.Error("expected invalid-selection report")
	}
}

func TestMenuExitsOnEOF(t *testing.T) {
	setupTestDeps(t) // no inputs at all

	if err := runMenu(); err != nil {
		t.Fatalf("runMenu should exit cleanly on EOF: %v", err)
	}
}

func TestMenuListFlow(t *testing.T) {
	env := setupTestDeps(t, "2\n", "0\n")

	if err := runMenu(); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "No sites configured") {
		t.Error("expected empty-registry message from list flow")
	}
}

func TestMenuTaskFailureKeepsLooping(t *testing.T) {
	env := setupTestDeps(t, "4\n", "0\n")
	env.Server.TestErr = os.ErrInvalid

	if err := runMenu(); err != nil {
		t.Fatalf("task failure must not end the menu session: %v", err)
	}
	if env.Server.TestCalls != 1 {
		t.Errorf("expected the test flow to run once, got %d", env.Server.TestCalls)
	}
}

func TestMenuCreateFlow(t *testing.T) {
	root := filepath.Join(t.TempDir(), "docs")
	env := setupTestDeps(t,
		"1\n",       // create
		"\n",        // type: default static
		"menu.test\n",
		root + "\n",   // document root
		"n\n",       // www
		"n\n",       // ssl
		"0\n",       // exit
	)

	if err := runMenu(); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}

	if _, err := os.Stat(env.availablePath("menu.test")); err != nil {
		t.Error("interactive create should write the site config")
	}
	if _, err := os.Lstat(env.enabledPath("menu.test")); err != nil {
		t.Error("interactive create should enable the site")
	}
}

func TestMenuCreateRepromptsOnBadDomain(t *testing.T) {
	root := filepath.Join(t.TempDir(), "docs")
	env := setupTestDeps(t,
		"1\n",
		"\n",
		"bad_domain\n", // rejected, re-prompts
		"good.test\n",
		root + "\n",
		"n\n",
		"n\n",
		"0\n",
	)

	if err := runMenu(); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "invalid character") {
		t.Error("expected domain validation report")
	}
	if _, err := os.Stat(env.availablePath("good.test")); err != nil {
		t.Error("create should succeed with the corrected domain")
	}
}

func TestMenuRemoveFlowCancelled(t *testing.T) {
	env := setupTestDeps(t,
		"3\n",
		"example.com\n",
		"n\n", // decline confirmation
		"0\n",
	)

	if err := runMenu(); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}
	if !strings.Contains(env.Out.String(), "Removal cancelled") {
		t.Error("expected cancellation message")
	}
}

func TestPromptYesNoDefaultsToNo(t *testing.T) {
	setupTestDeps(t)
	deps.StdinReader = input.NewScriptReader("\n")

	got, err := promptYesNo("Continue?")
	if err != nil {
		t.Fatalf("promptYesNo failed: %v", err)
	}
	if got {
		t.Error("empty answer should mean no")
	}
}
