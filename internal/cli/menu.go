package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"sitectl/internal/config"
	"sitectl/internal/errors"
	"sitectl/internal/output"
)

// menuAction enumerates the interactive menu flows. Routing every selection
// through one dispatch switch keeps the menu free of state.
type menuAction int

const (
	actionCreate menuAction = iota + 1
	actionList
	actionRemove
	actionTest
	actionReload
	actionExit
)

// parseMenuChoice maps the operator's selection to an action.
func parseMenuChoice(s string) (menuAction, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return actionCreate, nil
	case "2":
		return actionList, nil
	case "3":
		return actionRemove, nil
	case "4":
		return actionTest, nil
	case "5":
		return actionReload, nil
	case "0", "q", "exit":
		return actionExit, nil
	default:
		return 0, errors.Validation(fmt.Sprintf("invalid selection %q", strings.TrimSpace(s)))
	}
}

// runMenu is the interactive loop: one idle state, a flow per selection.
// Input errors re-prompt and task failures are reported without ending the
// session; only the exit selection (or EOF on stdin) leaves the loop.
func runMenu() error {
	for {
		output.Print("")
		output.Print("sitectl - nginx site management")
		output.Print("  1) Create site")
		output.Print("  2) List sites")
		output.Print("  3) Remove site")
		output.Print("  4) Test configuration")
		output.Print("  5) Reload nginx")
		output.Print("  0) Exit")
		output.Prompt("Select option: ")

		line, err := deps.StdinReader.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		action, err := parseMenuChoice(line)
		if err != nil {
			output.Error("%v", err)
			continue
		}

		if action == actionExit {
			return nil
		}
		if err := dispatchMenuAction(action); err != nil {
			output.Error("%v", err)
		}
	}
}

// dispatchMenuAction invokes the task flow for a menu selection.
func dispatchMenuAction(action menuAction) error {
	switch action {
	case actionCreate:
		return createInteractive()
	case actionList:
		return listSites()
	case actionRemove:
		return removeInteractive()
	case actionTest:
		return testConfiguration()
	case actionReload:
		return reloadServer()
	default:
		return errors.Validation(fmt.Sprintf("unhandled menu action %d", action))
	}
}

// createInteractive collects a site definition from prompts and runs the
// create flow. Invalid answers re-prompt rather than aborting.
func createInteractive() error {
	siteType, err := promptChoice("Site type", config.ValidTypes(), config.TypeStatic)
	if err != nil {
		return err
	}

	domain, err := promptDomain()
	if err != nil {
		return err
	}

	site := &config.Site{Domain: domain, Type: siteType}

	if config.NeedsRoot(siteType) {
		root, err := promptLine(fmt.Sprintf("Document root [/var/www/%s]: ", domain))
		if err != nil {
			return err
		}
		if root == "" {
			root = "/var/www/" + domain
		}
		site.Root = root
	}

	if config.NeedsPort(siteType) {
		port, err := promptPort()
		if err != nil {
			return err
		}
		site.Port = port
	}

	if config.NeedsPHP(siteType) {
		php, err := promptLine("PHP version [default from settings]: ")
		if err != nil {
			return err
		}
		site.PHPVersion = php
	}

	www, err := promptYesNo("Serve www." + domain + " as well?")
	if err != nil {
		return err
	}
	site.WWW = www
	if www {
		primary, err := promptYesNo("Make www." + domain + " the main host?")
		if err != nil {
			return err
		}
		site.WWWPrimary = primary
	}

	useSSL, err := promptYesNo("Request a Let's Encrypt certificate?")
	if err != nil {
		return err
	}
	site.SSL = useSSL
	if useSSL {
		email, err := promptLine("Email for Let's Encrypt: ")
		if err != nil {
			return err
		}
		site.Email = email
	}

	return createSite(site, true)
}

// removeInteractive prompts for a domain and confirmation, then removes it.
func removeInteractive() error {
	domain, err := promptDomain()
	if err != nil {
		return err
	}

	confirmed, err := promptYesNo(fmt.Sprintf("Remove site %q?", domain))
	if err != nil {
		return err
	}
	if !confirmed {
		output.Info("Removal cancelled")
		return nil
	}

	return removeSite(domain, true)
}

// promptLine reads one trimmed line of input. EOF with no pending input is
// propagated so prompt loops terminate when stdin closes.
func promptLine(prompt string) (string, error) {
	output.Prompt("%s", prompt)
	line, err := deps.StdinReader.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptDomain asks for a hostname until a syntactically valid one is given.
func promptDomain() (string, error) {
	for {
		domain, err := promptLine("Domain: ")
		if err != nil {
			return "", err
		}
		if err := config.ValidateDomain(domain); err != nil {
			output.Error("%v", err)
			continue
		}
		return domain, nil
	}
}

// promptPort asks for a TCP port until a valid one is given.
func promptPort() (int, error) {
	for {
		answer, err := promptLine("Backend port: ")
		if err != nil {
			return 0, err
		}
		port, convErr := strconv.Atoi(answer)
		if convErr != nil || port < 1 || port > 65535 {
			output.Error("invalid port %q, expected 1-65535", answer)
			continue
		}
		return port, nil
	}
}

// promptChoice asks for one of the allowed values, defaulting on empty input.
func promptChoice(label string, valid []string, def string) (string, error) {
	for {
		answer, err := promptLine(fmt.Sprintf("%s (%s) [%s]: ", label, strings.Join(valid, ", "), def))
		if err != nil {
			return "", err
		}
		if answer == "" {
			return def, nil
		}
		for _, v := range valid {
			if answer == v {
				return answer, nil
			}
		}
		output.Error("invalid choice %q", answer)
	}
}

// promptYesNo asks a yes/no question, defaulting to no.
func promptYesNo(question string) (bool, error) {
	answer, err := promptLine(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
