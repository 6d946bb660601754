package template

import "embed"

// One template per site type, named <type>.conf.
//
//go:embed templates/*.conf
var templateFS embed.FS

// load returns the raw template text for a site type.
func load(siteType string) (string, bool) {
	data, err := templateFS.ReadFile("templates/" + siteType + ".conf")
	if err != nil {
		return "", false
	}
	return string(data), true
}
