// Package config holds the tool settings and the site definition model.
//
// Settings are stored in YAML at ~/.config/sitectl/config.yaml and cover
// only tool-level knobs: the nginx sites-available/sites-enabled directory
// overrides, the default PHP version applied to laravel and wordpress sites,
// and an optional default certbot email.
//
// Example config.yaml:
//
//	available_dir: /etc/nginx/sites-available
//	enabled_dir: /etc/nginx/sites-enabled
//	default_php: "8.2"
//	email: admin@example.com
//
// Sites themselves are deliberately not recorded here. The rendered file in
// sites-available and the symlink in sites-enabled are the only state; a
// Site value is constructed transiently during the create flow and discarded
// once the file is written.
//
// # Site types
//
// Six site types select the configuration template:
//   - static: plain file serving
//   - laravel: PHP framework routed through public/
//   - node: Node.js application behind a local port
//   - wordpress: WordPress with its front-controller rules
//   - spa: single-page app with history-mode fallback
//   - proxy: reverse proxy to a local port
//
// Use the type constants (TypeStatic, TypeLaravel, ...) instead of string
// literals.
package config
