// Package template renders nginx virtual-host configurations from embedded
// per-type templates.
//
// Templates are plain text with double-curly placeholder tokens:
//
//	{{DOMAIN}}          primary server_name (www. prefixed when www is canonical)
//	{{LOG_DOMAIN}}      naked domain, used for log file names
//	{{ROOT_PATH}}       document root
//	{{PHP_VERSION}}     PHP-FPM socket version
//	{{PORT}}            backend port for node/proxy sites
//	{{UPSTREAM_NAME}}   domain with dots replaced by underscores
//	{{REDIRECT_BLOCK}}  www/naked redirect server block, or empty
//
// One template exists per site type (templates/static.conf,
// templates/laravel.conf, ...) and is embedded in the binary via go:embed.
// Requesting a type without a template fails with errors.ErrTemplateMissing
// before anything is written.
//
// Substitution is a single pass over the template text; values are never
// rescanned, so placeholder-shaped text inside a value is left as-is.
//
// To add a new site type, drop a <type>.conf file into templates/, rebuild,
// and add the type constant to the config package.
package template
