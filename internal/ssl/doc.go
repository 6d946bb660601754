// Package ssl wraps the certbot ACME client.
//
// Certificate cryptography is entirely delegated: this package only builds
// non-interactive certbot invocations and interprets exit codes. A missing
// certbot binary is reported as errors.ErrCertbotNotFound so flows can skip
// the TLS step with guidance instead of aborting.
package ssl
