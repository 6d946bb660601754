// Package errors provides coded error types for the sitectl tool.
//
// SiteError carries an error code, an optional domain name, and an optional
// wrapped cause. Sentinel values cover the common failure conditions so
// callers can branch with errors.Is:
//
//	if errors.Is(err, errors.ErrSiteNotFound) {
//	    // removal of a site that was never created
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"  // Site or resource not found
	ErrCodeValidation ErrorCode = "VALIDATION" // Input validation failed
	ErrCodeTemplate   ErrorCode = "TEMPLATE"   // Template missing or unrenderable
	ErrCodeServer     ErrorCode = "SERVER"     // nginx invocation failed
	ErrCodeSSL        ErrorCode = "SSL"        // certbot related error
	ErrCodeConfig     ErrorCode = "CONFIG"     // Settings file error
	ErrCodePermission ErrorCode = "PERMISSION" // Insufficient privileges
)

// SiteError is a structured error with context about the failed operation.
type SiteError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Domain  string    // Domain name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Domain != "" && e.Err != nil {
		if e.Message == "" {
			return fmt.Sprintf("site %s: %v", e.Domain, e.Err)
		}
		return fmt.Sprintf("site %s: %s: %v", e.Domain, e.Message, e.Err)
	}
	if e.Domain != "" {
		return fmt.Sprintf("site %s: %s", e.Domain, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *SiteError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error, compared by code.
func (e *SiteError) Is(target error) bool {
	t, ok := target.(*SiteError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common scenarios. Use with errors.Is.
var (
	// ErrSiteNotFound indicates the requested site does not exist.
	ErrSiteNotFound = &SiteError{Code: ErrCodeNotFound, Message: "site not found"}

	// ErrInvalidDomain indicates the domain name failed validation.
	ErrInvalidDomain = &SiteError{Code: ErrCodeValidation, Message: "invalid domain"}

	// ErrInvalidType indicates the site type is not recognized.
	ErrInvalidType = &SiteError{Code: ErrCodeValidation, Message: "invalid site type"}

	// ErrTemplateMissing indicates no template exists for the site type.
	ErrTemplateMissing = &SiteError{Code: ErrCodeTemplate, Message: "template missing"}

	// ErrServerNotFound indicates the nginx binary is not installed.
	ErrServerNotFound = &SiteError{Code: ErrCodeServer, Message: "nginx not installed"}

	// ErrCertbotNotFound indicates certbot is not installed.
	ErrCertbotNotFound = &SiteError{Code: ErrCodeSSL, Message: "certbot not installed"}

	// ErrRootRequired indicates root privileges are required.
	ErrRootRequired = &SiteError{Code: ErrCodePermission, Message: "root privileges required"}
)

// NotFound creates an error for a site that doesn't exist.
func NotFound(domain string) error {
	return &SiteError{
		Code:    ErrCodeNotFound,
		Message: "site not found",
		Domain:  domain,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// TemplateMissing creates an error for a site type without a template.
func TemplateMissing(siteType string) error {
	return &SiteError{
		Code:    ErrCodeTemplate,
		Message: fmt.Sprintf("no template for site type %q", siteType),
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapDomain creates an error with domain context and underlying error.
func WrapDomain(code ErrorCode, domain string, err error) error {
	return &SiteError{
		Code:   code,
		Domain: domain,
		Err:    err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
