// Package redact scrubs credentials, tokens, key material, SQL statements
// and file paths from strings before they are logged. Database and auth
// errors routinely embed connection strings, queries and bearer tokens;
// everything that ends up in a log line passes through here first.
package redact

import (
	"log/slog"
	"regexp"
)

// Placeholders substituted for redacted content.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules run in order; earlier rules may shorten the input seen by later ones.
var rules = []rule{
	{
		// PEM private keys (RS256 signing keys)
		regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`),
		RedactedKeyPlaceholder,
	},
	{
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		RedactedJWTPlaceholder,
	},
	{
		// user:password section of a database URL, scheme and host are kept
		regexp.MustCompile(`(?i)\b(postgres|postgresql|pgx)://[^@\s/]+@`),
		"${1}://" + RedactedCredentialPlaceholder + "@",
	},
	{
		regexp.MustCompile(
			`(?i)\b(password|passwd|pwd|jwt_secret|secret|api[_-]?key|private_key)(\s*[=:]\s*)['"]?[^'"&\s]{3,}['"]?`,
		),
		"${1}${2}" + RedactedCredentialPlaceholder,
	},
	{
		// Statements only match in upper case so that messages such as
		// "update failed" survive.
		regexp.MustCompile(`(?s)\b(?:SELECT\s.+?\sFROM|INSERT\s+INTO|UPDATE\s+\w+\s+SET|DELETE\s+FROM)\b[^;]*`),
		RedactedSQLPlaceholder,
	},
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		RedactedStackPlaceholder,
	},
	{
		regexp.MustCompile(`(/[\w.-]+){2,}`),
		RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Attr returns a redacted "error" attribute for structured log calls.
func Attr(err error) slog.Attr {
	return slog.String("error", Error(err))
}
