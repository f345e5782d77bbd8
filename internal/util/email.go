package util

import (
	"regexp"
	"strings"
)

var (
	domainPattern = regexp.MustCompile(`@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})$`)
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// personalDomains are free mail providers that do not represent an
// organization and are excluded from company aggregation.
var personalDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"aol.com":        {},
	"icloud.com":     {},
	"mail.com":       {},
	"protonmail.com": {},
}

// ExtractDomain returns the lower-cased domain part of an email address, or
// "" when the input does not look like an email. Syntactic only: no DNS or
// MX lookup happens here.
func ExtractDomain(email string) string {
	match := domainPattern.FindStringSubmatch(strings.TrimSpace(email))
	if match == nil {
		return ""
	}
	return strings.ToLower(match[1])
}

// IsPersonalDomain reports whether a domain belongs to a free mail provider.
func IsPersonalDomain(domain string) bool {
	_, ok := personalDomains[strings.ToLower(domain)]
	return ok
}

// IsValidEmail applies the submission-gate validation. Stricter than a
// browser's default but still a regex, not an RFC 5321 parser.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// AnonymizeEmail keeps at most the first three characters of the local part:
// "john.doe@example.com" becomes "joh***@example.com". Input without an "@"
// collapses to the fixed placeholder.
func AnonymizeEmail(email string) string {
	at := strings.Index(email, "@")
	if at < 0 {
		return "***@***"
	}
	local := email[:at]
	domain := email[at+1:]
	if len(local) > 3 {
		local = local[:3]
	}
	return local + "***@" + domain
}
