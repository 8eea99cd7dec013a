package constraints

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// E.164 with optional leading plus
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Email validates an RFC 5322 address with a dotted domain.
func Email(value any, _ ...any) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL validates an absolute URL. Options, when given, restrict the scheme.
func URL(value any, options ...any) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	schemes := flatten(options)
	if len(schemes) == 0 {
		return true
	}
	for _, scheme := range schemes {
		if strings.EqualFold(scheme, u.Scheme) {
			return true
		}
	}
	return false
}

// Phone validates an international phone number; spaces, dashes and
// parentheses are ignored.
func Phone(value any, _ ...any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(s)
	return phoneRegex.MatchString(cleaned)
}

// Alpha passes for ASCII letters only.
func Alpha(value any, _ ...any) bool {
	s, ok := value.(string)
	return ok && alphaRegex.MatchString(s)
}

// AlphaNumeric passes for ASCII letters and digits only.
func AlphaNumeric(value any, _ ...any) bool {
	s, ok := value.(string)
	return ok && alphanumericRegex.MatchString(s)
}
