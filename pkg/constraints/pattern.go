package constraints

import (
	"regexp"
	"sync"
)

var patternCache sync.Map // pattern -> *regexp.Regexp

func compile(pattern any) (*regexp.Regexp, bool) {
	p, ok := toString(pattern)
	if !ok || p == "" {
		return nil, false
	}
	if re, ok := patternCache.Load(p); ok {
		return re.(*regexp.Regexp), true
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, false
	}
	patternCache.Store(p, re)
	return re, true
}

// Regex passes when the string value matches options[0]. Invalid patterns fail.
func Regex(value any, options ...any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	re, ok := compile(option(options, 0))
	return ok && re.MatchString(s)
}

// NotRegex passes when the string value does not match options[0].
func NotRegex(value any, options ...any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	re, ok := compile(option(options, 0))
	return ok && !re.MatchString(s)
}
