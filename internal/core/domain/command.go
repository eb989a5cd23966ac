package domain

import (
	"regexp"
	"strings"
)

// RedactedValue replaces secrets in anything shown to the operator.
const RedactedValue = "***"

// minBareSecretLen is the shortest secret masked wherever it occurs. Shorter
// secrets are masked only where credentials are written: as a whole word,
// as URL userinfo or as the value of a key=value pair.
const minBareSecretLen = 4

// Command is a single external tool invocation.
type Command struct {
	// Name is the executable, resolved through PATH when not absolute.
	Name string
	// Args are passed to the executable verbatim.
	Args []string
	// Stdin is fed to the process when non-empty.
	Stdin string
	// Secrets are masked wherever the command is echoed or reported.
	Secrets []string
}

// Redact masks every secret of the command inside s.
func (c Command) Redact(s string) string {
	for _, secret := range c.Secrets {
		switch {
		case secret == "":
		case len(secret) >= minBareSecretLen:
			s = strings.ReplaceAll(s, secret, RedactedValue)
		default:
			s = redactDelimited(s, secret)
		}
	}
	return s
}

func redactDelimited(s, secret string) string {
	re := regexp.MustCompile(`(^|[\s:=])` + regexp.QuoteMeta(secret) + `($|[\s@])`)
	// Adjacent occurrences share a delimiter; the second pass masks the ones
	// the first one stepped over.
	for range 2 {
		s = re.ReplaceAllString(s, "${1}"+RedactedValue+"${2}")
	}
	return s
}

// RedactedArgs returns a copy of the arguments with secrets masked.
func (c Command) RedactedArgs() []string {
	out := make([]string, len(c.Args))
	for i, arg := range c.Args {
		out[i] = c.Redact(arg)
	}
	return out
}

// String renders the command line with secrets masked.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.RedactedArgs(), " ")
}
