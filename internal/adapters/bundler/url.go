package bundler

import (
	"net/url"

	"go.trai.ch/bale/internal/core/domain"
)

// ParseRepositoryURL parses raw and reports whether it names a usable
// absolute URL with a scheme and host.
func ParseRepositoryURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

// WithCredentials returns raw with creds embedded as URL userinfo, plus the
// secrets to mask. It returns raw unchanged when the URL is unusable or the
// credentials are incomplete.
func WithCredentials(raw string, creds domain.Credentials) (authURL string, secrets []string, ok bool) {
	if !creds.Complete() {
		return raw, nil, false
	}

	u, valid := ParseRepositoryURL(raw)
	if !valid {
		return raw, nil, false
	}

	u.User = url.UserPassword(creds.Username, creds.Password)
	authURL = u.String()

	// The password may appear escaped inside the URL.
	secrets = []string{creds.Password}
	if escaped := url.UserPassword("", creds.Password).String(); escaped != ":"+creds.Password {
		secrets = append(secrets, escaped[1:])
	}
	return authURL, secrets, true
}
