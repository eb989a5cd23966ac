package domain

// Credentials authenticate against a custom repository.
// They are either complete or treated as absent.
type Credentials struct {
	Username string
	Password string
}

// Complete reports whether both username and password are present.
func (c Credentials) Complete() bool {
	return c.Username != "" && c.Password != ""
}

// Partial reports whether exactly one of username and password is present.
func (c Credentials) Partial() bool {
	return (c.Username == "") != (c.Password == "")
}

// MissingPart names the absent half of partial credentials.
func (c Credentials) MissingPart() string {
	switch {
	case !c.Partial():
		return ""
	case c.Username == "":
		return "username"
	default:
		return "password"
	}
}

// BundleRequest describes one bundling job.
// Empty strings mean the field was not provided.
type BundleRequest struct {
	Name          string
	Version       string
	Ecosystem     string
	ExtraArgs     []string
	RepositoryURL string
	Credentials   Credentials
	OutputDir     string
}

// VersionLabel returns the requested version or "latest".
func (r BundleRequest) VersionLabel() string {
	if r.Version == "" {
		return LatestVersion
	}
	return r.Version
}

// HasRepository reports whether a custom repository was supplied.
func (r BundleRequest) HasRepository() bool {
	return r.RepositoryURL != ""
}
