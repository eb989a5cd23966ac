package domain

// Manifest lists independent bundle requests processed by one batch run.
type Manifest struct {
	Bundles []ManifestEntry
}

// ManifestEntry is one bundle of a batch manifest.
// Credentials are not accepted here; they come from flags, environment or config.
type ManifestEntry struct {
	Name       string
	Version    string
	Type       string
	Repository string
	Output     string
	Args       []string
}

// Request converts the entry into a bundle request.
func (e ManifestEntry) Request() BundleRequest {
	return BundleRequest{
		Name:          e.Name,
		Version:       e.Version,
		Ecosystem:     e.Type,
		ExtraArgs:     e.Args,
		RepositoryURL: e.Repository,
		OutputDir:     e.Output,
	}
}
