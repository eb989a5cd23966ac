package domain

const (
	// DefaultBundlesDir is the directory default bundle paths are created under.
	DefaultBundlesDir = "bundles"

	// BundleDirSuffix is appended to every default bundle directory name.
	BundleDirSuffix = "-bundle"

	// LatestVersion is the version label used when no version is requested.
	LatestVersion = "latest"

	// FallbackSafeName is used when a package name contains no usable characters.
	FallbackSafeName = "package"

	// RecordFileName is the record file kept at the root of every bundle.
	RecordFileName = ".bale.json"

	// ConfigFileName is the base name of the optional configuration file.
	ConfigFileName = ".bale"

	// ManifestFileName is the default batch manifest file.
	ManifestFileName = "bale.bundles.yaml"

	// EnvPrefix prefixes every environment variable read by bale.
	EnvPrefix = "BALE"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is used for files that may contain credentials (rw-------).
	PrivateFilePerm = 0o600
)
