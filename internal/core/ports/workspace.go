package ports

// Workspace manages the directories strategies write into.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// PrepareOutputDir ensures dir exists. When reset is true any previous
	// contents are removed first.
	PrepareOutputDir(dir string, reset bool) error

	// Scratch creates a private temporary directory. The returned release
	// function removes it and must be called exactly once.
	Scratch(prefix string) (dir string, release func() error, err error)

	// Entries lists the names of the top-level entries of dir. A missing
	// directory yields no entries.
	Entries(dir string) ([]string, error)

	// Flatten moves every file with the given extension found in the
	// subdirectories of root into root itself, then removes those
	// subdirectories. Top-level entries named in keep are left untouched.
	Flatten(root, ext string, keep ...string) error
}
