package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrUnsupportedEcosystem classifies requests for an unknown ecosystem type.
	ErrUnsupportedEcosystem = zerr.New("unsupported ecosystem")

	// ErrExternalTool classifies failures of an external package manager invocation.
	ErrExternalTool = zerr.New("external tool failed")

	// ErrMissingPackageName is returned when a request has no package name.
	ErrMissingPackageName = zerr.New("package name is required")

	// ErrInvalidImageReference is returned when a docker image reference cannot be parsed.
	ErrInvalidImageReference = zerr.New("invalid image reference")

	// ErrOutputDirFailed is returned when the output directory cannot be prepared.
	ErrOutputDirFailed = zerr.New("failed to prepare output directory")

	// ErrWorkspaceCreateFailed is returned when a scratch workspace cannot be created.
	ErrWorkspaceCreateFailed = zerr.New("failed to create scratch workspace")

	// ErrWorkspaceWriteFailed is returned when a file inside a scratch workspace cannot be written.
	ErrWorkspaceWriteFailed = zerr.New("failed to write scratch workspace file")

	// ErrListDirFailed is returned when a directory listing fails.
	ErrListDirFailed = zerr.New("failed to list directory")

	// ErrFlattenFailed is returned when archives cannot be moved into the bundle root.
	ErrFlattenFailed = zerr.New("failed to flatten bundle directory")

	// ErrSummaryFailed is returned when a finished bundle cannot be summarized.
	ErrSummaryFailed = zerr.New("failed to summarize bundle")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrStoreReadFailed is returned when a bundle record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read bundle record")

	// ErrStoreUnmarshalFailed is returned when a bundle record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal bundle record")

	// ErrStoreMarshalFailed is returned when a bundle record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal bundle record")

	// ErrStoreWriteFailed is returned when a bundle record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write bundle record")

	// ErrRecordNotFound is returned when verifying a directory that has no record.
	ErrRecordNotFound = zerr.New("no bundle record found")

	// ErrBundleModified is returned when a bundle no longer matches its record.
	ErrBundleModified = zerr.New("bundle does not match its record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrInvalidLogFormat is returned for a log format other than text or json.
	ErrInvalidLogFormat = zerr.New("invalid log format")

	// ErrManifestReadFailed is returned when a batch manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read batch manifest")

	// ErrManifestParseFailed is returned when a batch manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse batch manifest")

	// ErrManifestEmpty is returned when a batch manifest lists no bundles.
	ErrManifestEmpty = zerr.New("batch manifest lists no bundles")

	// ErrDuplicateOutputDir is returned when two batch entries would write the same directory.
	ErrDuplicateOutputDir = zerr.New("duplicate output directory in batch")

	// ErrBatchFailed is returned when one or more batch entries failed.
	ErrBatchFailed = zerr.New("batch bundling failed")
)

// UnsupportedEcosystemError reports an ecosystem type outside the supported set.
type UnsupportedEcosystemError struct {
	Requested string
	Supported []Ecosystem
}

// NewUnsupportedEcosystemError builds the error for the requested type.
func NewUnsupportedEcosystemError(requested string) *UnsupportedEcosystemError {
	return &UnsupportedEcosystemError{
		Requested: requested,
		Supported: Ecosystems(),
	}
}

func (e *UnsupportedEcosystemError) Error() string {
	names := make([]string, len(e.Supported))
	for i, eco := range e.Supported {
		names[i] = eco.String()
	}
	return fmt.Sprintf("unsupported ecosystem %q (supported: %s)", e.Requested, strings.Join(names, ", "))
}

// Is matches ErrUnsupportedEcosystem.
func (e *UnsupportedEcosystemError) Is(target error) bool {
	return target == ErrUnsupportedEcosystem
}

// ExternalToolError reports a failed external tool invocation.
// Args are already redacted.
type ExternalToolError struct {
	Command    string
	Args       []string
	Diagnostic string
	ExitCode   int
	Err        error
}

// NewExternalToolError builds the error for a failed command, masking its secrets.
func NewExternalToolError(cmd Command, exitCode int, diagnostic string, err error) *ExternalToolError {
	return &ExternalToolError{
		Command:    cmd.Name,
		Args:       cmd.RedactedArgs(),
		Diagnostic: cmd.Redact(diagnostic),
		ExitCode:   exitCode,
		Err:        err,
	}
}

// Message returns the failure summary without the underlying cause.
func (e *ExternalToolError) Message() string {
	line := e.Command
	if len(e.Args) > 0 {
		line += " " + strings.Join(e.Args, " ")
	}

	msg := fmt.Sprintf("%q failed", line)
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" with exit code %d", e.ExitCode)
	}
	if e.Diagnostic != "" {
		msg += "\n" + e.Diagnostic
	}
	return msg
}

func (e *ExternalToolError) Error() string {
	if e.Err == nil {
		return e.Message()
	}
	return e.Message() + ": " + e.Err.Error()
}

// Unwrap returns the underlying process error.
func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// Is matches ErrExternalTool.
func (e *ExternalToolError) Is(target error) bool {
	return target == ErrExternalTool
}
