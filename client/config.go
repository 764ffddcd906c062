package client

// Config holds configuration for the transfer coordinator.
type Config struct {
	// CurlPath is the transfer tool binary path or name.
	// If empty, "curl" is resolved through PATH.
	CurlPath string

	// UI is the optional progress rendering collaborator.
	// If nil, transfers run without progress output.
	UI UI

	// Logger receives non-fatal warnings. If nil, warnings are discarded.
	Logger Logger

	// PackagedMode indicates the product runs from an installer deployment
	// and the embedded CA bundle under InstallerDir should be used. The flag
	// is supplied by the caller, never detected here.
	PackagedMode bool

	// InstallerDir is the installer root directory. Only consulted when
	// PackagedMode is set.
	InstallerDir string
}
