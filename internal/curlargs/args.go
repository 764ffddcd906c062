// Package curlargs builds curl command lines from transport options.
package curlargs

import "path/filepath"

const version = "1.0.0"

// UserAgent is sent with every transfer so servers can identify the product.
const UserAgent = "curlfetch/" + version

// Options holds the optional transport policies for one transfer.
// Every field is independent; the zero value produces the base argument set.
type Options struct {
	// Auth is a "user" or "user:password" credential for basic auth.
	Auth string

	// CACertPath is a CA certificate file to verify the peer against.
	CACertPath string

	// CADirPath is a directory of CA certificates to verify the peer against.
	CADirPath string

	// ClientCertPath is a client certificate file presented to the server.
	ClientCertPath string

	// Resume continues from the current size of an existing partial
	// destination file.
	Resume bool

	// InsecureTLS disables peer certificate verification.
	InsecureTLS bool

	// Headers are raw "Name: value" strings passed through in order.
	// Duplicates are preserved, not collapsed.
	Headers []string

	// PackagedMode indicates the tool runs from an installer deployment and
	// should use the embedded CA bundle under InstallerDir.
	PackagedMode bool

	// InstallerDir is the installer root used to locate the embedded CA
	// bundle. Only consulted when PackagedMode is set.
	InstallerDir string
}

// Build turns opts into curl arguments and environment overrides.
// It is pure data transformation: malformed values are passed through for
// curl to reject.
func Build(opts Options) (args []string, env []string) {
	args = []string{
		"--fail",
		"--location",
		"--max-redirs", "10",
		"--user-agent", UserAgent,
	}

	if opts.CACertPath != "" {
		args = append(args, "--cacert", opts.CACertPath)
	}
	if opts.CADirPath != "" {
		args = append(args, "--capath", opts.CADirPath)
	}
	if opts.Resume {
		args = append(args, "--continue-at", "-")
	}
	if opts.InsecureTLS {
		args = append(args, "--insecure")
	}
	if opts.ClientCertPath != "" {
		args = append(args, "--cert", opts.ClientCertPath)
	}
	if opts.Auth != "" {
		args = append(args, "--user", opts.Auth)
	}
	for _, h := range opts.Headers {
		args = append(args, "--header", h)
	}

	if opts.PackagedMode {
		bundle := filepath.Join(opts.InstallerDir, "ssl", "cacert.pem")
		env = append(env, "CURL_CA_BUNDLE="+bundle)
	}
	return args, env
}
