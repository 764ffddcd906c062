// Package cli parses command-line options for the curlfetch binary.
package cli

import (
	"flag"
	"fmt"
	"io"
)

// Options holds all command-line options.
type Options struct {
	// Input: one or more source URLs. Extra URLs are mirrors for the same
	// destination, tried in order.
	Sources []string

	// General
	Version bool // --version
	Quiet   bool // -q, --quiet

	// Operation
	Output string // -o, --output
	Head   bool   // -I, --head

	// Transport
	Auth           string   // -u, --user
	CACertPath     string   // --cacert
	CADirPath      string   // --capath
	ClientCertPath string   // --cert
	Resume         bool     // -c, --continue
	InsecureTLS    bool     // -k, --insecure
	Headers        []string // -H, --header (repeatable, order preserved)

	// Advanced
	CurlPath string // --curl
}

// headerList collects repeated header flags in the order given.
type headerList []string

func (h *headerList) String() string { return fmt.Sprint([]string(*h)) }

func (h *headerList) Set(value string) error {
	*h = append(*h, value)
	return nil
}

// Parse parses arguments (without the program name) into Options.
func Parse(args []string, errOut io.Writer) (*Options, error) {
	opts := &Options{}

	fs := flag.NewFlagSet("curlfetch", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(errOut, "Usage: curlfetch [options] <url> [mirror-url...]")
		fs.PrintDefaults()
	}

	var headers headerList
	var outputShort, outputLong string
	var headShort, headLong bool
	var authShort, authLong string
	var resumeShort, resumeLong bool
	var insecureShort, insecureLong bool
	var quietShort, quietLong bool

	fs.StringVar(&outputShort, "o", "", "Write output to the given file")
	fs.StringVar(&outputLong, "output", "", "Write output to the given file")

	fs.BoolVar(&headShort, "I", false, "Fetch response headers only")
	fs.BoolVar(&headLong, "head", false, "Fetch response headers only")

	fs.StringVar(&authShort, "u", "", "Server credential as user or user:password")
	fs.StringVar(&authLong, "user", "", "Server credential as user or user:password")

	fs.BoolVar(&resumeShort, "c", false, "Resume a partially downloaded file")
	fs.BoolVar(&resumeLong, "continue", false, "Resume a partially downloaded file")

	fs.BoolVar(&insecureShort, "k", false, "Skip TLS peer verification")
	fs.BoolVar(&insecureLong, "insecure", false, "Skip TLS peer verification")

	fs.BoolVar(&quietShort, "q", false, "Suppress progress output")
	fs.BoolVar(&quietLong, "quiet", false, "Suppress progress output")

	fs.Var(&headers, "H", "Extra request header, may repeat")
	fs.Var(&headers, "header", "Extra request header, may repeat")

	fs.StringVar(&opts.CACertPath, "cacert", "", "CA certificate file for peer verification")
	fs.StringVar(&opts.CADirPath, "capath", "", "CA certificate directory for peer verification")
	fs.StringVar(&opts.ClientCertPath, "cert", "", "Client certificate file")
	fs.StringVar(&opts.CurlPath, "curl", "", "Path to the curl binary (default: curl in PATH)")
	fs.BoolVar(&opts.Version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.Output = firstNonEmpty(outputLong, outputShort)
	opts.Head = headShort || headLong
	opts.Auth = firstNonEmpty(authLong, authShort)
	opts.Resume = resumeShort || resumeLong
	opts.InsecureTLS = insecureShort || insecureLong
	opts.Quiet = quietShort || quietLong
	opts.Headers = headers
	opts.Sources = fs.Args()
	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
