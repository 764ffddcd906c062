package client

import "net/url"

// TransportConfig is the set of optional transport policies for a transfer.
// Each field is independently present or absent.
type TransportConfig struct {
	// Auth is a "user" or "user:password" basic auth credential.
	Auth string

	// CACertPath is a CA certificate file for peer verification.
	CACertPath string

	// CADirPath is a directory of CA certificates for peer verification.
	CADirPath string

	// ClientCertPath is a client certificate presented to the server.
	ClientCertPath string

	// Resume continues from the current size of an existing partial
	// destination file.
	Resume bool

	// InsecureTLS disables peer certificate verification.
	InsecureTLS bool

	// Headers are raw "Name: value" strings, passed through in order.
	// Later duplicates do not overwrite earlier entries.
	Headers []string
}

// TransferRequest describes one transfer. Construct it with
// NewTransferRequest; it is immutable afterwards.
type TransferRequest struct {
	// Source is the URL (or tool-understood location string) to fetch,
	// with any embedded credentials already stripped.
	Source string

	// Destination is the local file path written by fetch operations.
	Destination string

	// Transport holds the optional transport policies.
	Transport TransportConfig
}

// NewTransferRequest builds a request, relocating credentials embedded in an
// http(s) source URL into transport.Auth. A caller-supplied Auth is never
// overwritten; the URL credential is dropped from the source either way so it
// is never passed to the tool or logged. Sources that do not parse as URLs
// pass through untouched — the tool may still understand them.
func NewTransferRequest(source, destination string, transport TransportConfig) TransferRequest {
	source, transport.Auth = extractURLCredential(source, transport.Auth)
	return TransferRequest{
		Source:      source,
		Destination: destination,
		Transport:   transport,
	}
}

func extractURLCredential(source, auth string) (string, string) {
	u, err := url.Parse(source)
	if err != nil || u.User == nil {
		return source, auth
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return source, auth
	}
	if cred := u.User.String(); cred != "" && auth == "" {
		auth = cred
	}
	u.User = nil
	return u.String(), auth
}
