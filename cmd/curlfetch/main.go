package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/famomatic/curlfetch/client"
	"github.com/famomatic/curlfetch/internal/cli"
	"github.com/famomatic/curlfetch/internal/curlargs"
	"github.com/famomatic/curlfetch/internal/termui"
)

type stderrLogger struct{}

func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := stderrLogger{}

	// Optional .env defaults for deployment-specific settings.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			logger.Warnf("could not load .env: %v", err)
		}
	}

	opts, err := cli.Parse(args, os.Stderr)
	if err != nil {
		return 2
	}

	if opts.Version {
		fmt.Println(curlargs.UserAgent)
		return 0
	}
	if len(opts.Sources) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: curlfetch [options] <url> [mirror-url...]")
		return 2
	}

	curlPath := opts.CurlPath
	if curlPath == "" {
		curlPath = os.Getenv("CURLFETCH_CURL")
	}

	cfg := client.Config{
		CurlPath:     curlPath,
		Logger:       logger,
		PackagedMode: os.Getenv("CURLFETCH_PACKAGED") == "1",
		InstallerDir: os.Getenv("CURLFETCH_INSTALLER_DIR"),
	}
	if !opts.Quiet && !opts.Head {
		cfg.UI = termui.NewConsole(os.Stdout)
	}
	c := client.New(cfg)

	transport := client.TransportConfig{
		Auth:           opts.Auth,
		CACertPath:     opts.CACertPath,
		CADirPath:      opts.CADirPath,
		ClientCertPath: opts.ClientCertPath,
		Resume:         opts.Resume,
		InsecureTLS:    opts.InsecureTLS,
		Headers:        opts.Headers,
	}

	// SIGINT/SIGTERM cancel the in-flight transfer; the child process is
	// torn down before we return.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	if opts.Head {
		req := client.NewTransferRequest(opts.Sources[0], "", transport)
		headers, err := c.ProbeHeaders(ctx, req)
		fmt.Print(headers)
		return exitCode(err)
	}

	destination := opts.Output
	if destination == "" {
		destination = deriveFileName(opts.Sources[0])
	}
	err = c.FetchAny(ctx, destination, transport, opts.Sources...)
	if err == nil {
		fmt.Printf("Saved to %s\n", destination)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, client.ErrCancelled):
		fmt.Fprintln(os.Stderr, "Cancelled")
		return 130
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

// deriveFileName picks a destination name from the source URL's last path
// segment, falling back to "index.html" for bare hosts.
func deriveFileName(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return "index.html"
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "index.html"
	}
	return name
}
