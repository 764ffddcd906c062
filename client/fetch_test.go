package client

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famomatic/curlfetch/internal/runner"
)

// fakeInvoker scripts one invocation per queued outcome and replays stderr
// chunks through the live callback, the way the real runner does.
type fakeInvoker struct {
	results      []*runner.Result
	errs         []error
	stderrChunks [][]byte

	calls    int
	lastArgs []string
	lastEnv  []string
}

func (f *fakeInvoker) Run(_ context.Context, args []string, env []string, onStderr func([]byte)) (*runner.Result, error) {
	f.calls++
	f.lastArgs = args
	f.lastEnv = env
	for _, chunk := range f.stderrChunks {
		if onStderr != nil {
			onStderr(chunk)
		}
	}
	i := f.calls - 1
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return f.results[i], err
}

func (f *fakeInvoker) Available() bool { return true }
func (f *fakeInvoker) ToolPath() string { return "curl" }

// recordingUI logs rendering calls in order.
type recordingUI struct {
	events []string
}

func (u *recordingUI) ClearLine() { u.events = append(u.events, "clear") }

func (u *recordingUI) RenderDetail(text string, appendNewline bool) {
	u.events = append(u.events, fmt.Sprintf("render(%q,%v)", text, appendNewline))
}

func newTestClient(cfg Config, inv invoker) *Client {
	c := New(cfg)
	c.runner = inv
	return c
}

func TestFetchToFile_ArgumentShape(t *testing.T) {
	fake := &fakeInvoker{results: []*runner.Result{{ExitCode: 0}}}
	c := newTestClient(Config{}, fake)

	req := NewTransferRequest("https://example.com/a.tar.gz", "/tmp/a.tar.gz", TransportConfig{
		Headers: []string{"X-A: 1", "X-B: 2"},
	})
	require.NoError(t, c.FetchToFile(context.Background(), req))

	n := len(fake.lastArgs)
	require.Equal(t, []string{"--output", "/tmp/a.tar.gz", "https://example.com/a.tar.gz"}, fake.lastArgs[n-3:])
	require.Contains(t, fake.lastArgs, "--header")
	require.NotContains(t, fake.lastArgs, "--user")
}

func TestFetchToFile_RendersAndClearsProgress(t *testing.T) {
	ui := &recordingUI{}
	fake := &fakeInvoker{
		results: []*runner.Result{{ExitCode: 0}},
		stderrChunks: [][]byte{
			[]byte("\r12 1024 5 50 8 80 1k 0 00:01 00:00"),
			[]byte(" 00:01 2k\r100 1024 100 1024 0 0 3k 0 00:01 00:01 00:00 3k\r"),
		},
	}
	c := newTestClient(Config{UI: ui}, fake)

	req := NewTransferRequest("https://example.com/a", "/tmp/a", TransportConfig{})
	require.NoError(t, c.FetchToFile(context.Background(), req))

	require.Equal(t, []string{
		"clear",
		`render("Progress: 12% (Rate: 2k/s, Estimated time remaining: 00:01)",false)`,
		"clear",
		`render("Progress: 100% (Rate: 3k/s, Estimated time remaining: 00:00)",false)`,
		"clear",
	}, ui.events)
}

func TestFetchToFile_ClearsLineOnToolError(t *testing.T) {
	ui := &recordingUI{}
	fake := &fakeInvoker{
		results: []*runner.Result{{
			ExitCode: 6,
			Stderr:   []byte("curl: (6) Could not resolve host: example.com\n"),
		}},
	}
	c := newTestClient(Config{UI: ui}, fake)

	err := c.FetchToFile(context.Background(), NewTransferRequest("https://x/a", "/tmp/a", TransportConfig{}))
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	require.Equal(t, "Could not resolve host: example.com", toolErr.Message)
	require.Equal(t, []string{"clear"}, ui.events)
}

func TestFetchToFile_Cancelled(t *testing.T) {
	fake := &fakeInvoker{results: []*runner.Result{{ExitCode: 23, Cancelled: true}}}
	c := newTestClient(Config{}, fake)

	err := c.FetchToFile(context.Background(), NewTransferRequest("https://x/a", "/tmp/a", TransportConfig{}))
	require.ErrorIs(t, err, ErrCancelled)
}

func TestFetchToFile_PackagedModeEnv(t *testing.T) {
	fake := &fakeInvoker{results: []*runner.Result{{ExitCode: 0}}}
	c := newTestClient(Config{PackagedMode: true, InstallerDir: "/opt/product"}, fake)

	require.NoError(t, c.FetchToFile(context.Background(), NewTransferRequest("https://x/a", "/tmp/a", TransportConfig{})))
	require.Equal(t, []string{"CURL_CA_BUNDLE=/opt/product/ssl/cacert.pem"}, fake.lastEnv)
}

func TestProbeHeaders(t *testing.T) {
	fake := &fakeInvoker{results: []*runner.Result{{
		ExitCode: 0,
		Stdout:   []byte("HTTP/1.1 200 OK\r\nContent-Length: 42\r\n\r\n"),
	}}}
	c := newTestClient(Config{}, fake)

	text, err := c.ProbeHeaders(context.Background(), NewTransferRequest("https://example.com/a", "", TransportConfig{}))
	require.NoError(t, err)
	require.Contains(t, text, "Content-Length: 42")
	require.Equal(t, []string{"--head", "https://example.com/a"}, fake.lastArgs[:2])
}

func TestFetchAny_FallsThroughToWorkingMirror(t *testing.T) {
	fake := &fakeInvoker{results: []*runner.Result{
		{ExitCode: 6, Stderr: []byte("curl: (6) Could not resolve host: a\n")},
		{ExitCode: 0},
	}}
	c := newTestClient(Config{}, fake)

	err := c.FetchAny(context.Background(), "/tmp/a", TransportConfig{},
		"https://a.example/pkg", "https://b.example/pkg")
	require.NoError(t, err)
	require.Equal(t, 2, fake.calls)
}

func TestFetchAny_AllMirrorsFail(t *testing.T) {
	fake := &fakeInvoker{results: []*runner.Result{
		{ExitCode: 6, Stderr: []byte("curl: (6) Could not resolve host: a\n")},
	}}
	c := newTestClient(Config{}, fake)

	err := c.FetchAny(context.Background(), "/tmp/a", TransportConfig{},
		"https://a.example/pkg", "https://b.example/pkg")
	var all *AllMirrorsFailedError
	require.ErrorAs(t, err, &all)
	require.Len(t, all.Attempts, 2)
	require.Equal(t, "https://a.example/pkg", all.Attempts[0].Source)
}

func TestFetchAny_CancellationAborts(t *testing.T) {
	fake := &fakeInvoker{results: []*runner.Result{{Cancelled: true}}}
	c := newTestClient(Config{}, fake)

	err := c.FetchAny(context.Background(), "/tmp/a", TransportConfig{},
		"https://a.example/pkg", "https://b.example/pkg")
	require.ErrorIs(t, err, ErrCancelled)
	require.Equal(t, 1, fake.calls)
}

func TestFetchAny_NoSources(t *testing.T) {
	c := newTestClient(Config{}, &fakeInvoker{results: []*runner.Result{{}}})
	require.ErrorIs(t, c.FetchAny(context.Background(), "/tmp/a", TransportConfig{}), ErrNoSources)
}

func TestToolVersion(t *testing.T) {
	fake := &fakeInvoker{results: []*runner.Result{{
		ExitCode: 0,
		Stdout:   []byte("curl 8.5.0 (x86_64-pc-linux-gnu) libcurl/8.5.0 OpenSSL/3.0.13\n"),
	}}}
	c := newTestClient(Config{}, fake)

	v, err := c.ToolVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, "8.5.0", v)
	require.Equal(t, []string{"--version"}, fake.lastArgs)
}
