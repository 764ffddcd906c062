package client

// UI is the optional rendering collaborator for transfer progress.
// Implementations must be cheap and non-blocking: calls arrive from the
// child process output plumbing while the transfer is still running.
type UI interface {
	// ClearLine erases the current console line so the next render
	// overwrites it.
	ClearLine()

	// RenderDetail draws text; when appendNewline is false the cursor stays
	// on the line so a later render can replace it.
	RenderDetail(text string, appendNewline bool)
}
