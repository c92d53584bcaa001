package cli

import (
	"fmt"
	"io"
	"sync"
)

// consoleNotifier prints transient notifications as single lines. The
// watcher goroutine never notifies, but the mutex keeps lines whole if that
// changes.
type consoleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsoleNotifier(w io.Writer) *consoleNotifier {
	return &consoleNotifier{w: w}
}

func (n *consoleNotifier) Notify(title, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if text == "" {
		fmt.Fprintf(n.w, "* %s\n", title)
		return
	}
	fmt.Fprintf(n.w, "* %s: %s\n", title, text)
}
