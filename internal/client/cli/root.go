package cli

import (
	"context"
	"fmt"
	"strings"
)

// getStatus renders the prompt header: the cached user's name, the
// connectivity mode and the current route.
func (a *App) getStatus() string {
	var parts []string
	if u := a.session.CurrentUser(); u != nil {
		name := u.Name
		if name == "" {
			name = u.Email
		}
		parts = append(parts, name)
	}
	if m := a.currentMode(); m != "" {
		parts = append(parts, string(m))
	}
	parts = append(parts, string(a.router.Current()))
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// Root prints the current page, starts the connectivity watcher and runs
// the REPL until the user leaves.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to Shopping World (type 'help' for commands)")
	a.renderPage(a.router.Current())

	if a.currentMode() == "" {
		a.checkOnline(ctx)
	}
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
