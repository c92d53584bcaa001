package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/routes"
	"github.com/dmitrijs2005/shopkeeper/internal/client/session"
)

// Navigate switches the current route and prints its page. It satisfies
// services.Navigator.
func (a *App) Navigate(to routes.Route) error {
	if err := a.router.Navigate(to); err != nil {
		return err
	}
	a.renderPage(to)
	return nil
}

// pageContext is the context pages are rendered with: it provides the
// session identity to everything below it.
func (a *App) pageContext() context.Context {
	return session.WithIdentity(context.Background(), a.session.Identity)
}

var pageTitles = map[routes.Route]string{
	routes.Home:     "Shopping World",
	routes.Login:    "Login",
	routes.Register: "Register",
	routes.User:     "User",
}

func (a *App) printTitle(r routes.Route) {
	fmt.Fprintf(a.out, "== %s ==\n", pageTitles[r])
}

// openForm switches to a form page without printing its hint, for commands
// that start prompting right away.
func (a *App) openForm(r routes.Route) error {
	if err := a.router.Navigate(r); err != nil {
		return err
	}
	a.printTitle(r)
	return nil
}

func (a *App) renderPage(r routes.Route) {
	if r == routes.User {
		a.renderUserPage(a.pageContext())
		return
	}

	a.printTitle(r)
	switch r {
	case routes.Home:
		fmt.Fprintln(a.out, "Type 'register' to create an account or 'login' to sign in.")
	case routes.Login:
		fmt.Fprintln(a.out, "Type 'login' to enter your email and password. No account yet? Type 'register'.")
	case routes.Register:
		fmt.Fprintln(a.out, "Type 'register' to fill in the registration form.")
	}
}

// renderUserPage is the only page behind the access gate.
func (a *App) renderUserPage(ctx context.Context) {
	view := session.Gate(ctx)

	a.printTitle(routes.User)
	fmt.Fprintln(a.out, view.Message)
	if !view.Authorized {
		fmt.Fprintf(a.out, "%s: type '%s'\n", view.LinkText, commandFor(view.LinkRoute))
	}
}

func commandFor(r routes.Route) string {
	switch r {
	case routes.Home:
		return "home"
	case routes.Login:
		return "login"
	case routes.Register:
		return "register"
	case routes.User:
		return "user"
	}
	return "help"
}
