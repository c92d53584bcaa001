package session

import (
	"context"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/routes"
)

const (
	UnauthorizedTitle = "You are unauthorized"
	LoginLinkText     = "Please Login"

	BuyerWelcome   = "Welcome to the shopping cart. Lets start shopping."
	SellerWelcome  = "Welcome to the shopping cart. Please start listing items."
	GenericWelcome = "Welcome"
)

// View is what the protected page shows.
type View struct {
	Authorized bool
	// Message is the welcome text, or the unauthorized title.
	Message string
	// LinkText and LinkRoute are set for the unauthorized view only.
	LinkText  string
	LinkRoute routes.Route
}

// Evaluate decides the protected page for user. It is total: every account
// type, known or not, gets a welcome message.
func Evaluate(user *models.User) View {
	if user == nil {
		return View{Message: UnauthorizedTitle, LinkText: LoginLinkText, LinkRoute: routes.Login}
	}

	switch {
	case user.AccountType.Is(models.AccountTypeBuyer):
		return View{Authorized: true, Message: BuyerWelcome}
	case user.AccountType.Is(models.AccountTypeSeller):
		return View{Authorized: true, Message: SellerWelcome}
	default:
		return View{Authorized: true, Message: GenericWelcome}
	}
}

// Gate evaluates the identity carried by ctx. It panics when ctx has no
// identity, see MustIdentity.
func Gate(ctx context.Context) View {
	return Evaluate(MustIdentity(ctx).LoggedInUser())
}
