package session

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_SetOverwrites(t *testing.T) {
	id := NewIdentity()
	assert.Nil(t, id.LoggedInUser())

	id.SetLoggedInUser(&models.User{Email: "a@b.com", Name: "Alice", Age: 30})
	id.SetLoggedInUser(&models.User{Email: "c@d.com"})

	got := id.LoggedInUser()
	require.NotNil(t, got)
	assert.Equal(t, models.User{Email: "c@d.com"}, *got, "set must replace, not merge")

	id.SetLoggedInUser(nil)
	assert.Nil(t, id.LoggedInUser())
}

func TestIdentity_FromContext(t *testing.T) {
	id := NewIdentity()
	ctx := WithIdentity(context.Background(), id)

	got, err := IdentityFrom(ctx)
	require.NoError(t, err)
	assert.Same(t, id, got)
	assert.Same(t, id, MustIdentity(ctx))
}

func TestIdentity_MissingProviderFailsLoudly(t *testing.T) {
	_, err := IdentityFrom(context.Background())
	require.ErrorIs(t, err, ErrNoIdentityProvider)

	assert.PanicsWithError(t, ErrNoIdentityProvider.Error(), func() {
		MustIdentity(context.Background())
	})
}
