package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/client/config"
	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/routes"
	"github.com/dmitrijs2005/shopkeeper/internal/client/services"
	"github.com/dmitrijs2005/shopkeeper/internal/client/session"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLoggedIn_FollowsIdentity(t *testing.T) {
	app, _ := newTestApp(t, &fakeAuth{})
	assert.False(t, app.isLoggedIn())

	app.session.Cache.Set(session.UserKey, &models.User{Email: "a@b.com"})
	assert.True(t, app.isLoggedIn())
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app, _ := newTestApp(t, &fakeAuth{})
	var buf bytes.Buffer
	app.log = logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	app.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, app.currentMode())
	assert.Contains(t, buf.String(), "mode=online")

	buf.Reset()
	app.setMode(ModeOnline)
	assert.Empty(t, buf.String(), "no log output when mode doesn't change")

	app.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, app.currentMode())
	assert.Contains(t, buf.String(), "mode=offline")
}

func TestCheckOnline(t *testing.T) {
	f := &fakeAuth{}
	app, _ := newTestApp(t, f)

	app.checkOnline(context.Background())
	assert.Equal(t, ModeOnline, app.currentMode())

	f.pingErr = errors.New("down")
	app.checkOnline(context.Background())
	assert.Equal(t, ModeOffline, app.currentMode())
}

func TestStartOnlineStatusWatcher_StopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t, &fakeAuth{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.currentMode() == ModeOnline }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestGetStatus(t *testing.T) {
	app, _ := newTestApp(t, &fakeAuth{})
	assert.Equal(t, "(/)", app.getStatus())

	app.setMode(ModeOffline)
	app.session.Cache.Set(session.UserKey, &models.User{Name: "Alice", Email: "a@b.com"})
	require.NoError(t, app.router.Navigate(routes.User))
	assert.Equal(t, "(Alice offline /user)", app.getStatus())

	app.session.Cache.Set(session.UserKey, &models.User{Email: "b@b.com"})
	assert.Equal(t, "(b@b.com offline /user)", app.getStatus())
}

func TestUserPage(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want []string
	}{
		{name: "anonymous", want: []string{session.UnauthorizedTitle, session.LoginLinkText + ": type 'login'"}},
		{name: "buyer", user: &models.User{Email: "a@b.com", AccountType: "Buyer"}, want: []string{session.BuyerWelcome}},
		{name: "seller", user: &models.User{Email: "a@b.com", AccountType: models.AccountTypeSeller}, want: []string{session.SellerWelcome}},
		{name: "other", user: &models.User{Email: "a@b.com", AccountType: "admin"}, want: []string{session.GenericWelcome}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := newTestApp(t, &fakeAuth{})
			if tt.user != nil {
				app.session.Cache.Set(session.UserKey, tt.user)
			}

			require.NoError(t, app.User(context.Background()))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
			if tt.user != nil {
				assert.NotContains(t, out.String(), session.UnauthorizedTitle)
			}
		})
	}
}

func TestNavigate_UnknownRoute(t *testing.T) {
	app, out := newTestApp(t, &fakeAuth{})
	require.Error(t, app.Navigate("/admin"))
	assert.Equal(t, routes.Home, app.router.Current())
	assert.Empty(t, out.String())
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := newConsoleNotifier(&buf)
	n.Notify("Login Failed", "Please check your username and password to try again")
	n.Notify("Logged In Successfully", "")
	assert.Equal(t, "* Login Failed: Please check your username and password to try again\n* Logged In Successfully\n", buf.String())
}

// shopAPI is a small in-process Shopping World API used to drive a fully
// wired App.
type shopAPI struct {
	token       string
	profileHits atomic.Int32
}

func (s *shopAPI) router() *mux.Router {
	user := map[string]any{"name": "Alice", "email": "a@b.com", "accountType": "buyer", "gender": "female", "age": 30}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var c models.Credentials
		_ = json.NewDecoder(req.Body).Decode(&c)
		if c.Password != "Secret#123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": user, "access_token": s.token})
	}).Methods(http.MethodPost)
	r.HandleFunc("/auth/profile", func(w http.ResponseWriter, req *http.Request) {
		s.profileHits.Add(1)
		if req.Header.Get("Authorization") != "Bearer "+s.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": user})
	}).Methods(http.MethodGet)
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {}).Methods(http.MethodHead)
	return r
}

func newWiredApp(t *testing.T, baseURL, dbPath string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{APIBaseURL: baseURL, DatabasePath: dbPath}

	app, err := NewApp(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(app.Close)

	out := &bytes.Buffer{}
	app.out = out
	app.notifier.w = out
	app.reader = bufio.NewReader(strings.NewReader(""))
	return app, out
}

func TestApp_LoginLogoutAndRestore(t *testing.T) {
	api := &shopAPI{token: "tok"}
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)
	dbPath := filepath.Join(t.TempDir(), "shop.db")

	app, out := newWiredApp(t, srv.URL, dbPath)
	ctx := context.Background()

	// wrong password: nothing changes
	stubInputs(t, "Wrong#1234", "a@b.com")
	_ = app.Login(ctx)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), services.TitleLoginFailed)

	stubInputs(t, "Secret#123", "a@b.com")
	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, routes.User, app.router.Current())
	assert.Contains(t, out.String(), session.BuyerWelcome)
	assert.Contains(t, app.getStatus(), "Alice")

	// a second client over the same database picks the session up
	app.Close()
	restored, _ := newWiredApp(t, srv.URL, dbPath)
	require.NoError(t, restored.authService.Restore(ctx))
	assert.True(t, restored.isLoggedIn())
	assert.Equal(t, int32(1), api.profileHits.Load())

	require.NoError(t, restored.Logout(ctx))
	assert.False(t, restored.isLoggedIn())
	assert.Equal(t, routes.Login, restored.router.Current())
	assert.Equal(t, session.EntryAbsent, restored.session.Cache.Get(session.UserKey).State)

	// nothing left to restore
	restored.Close()
	again, _ := newWiredApp(t, srv.URL, dbPath)
	require.NoError(t, again.authService.Restore(ctx))
	assert.False(t, again.isLoggedIn())
	assert.Equal(t, int32(1), api.profileHits.Load(), "no profile call without a token")
}

func TestNewApp_RejectsBadBaseURL(t *testing.T) {
	cfg := &config.Config{APIBaseURL: "localhost:3000", DatabasePath: filepath.Join(t.TempDir(), "shop.db")}
	_, err := NewApp(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}
