package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/voyage/internal/client/models"
	"github.com/dmitrijs2005/voyage/internal/client/session"
	"github.com/dmitrijs2005/voyage/internal/logging"
)

type loginCall struct {
	email    string
	password string
	remember bool
}

type registerCall struct {
	name     string
	email    string
	password string
}

type fakeStore struct {
	user    *models.User
	loading bool

	loginErr    error
	registerErr error
	updateErr   error

	logins    []loginCall
	registers []registerCall
	patches   []models.ProfilePatch
	logouts   int
}

func (f *fakeStore) State() session.State {
	var u *models.User
	if f.user != nil {
		c := *f.user
		u = &c
	}
	return session.State{User: u, Loading: f.loading}
}

func (f *fakeStore) CurrentUser() (models.User, bool) {
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}

func (f *fakeStore) IsAuthenticated() bool { return f.user != nil }
func (f *fakeStore) IsLoading() bool       { return f.loading }

func (f *fakeStore) Subscribe(fn func(session.State)) func() { return func() {} }

func (f *fakeStore) Login(_ context.Context, email string, password []byte, remember bool) error {
	f.logins = append(f.logins, loginCall{email, string(password), remember})
	if f.loginErr != nil {
		return f.loginErr
	}
	f.user = &models.User{ID: "user-123", Name: "Arjun Sharma", Email: email}
	return nil
}

func (f *fakeStore) Register(_ context.Context, name, email string, password []byte) error {
	f.registers = append(f.registers, registerCall{name, email, string(password)})
	if f.registerErr != nil {
		return f.registerErr
	}
	f.user = &models.User{ID: "user-new", Name: name, Email: email}
	return nil
}

func (f *fakeStore) Logout(context.Context) {
	f.logouts++
	f.user = nil
}

func (f *fakeStore) UpdateProfile(_ context.Context, patch models.ProfilePatch) error {
	f.patches = append(f.patches, patch)
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.user != nil {
		u := patch.Apply(*f.user)
		f.user = &u
	}
	return nil
}

// stubInputs replaces the prompt helpers with scripted answers.
func stubInputs(t *testing.T, texts []string, password string, remember bool) {
	t.Helper()
	origST, origGP, origGC := getSimpleText, getPassword, getConfirmation

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		return remember, nil
	}

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
		getConfirmation = origGC
	})
}

func newTestApp(store *fakeStore) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		store:  store,
		logger: logging.NewNop(),
		out:    &out,
	}, &out
}
