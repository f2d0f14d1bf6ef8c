package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/voyage/internal/client/models"
	"github.com/dmitrijs2005/voyage/internal/common"
	"github.com/dmitrijs2005/voyage/internal/filex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIn() *fakeStore {
	return &fakeStore{user: &models.User{
		ID:     "user-123",
		Name:   "Arjun Sharma",
		Email:  "arjun@example.com",
		Avatar: "https://example.com/a.png",
	}}
}

func TestProfile_Prints(t *testing.T) {
	a, out := newTestApp(signedIn())

	require.NoError(t, a.Profile(context.Background()))

	s := out.String()
	assert.Contains(t, s, "user-123")
	assert.Contains(t, s, "Arjun Sharma")
	assert.Contains(t, s, "arjun@example.com")
	assert.Contains(t, s, "https://example.com/a.png")
}

func TestStatus(t *testing.T) {
	a, out := newTestApp(signedIn())
	require.NoError(t, a.Status(context.Background()))
	assert.Contains(t, out.String(), "Logged in as arjun@example.com")

	a, out = newTestApp(&fakeStore{})
	require.NoError(t, a.Status(context.Background()))
	assert.Contains(t, out.String(), "Not logged in.")
}

func TestEdit_OnlyChangedFields(t *testing.T) {
	store := signedIn()
	a, _ := newTestApp(store)
	stubInputs(t, []string{"Arjun S", ""}, "", false)

	require.NoError(t, a.Edit(context.Background()))

	require.Len(t, store.patches, 1)
	p := store.patches[0]
	require.NotNil(t, p.Name)
	assert.Equal(t, "Arjun S", *p.Name)
	assert.Nil(t, p.Email)
	assert.Nil(t, p.Avatar)
	assert.Equal(t, "arjun@example.com", store.user.Email)
}

func TestEdit_NothingChanged(t *testing.T) {
	store := signedIn()
	a, out := newTestApp(store)
	stubInputs(t, []string{"", "arjun@example.com"}, "", false)

	require.NoError(t, a.Edit(context.Background()))

	assert.Empty(t, store.patches)
	assert.Contains(t, out.String(), "Nothing to change.")
}

func TestEdit_InvalidEmail(t *testing.T) {
	store := signedIn()
	a, _ := newTestApp(store)
	stubInputs(t, []string{"", "nope"}, "", false)

	assert.ErrorIs(t, a.Edit(context.Background()), common.ErrValidation)
	assert.Empty(t, store.patches)
}

func TestEdit_Failure(t *testing.T) {
	store := signedIn()
	store.updateErr = common.ErrOperationFailed
	a, out := newTestApp(store)
	stubInputs(t, []string{"Someone Else", ""}, "", false)

	assert.ErrorIs(t, a.Edit(context.Background()), common.ErrOperationFailed)
	assert.Contains(t, out.String(), "Something went wrong")
	assert.Equal(t, "Arjun Sharma", store.user.Name)
}

func TestAvatar_URL(t *testing.T) {
	store := signedIn()
	a, _ := newTestApp(store)
	stubInputs(t, []string{"https://images.example.com/me.jpg"}, "", false)

	require.NoError(t, a.Avatar(context.Background()))

	require.Len(t, store.patches, 1)
	assert.Equal(t, "https://images.example.com/me.jpg", *store.patches[0].Avatar)
	assert.Nil(t, store.patches[0].Name)
}

func TestAvatar_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	store := signedIn()
	a, _ := newTestApp(store)
	stubInputs(t, []string{path}, "", false)

	require.NoError(t, a.Avatar(context.Background()))

	require.Len(t, store.patches, 1)
	got := *store.patches[0].Avatar
	assert.True(t, strings.HasPrefix(got, "file://"), got)
	assert.True(t, strings.HasSuffix(got, "/me.png"), got)
}

func TestAvatarLocator_Rejects(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("x"), 0o600))

	big := filepath.Join(dir, "big.jpg")
	f, err := os.Create(big)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxAvatarSize+1))
	require.NoError(t, f.Close())

	_, err = avatarLocator(text)
	assert.ErrorIs(t, err, filex.ErrNotImage)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = avatarLocator(big)
	assert.ErrorIs(t, err, filex.ErrFileTooLarge)

	_, err = avatarLocator("https://")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAvatar_BlankCancels(t *testing.T) {
	store := signedIn()
	a, out := newTestApp(store)
	stubInputs(t, []string{""}, "", false)

	require.NoError(t, a.Avatar(context.Background()))
	assert.Empty(t, store.patches)
	assert.Contains(t, out.String(), "Nothing to change.")
}
