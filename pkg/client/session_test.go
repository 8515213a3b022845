package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/response_models"
	"globetrotter/pkg/client"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := &client.FileStore{Path: filepath.Join(t.TempDir(), "session.json")}

	session := client.NewSession(store)
	err := session.Login(response_models.UserResponse{ID: "u1", Name: "Ada"}, "token-1")
	require.NoError(t, err)

	reloaded := client.NewSession(store)
	reloaded.Init()

	assert.True(t, reloaded.LoggedIn())
	assert.Equal(t, "token-1", reloaded.Token())
	user, ok := reloaded.User()
	require.True(t, ok)
	assert.Equal(t, "Ada", user.Name)
}

func TestFileStore_CorruptFileStaysLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	session := client.NewSession(&client.FileStore{Path: path})
	session.Init()

	assert.False(t, session.LoggedIn())
}

func TestSession_ClearRemovesPersistedState(t *testing.T) {
	store := &client.FileStore{Path: filepath.Join(t.TempDir(), "session.json")}
	session := client.NewSession(store)
	require.NoError(t, session.Login(response_models.UserResponse{ID: "u1"}, "token-1"))

	session.Clear()

	assert.False(t, session.LoggedIn())
	_, ok := session.User()
	assert.False(t, ok)

	state, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSession_RefreshUserKeepsToken(t *testing.T) {
	store := &client.MemoryStore{}
	session := client.NewSession(store)
	require.NoError(t, session.Login(response_models.UserResponse{ID: "u1", Name: "Ada"}, "token-1"))

	err := session.RefreshUser(response_models.UserResponse{ID: "u1", Name: "Ada Lovelace"})

	require.NoError(t, err)
	assert.Equal(t, "token-1", session.Token())
	user, _ := session.User()
	assert.Equal(t, "Ada Lovelace", user.Name)

	persisted, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", persisted.User.Name)
}

func TestSession_RefreshWithoutLoginFails(t *testing.T) {
	session := client.NewSession(&client.MemoryStore{})

	err := session.RefreshUser(response_models.UserResponse{ID: "u1"})

	assert.Error(t, err)
}
