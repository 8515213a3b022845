package client

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"globetrotter/internal/models/response_models"
)

// AuthState is what gets persisted between sessions: the user snapshot, the
// bearer token, and when the pair was saved.
type AuthState struct {
	User      response_models.UserResponse `json:"user"`
	Token     string                       `json:"token"`
	Timestamp time.Time                    `json:"timestamp"`
}

// Store is the persistence behind a Session. The file-backed implementation
// is the production one; tests use the in-memory store.
type Store interface {
	Read() (*AuthState, error)
	Write(state *AuthState) error
	Clear() error
}

// Session holds the current auth state with an explicit lifecycle: load from
// the store on init, save on login, clear on logout. It is safe for
// concurrent use. The bare token is cached separately so request authoring
// never races a state swap.
type Session struct {
	mu    sync.RWMutex
	store Store
	state *AuthState
	token string
}

func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Init loads persisted state, if any. A corrupt or missing store entry just
// leaves the session logged out.
func (s *Session) Init() {
	state, err := s.store.Read()
	if err != nil || state == nil || state.Token == "" {
		return
	}
	s.mu.Lock()
	s.state = state
	s.token = state.Token
	s.mu.Unlock()
}

func (s *Session) Login(user response_models.UserResponse, token string) error {
	state := &AuthState{
		User:      user,
		Token:     token,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.state = state
	s.token = token
	s.mu.Unlock()

	return s.store.Write(state)
}

// RefreshUser replaces the cached user snapshot, keeping the token.
func (s *Session) RefreshUser(user response_models.UserResponse) error {
	s.mu.Lock()
	if s.state == nil {
		s.mu.Unlock()
		return errors.New("no active session")
	}
	s.state.User = user
	s.state.Timestamp = time.Now()
	state := *s.state
	s.mu.Unlock()

	return s.store.Write(&state)
}

func (s *Session) Clear() {
	s.mu.Lock()
	s.state = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		// Nothing sensible to do; the in-memory state is already gone.
		_ = err
	}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() (response_models.UserResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return response_models.UserResponse{}, false
	}
	return s.state.User, true
}

func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// FileStore persists auth state as JSON in a single file.
type FileStore struct {
	Path string
}

func (f *FileStore) Read() (*AuthState, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var state AuthState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (f *FileStore) Write(state *AuthState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o600)
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStore keeps auth state in memory; used in tests.
type MemoryStore struct {
	mu    sync.Mutex
	state *AuthState
}

func (m *MemoryStore) Read() (*AuthState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	cp := *m.state
	return &cp, nil
}

func (m *MemoryStore) Write(state *AuthState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *state
	m.state = &cp
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
	return nil
}
