// Package services contains the application services of the CourseKeeper
// client: the session lifecycle and the per-resource stores that keep local
// views synchronized with the backend.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mjimenezh/coursekeeper/internal/client/api"
	"github.com/mjimenezh/coursekeeper/internal/client/models"
	"github.com/mjimenezh/coursekeeper/internal/client/state"
	"github.com/mjimenezh/coursekeeper/internal/dbx"
	"github.com/mjimenezh/coursekeeper/internal/logging"
)

// Keys of the two persisted session entries. Both are always written and
// cleared together.
const (
	stateKeyToken = "token"
	stateKeyUser  = "user"
)

// Fixed user-facing defaults, used when the server supplies no message.
const (
	msgLoginFailed    = "Error al iniciar sesión"
	msgRegisterFailed = "Error al registrarse"
	msgConnection     = "Error de conexión"
)

// SessionService owns the authenticated-identity state of the client:
// the token/user pair in memory plus its persisted form in the local state
// database. Token and user are non-empty if and only if both are, together.
//
// Auth operations never return errors to callers: they report success as a
// bool and record a readable message retrievable via Err.
type SessionService struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	mu      sync.RWMutex
	token   string
	user    *models.User
	loading bool
	errMsg  string
}

func NewSessionService(client api.Client, db *sql.DB, log logging.Logger) *SessionService {
	if log == nil {
		log = logging.Nop()
	}
	return &SessionService{client: client, db: db, log: log.With("component", "session")}
}

func (s *SessionService) repo() state.Repository {
	return state.NewSQLiteRepository(s.db)
}

// Init hydrates the in-memory session from the persisted token and user.
// Missing or malformed persisted data leaves the session unauthenticated;
// Init never fails on corrupt state.
func (s *SessionService) Init(ctx context.Context) {
	repo := s.repo()

	token, err := repo.Get(ctx, stateKeyToken)
	if err != nil {
		s.log.Warn(ctx, "reading persisted token", "error", err)
		return
	}
	userData, err := repo.Get(ctx, stateKeyUser)
	if err != nil {
		s.log.Warn(ctx, "reading persisted user", "error", err)
		return
	}
	if len(token) == 0 || len(userData) == 0 {
		return
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		// Corrupt persisted state is equivalent to no session.
		s.log.Warn(ctx, "persisted user record is malformed, ignoring", "error", err)
		return
	}
	if user.Roles == nil {
		user.Roles = []string{}
	}

	s.mu.Lock()
	s.token = string(token)
	s.user = &user
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "email", user.Email)
}

// Login authenticates against the backend. On success the token and the
// derived user are set and persisted together; the user's first/last name
// come from splitting the response's full name at the first space.
func (s *SessionService) Login(ctx context.Context, email, password string) bool {
	s.begin()

	resp, err := s.client.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.fail(ctx, err, msgLoginFailed)
		return false
	}
	if !resp.Success {
		msg := resp.ErrorMessage
		if msg == "" {
			msg = msgLoginFailed
		}
		s.finish(msg)
		return false
	}

	first, last := models.SplitFullName(resp.FullName)
	user := &models.User{
		Email:     resp.Email,
		FirstName: first,
		LastName:  last,
		FullName:  resp.FullName,
		Roles:     resp.Roles,
	}
	s.establish(ctx, resp.Token, user)
	return true
}

// Register creates a new account. Unlike Login, first and last name are
// taken from the input rather than parsed from the full name.
func (s *SessionService) Register(ctx context.Context, req models.RegisterRequest) bool {
	s.begin()

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		s.fail(ctx, err, msgRegisterFailed)
		return false
	}
	if !resp.Success {
		msg := resp.ErrorMessage
		if msg == "" {
			msg = msgRegisterFailed
		}
		s.finish(msg)
		return false
	}

	user := &models.User{
		Email:     resp.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		FullName:  resp.FullName,
		Roles:     resp.Roles,
	}
	s.establish(ctx, resp.Token, user)
	return true
}

// Logout clears the in-memory session and the persisted entries
// unconditionally. Calling it while logged out is a no-op.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.errMsg = ""
	s.mu.Unlock()

	if err := s.repo().Clear(ctx); err != nil {
		s.log.Warn(ctx, "clearing persisted session", "error", err)
	}
}

func (s *SessionService) establish(ctx context.Context, token string, user *models.User) {
	if user.Roles == nil {
		user.Roles = []string{}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.loading = false
	s.errMsg = ""
	s.mu.Unlock()

	if err := s.persist(ctx, token, user); err != nil {
		s.log.Warn(ctx, "persisting session", "error", err)
	}
	s.log.Info(ctx, "authenticated", "email", user.Email)
}

// persist writes token and user in one transaction so the two entries
// cannot diverge.
func (s *SessionService) persist(ctx context.Context, token string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, stateKeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, stateKeyUser, data)
	})
}

func (s *SessionService) begin() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *SessionService) finish(msg string) {
	s.mu.Lock()
	s.loading = false
	s.errMsg = msg
	s.mu.Unlock()
}

func (s *SessionService) fail(ctx context.Context, err error, fallback string) {
	msg := fallback
	if errors.Is(err, api.ErrUnavailable) {
		msg = msgConnection
	} else if m := api.ServerMessage(err); m != "" {
		msg = m
	}
	s.log.Warn(ctx, "auth request failed", "error", err)
	s.finish(msg)
}

// IsAuthenticated reports whether a session is established.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsAdmin reports whether the current user carries the Admin role.
func (s *SessionService) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.HasRole(models.AdminRole)
}

// Token returns the current bearer token ("" when unauthenticated).
// It satisfies api.TokenSource.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil when unauthenticated.
func (s *SessionService) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Roles = append([]string(nil), s.user.Roles...)
	return &u
}

// Err returns the user-facing message of the last failed auth operation.
func (s *SessionService) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Loading reports whether an auth operation is in flight. The flag is
// advisory only; concurrent operations are not serialized.
func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// TokenExpiry returns the expiration time embedded in the bearer token.
// The token is decoded without signature verification; validation remains
// the server's job. Returns the zero time when the token is absent, not a
// JWT, or carries no exp claim.
func (s *SessionService) TokenExpiry() time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
