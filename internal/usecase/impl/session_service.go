// Package impl provides the implementations of the usecase interfaces.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"orderflow/internal/api"
	"orderflow/internal/domain/entity"
	domainerrors "orderflow/internal/domain/errors"
	"orderflow/internal/domain/storage"
	"orderflow/internal/mapper"
	"orderflow/internal/usecase"
)

// sessionService implements usecase.SessionUsecase on top of the API client
// and the durable key-value store.
//
// Every state mutation goes through a generation counter: an operation claims
// a generation before its network round trip and commits only if no later
// operation has started in the meantime. A slow Refresh can therefore never
// overwrite the result of a Logout or a fresh Login.
type sessionService struct {
	client   *api.Client
	store    storage.Store
	validate *validator.Validate
	logger   *slog.Logger

	mu      sync.RWMutex
	state   entity.Session
	gen     uint64
	subs    map[int]func(entity.Session)
	nextSub int
}

// NewSessionService creates a new session service instance.
func NewSessionService(client *api.Client, store storage.Store, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		client:   client,
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		subs:     make(map[int]func(entity.Session)),
	}
}

// Current returns a snapshot of the session state.
func (s *sessionService) Current() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Subscribe registers fn and returns its cancel function.
func (s *sessionService) Subscribe(fn func(entity.Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Restore loads the persisted session without touching the network, so the
// caller sees the last known state immediately. Corrupt or missing values are
// skipped; Reconcile is the authority on whether the session is still valid.
func (s *sessionService) Restore(ctx context.Context) {
	var state entity.Session

	if raw, err := s.store.Get(ctx, storage.KeyCurrentUser); err == nil {
		var user entity.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			s.logger.Warn("Discarding unreadable persisted user", slog.Any("error", err))
		} else {
			state.User = &user
		}
	}
	if state.User != nil {
		if raw, err := s.store.Get(ctx, storage.KeyCurrentSupplier); err == nil {
			var supplier entity.Supplier
			if err := json.Unmarshal([]byte(raw), &supplier); err != nil {
				s.logger.Warn("Discarding unreadable persisted supplier", slog.Any("error", err))
			} else {
				state.Supplier = &supplier
			}
		}
	}

	s.mu.Lock()
	s.state = state
	fns := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

// Reconcile validates the restored session against the server. A missing
// token means there is nothing to check. A token the server rejects clears
// the session entirely; a valid one replaces the restored state with fresh
// profile data.
func (s *sessionService) Reconcile(ctx context.Context) error {
	token := s.client.Token()
	if token == "" {
		return nil
	}

	// 1. Cheap local pre-check: a token that is already past its expiry
	// cannot possibly be accepted, so skip the round trip.
	if tokenExpired(token) {
		s.logger.Info("Stored token has expired, clearing session")
		gen := s.beginOp()
		s.clearSession(ctx, gen)

		return nil
	}

	// 2. Ask the server who the token belongs to.
	gen := s.beginOp()
	state, err := s.fetchIdentity(ctx)
	if err != nil {
		s.logger.Warn("Session reconcile failed, clearing session", slog.Any("error", err))
		s.clearSession(ctx, gen)

		return err
	}

	// 3. Replace the restored state with the authoritative one.
	if s.commit(gen, state) {
		s.persistSession(ctx, state)
	}

	return nil
}

// Login authenticates with the given credentials and loads the user profile.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) error {
	if err := s.validate.Struct(input); err != nil {
		return domainerrors.ErrValidation.WithDetails(err.Error())
	}

	gen := s.beginOp()

	// 1. Exchange the credentials for a token. The client attaches and
	// persists the token before this call returns, so the profile fetch
	// below is already authenticated.
	if _, err := s.client.Login(ctx, input.Email, input.Password); err != nil {
		s.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	// 2. Fetch the profile behind the new token.
	state, err := s.fetchIdentity(ctx)
	if err != nil {
		s.logger.Error("Profile fetch after login failed", slog.Any("error", err))
		s.clearSession(ctx, gen)

		return err
	}

	// 3. Commit and persist.
	if s.commit(gen, state) {
		s.persistSession(ctx, state)
	}
	s.logger.Info("Login succeeded", slog.String("user_id", state.User.ID))

	return nil
}

// RegisterOwner creates a supplier owner account and signs it in.
func (s *sessionService) RegisterOwner(ctx context.Context, input *usecase.RegisterOwnerInput) error {
	if err := s.validate.Struct(input); err != nil {
		return domainerrors.ErrValidation.WithDetails(err.Error())
	}

	// 1. Create the account. Registration does not authenticate by
	// itself; the backend returns the new account without a token.
	req := api.RegisterOwnerRequest{
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
		Supplier: api.RegisterOwnerSupplier{
			CompanyName: input.CompanyName,
			Email:       input.Email,
		},
	}
	if input.Phone != "" {
		req.Phone = &input.Phone
		req.Supplier.Phone = &input.Phone
	}
	if _, err := s.client.RegisterOwner(ctx, req); err != nil {
		s.logger.Warn("Owner registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	// 2. Sign in with the fresh credentials.
	return s.Login(ctx, &usecase.LoginInput{Email: input.Email, Password: input.Password})
}

// Logout clears the session. It is idempotent and never fails: the token and
// the persisted profile are dropped even if the store misbehaves.
func (s *sessionService) Logout(ctx context.Context) {
	gen := s.beginOp()
	s.clearSession(ctx, gen)
	s.logger.Info("Logged out")
}

// Refresh re-fetches the profile behind the current token. Failures keep the
// current state; a background refresh must never log the user out.
func (s *sessionService) Refresh(ctx context.Context) {
	if s.client.Token() == "" {
		return
	}

	gen := s.beginOp()
	state, err := s.fetchIdentity(ctx)
	if err != nil {
		s.logger.Warn("Session refresh failed, keeping current state", slog.Any("error", err))

		return
	}

	if s.commit(gen, state) {
		s.persistSession(ctx, state)
	}
}

// UpdateSupplier pushes profile edits to the server and applies the result.
// Failures are logged and the current state is kept.
func (s *sessionService) UpdateSupplier(ctx context.Context, input *usecase.UpdateSupplierInput) {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()

	if state.User == nil {
		s.logger.Warn("Supplier update requires a signed-in session", slog.Any("error", domainerrors.ErrNotAuthenticated))

		return
	}
	if state.Supplier == nil {
		s.logger.Warn("Supplier update requires a supplier profile", slog.Any("error", domainerrors.ErrNoSupplier))

		return
	}
	supplierID, err := strconv.ParseInt(state.Supplier.ID, 10, 64)
	if err != nil {
		s.logger.Error("Session holds a malformed supplier id", slog.String("supplier_id", state.Supplier.ID))

		return
	}

	gen := s.beginOp()
	resp, err := s.client.UpdateSupplier(ctx, supplierID, api.SupplierUpdateRequest{
		CompanyName: input.Name,
		Description: input.Description,
		Phone:       input.ContactPhone,
		Address:     input.Address,
	})
	if err != nil {
		s.logger.Warn("Supplier update failed, keeping current profile", slog.Any("error", err))

		return
	}

	supplier := mapper.Supplier(resp)
	supplier.OwnerID = state.User.ID
	next := entity.Session{User: state.User, Supplier: supplier}
	if s.commit(gen, next) {
		s.persistSession(ctx, next)
	}
}

// fetchIdentity builds the session state behind the current token. A missing
// or failing supplier profile degrades to an authenticated session without a
// supplier rather than failing the whole operation.
func (s *sessionService) fetchIdentity(ctx context.Context) (entity.Session, error) {
	resp, err := s.client.CurrentUser(ctx)
	if err != nil {
		return entity.Session{}, err
	}
	user := mapper.User(resp)

	var supplier *entity.Supplier
	if resp.SupplierID != nil {
		supResp, err := s.client.GetSupplier(ctx, *resp.SupplierID)
		if err != nil {
			s.logger.Warn("Supplier profile fetch failed, continuing without it",
				slog.Int64("supplier_id", *resp.SupplierID), slog.Any("error", err))
		} else {
			supplier = mapper.Supplier(supResp)
			supplier.OwnerID = user.ID
		}
	}

	return entity.Session{User: user, Supplier: supplier}, nil
}

// beginOp claims a new generation for a state-mutating operation.
func (s *sessionService) beginOp() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++

	return s.gen
}

// commit applies state if gen is still the latest generation. It reports
// whether the state was applied. Subscribers run outside the lock.
func (s *sessionService) commit(gen uint64, state entity.Session) bool {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()

		return false
	}
	s.state = state
	fns := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}

	return true
}

// clearSession drops the token, the persisted profile, and the in-memory
// state under the given generation.
func (s *sessionService) clearSession(ctx context.Context, gen uint64) {
	s.client.SetToken(ctx, "")
	if err := s.store.Delete(ctx, storage.KeyCurrentUser); err != nil {
		s.logger.Warn("Failed to remove persisted user", slog.Any("error", err))
	}
	if err := s.store.Delete(ctx, storage.KeyCurrentSupplier); err != nil {
		s.logger.Warn("Failed to remove persisted supplier", slog.Any("error", err))
	}
	s.commit(gen, entity.Session{})
}

// persistSession mirrors the committed state into the durable store. Storage
// failures are logged; the in-memory state remains the source of truth.
func (s *sessionService) persistSession(ctx context.Context, state entity.Session) {
	data, err := json.Marshal(state.User)
	if err == nil {
		err = s.store.Set(ctx, storage.KeyCurrentUser, string(data))
	}
	if err != nil {
		s.logger.Warn("Failed to persist user", slog.Any("error", err))
	}

	if state.Supplier == nil {
		if err := s.store.Delete(ctx, storage.KeyCurrentSupplier); err != nil {
			s.logger.Warn("Failed to remove persisted supplier", slog.Any("error", err))
		}

		return
	}
	data, err = json.Marshal(state.Supplier)
	if err == nil {
		err = s.store.Set(ctx, storage.KeyCurrentSupplier, string(data))
	}
	if err != nil {
		s.logger.Warn("Failed to persist supplier", slog.Any("error", err))
	}
}

func (s *sessionService) snapshotSubs() []func(entity.Session) {
	fns := make([]func(entity.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}

	return fns
}

// tokenExpired inspects the expiry claim without verifying the signature.
// Tokens that do not parse as JWTs, or carry no expiry, are treated as live
// and left for the server to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
