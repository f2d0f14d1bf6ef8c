package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voyage/internal/client/models"
	"github.com/dmitrijs2005/voyage/internal/client/storage"
	"github.com/dmitrijs2005/voyage/internal/common"
)

// Login authenticates and makes the returned user current. With remember the
// record goes to the durable scope, otherwise to the ephemeral one; the other
// scope is cleared. On failure the session is left as it was and the returned
// error wraps common.ErrOperationFailed.
func (s *Store) Login(ctx context.Context, email string, password []byte, remember bool) error {
	s.begin()
	defer s.end()
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = context.WithoutCancel(ctx)

	user, err := s.client.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Error(ctx, "login failed", "email", email, "error", err)
		return fmt.Errorf("%w: login: %w", common.ErrOperationFailed, err)
	}

	keep, drop := s.scopes.Ephemeral, s.scopes.Durable
	if remember {
		keep, drop = s.scopes.Durable, s.scopes.Ephemeral
	}
	if err := persist(ctx, *user, keep, drop); err != nil {
		s.logger.Error(ctx, "login failed", "email", email, "error", err)
		return fmt.Errorf("%w: login: %w", common.ErrOperationFailed, err)
	}

	s.commit(user)
	s.logger.Info(ctx, "login succeeded", "user_id", user.ID, "remember", remember)
	return nil
}

// Register creates an account and makes it current. The record is always
// written to the durable scope.
func (s *Store) Register(ctx context.Context, name, email string, password []byte) error {
	s.begin()
	defer s.end()
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = context.WithoutCancel(ctx)

	user, err := s.client.CreateAccount(ctx, name, email, password)
	if err != nil {
		s.logger.Error(ctx, "registration failed", "email", email, "error", err)
		return fmt.Errorf("%w: register: %w", common.ErrOperationFailed, err)
	}

	if err := persist(ctx, *user, s.scopes.Durable, s.scopes.Ephemeral); err != nil {
		s.logger.Error(ctx, "registration failed", "email", email, "error", err)
		return fmt.Errorf("%w: register: %w", common.ErrOperationFailed, err)
	}

	s.commit(user)
	s.logger.Info(ctx, "registration succeeded", "user_id", user.ID)
	return nil
}

// Logout ends the session. It cannot fail: sign-out and storage errors are
// logged, the user is cleared and both scopes are emptied regardless.
func (s *Store) Logout(ctx context.Context) {
	s.begin()
	defer s.end()
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = context.WithoutCancel(ctx)

	if err := s.client.SignOut(ctx); err != nil {
		s.logger.Error(ctx, "logout failed", "error", err)
	}

	if err := s.scopes.Durable.Delete(ctx, storage.UserKey); err != nil {
		s.logger.Error(ctx, "failed to clear durable session", "error", err)
	}
	if err := s.scopes.Ephemeral.Delete(ctx, storage.UserKey); err != nil {
		s.logger.Error(ctx, "failed to clear ephemeral session", "error", err)
	}

	s.commit(nil)
	s.logger.Info(ctx, "logged out")
}

// UpdateProfile merges patch over the current user and writes the result to
// the durable scope. Without a current user it does nothing and returns nil.
// The user ID never changes.
func (s *Store) UpdateProfile(ctx context.Context, patch models.ProfilePatch) error {
	s.begin()
	defer s.end()
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx = context.WithoutCancel(ctx)

	current, ok := s.CurrentUser()
	if !ok {
		s.logger.Debug(ctx, "profile update skipped: not authenticated")
		return nil
	}

	updated, err := s.client.UpdateProfile(ctx, patch.Apply(current))
	if err != nil {
		s.logger.Error(ctx, "profile update failed", "user_id", current.ID, "error", err)
		return fmt.Errorf("%w: update profile: %w", common.ErrOperationFailed, err)
	}
	updated.ID = current.ID

	if err := persist(ctx, *updated, s.scopes.Durable, s.scopes.Ephemeral); err != nil {
		s.logger.Error(ctx, "profile update failed", "user_id", current.ID, "error", err)
		return fmt.Errorf("%w: update profile: %w", common.ErrOperationFailed, err)
	}

	s.commit(updated)
	s.logger.Info(ctx, "profile updated", "user_id", updated.ID)
	return nil
}

// persist writes user into keep and removes it from drop, so only one scope
// ever holds the record. If drop cannot be cleared, keep is restored to its
// previous content.
func persist(ctx context.Context, user models.User, keep, drop storage.Scope) error {
	data, err := models.EncodeUser(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	prev, err := keep.Get(ctx, storage.UserKey)
	hadPrev := err == nil
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("read stored user: %w", err)
	}

	if err := keep.Set(ctx, storage.UserKey, data); err != nil {
		return fmt.Errorf("store user: %w", err)
	}

	if err := drop.Delete(ctx, storage.UserKey); err != nil {
		var rollbackErr error
		if hadPrev {
			rollbackErr = keep.Set(ctx, storage.UserKey, prev)
		} else {
			rollbackErr = keep.Delete(ctx, storage.UserKey)
		}
		if rollbackErr != nil {
			return fmt.Errorf("clear stale user: %w", errors.Join(err, fmt.Errorf("restore: %w", rollbackErr)))
		}
		return fmt.Errorf("clear stale user: %w", err)
	}
	return nil
}
