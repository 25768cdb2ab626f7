// Package accounts stores the user registry and the active session as JSON
// documents on top of the metadata key/value store.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/localauth/internal/client/models"
	"github.com/dmitrijs2005/localauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/localauth/internal/common"
)

// Repository reads and writes whole records; there are no partial updates.
type Repository struct {
	kv metadata.Repository
}

// NewRepository wraps kv with the registry and session records.
func NewRepository(kv metadata.Repository) *Repository {
	return &Repository{kv: kv}
}

// Users returns the registry in insertion order. A missing key is an
// empty registry.
func (r *Repository) Users(ctx context.Context) ([]models.StoredUser, error) {
	raw, err := r.kv.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, err
	}
	users := []models.StoredUser{}
	if raw == nil {
		return users, nil
	}
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode %s: %w", common.UsersKey, err)
	}
	return users, nil
}

// SaveUsers replaces the registry.
func (r *Repository) SaveUsers(ctx context.Context, users []models.StoredUser) error {
	if users == nil {
		users = []models.StoredUser{}
	}
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode %s: %w", common.UsersKey, err)
	}
	return r.kv.Set(ctx, common.UsersKey, raw)
}

// Session returns the persisted session user, or nil when logged out.
func (r *Repository) Session(ctx context.Context) (*models.User, error) {
	raw, err := r.kv.Get(ctx, common.SessionKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode %s: %w", common.SessionKey, err)
	}
	return &u, nil
}

// SaveSession makes u the persisted session.
func (r *Repository) SaveSession(ctx context.Context, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode %s: %w", common.SessionKey, err)
	}
	return r.kv.Set(ctx, common.SessionKey, raw)
}

// ClearSession removes the persisted session, if any.
func (r *Repository) ClearSession(ctx context.Context) error {
	return r.kv.Delete(ctx, common.SessionKey)
}
