package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rentora/rentora/internal/client/api"
	"github.com/rentora/rentora/internal/client/models"
	"github.com/rentora/rentora/internal/client/repositories/metadata"
	"github.com/rentora/rentora/internal/dbx"
)

// sessionKeys are the metadata rows that together make up a persisted
// session. The device identifier is deliberately not among them.
var sessionKeys = []string{api.KeyAccessToken, api.KeyTokenType, api.KeyUserData}

// persistSession stores the credential and the profile snapshot in one
// transaction so a restart never observes a token without its user or the
// other way around.
func (s *Store) persistSession(ctx context.Context, resp *models.LoginResponse) error {
	userData, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}

	tokenType := resp.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, api.KeyAccessToken, []byte(resp.AccessToken)); err != nil {
			return err
		}
		if err := repo.Set(ctx, api.KeyTokenType, []byte(tokenType)); err != nil {
			return err
		}
		return repo.Set(ctx, api.KeyUserData, userData)
	})
}

// persistUser refreshes the cached profile without touching the credential.
func (s *Store) persistUser(ctx context.Context, user *models.User) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}
	return s.meta().Set(ctx, api.KeyUserData, userData)
}

// clearPersisted removes the stored session pair in one transaction.
func (s *Store) clearPersisted(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range sessionKeys {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
