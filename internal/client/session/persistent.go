package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/creditscore/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/creditscore/internal/common"
	"github.com/dmitrijs2005/creditscore/internal/logging"
)

// PersistentStore keeps the credential under common.TokenStorageKey in the
// local storage repository, so it survives restarts.
type PersistentStore struct {
	repo   localstorage.Repository
	logger logging.Logger
}

func NewPersistentStore(repo localstorage.Repository, logger logging.Logger) *PersistentStore {
	if logger == nil {
		logger = logging.Nop()
	}
	return &PersistentStore{repo: repo, logger: logger}
}

func (p *PersistentStore) Save(ctx context.Context, token string) error {
	if err := p.repo.Set(ctx, common.TokenStorageKey, token); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (p *PersistentStore) Load(ctx context.Context) (string, bool) {
	token, ok, err := p.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		p.logger.Warn(ctx, "credential unreadable, treating as absent", "error", err)
		return "", false
	}
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (p *PersistentStore) Clear(ctx context.Context) error {
	if err := p.repo.Delete(ctx, common.TokenStorageKey); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (p *PersistentStore) CurrentIdentity(ctx context.Context) (string, bool) {
	token, ok := p.Load(ctx)
	if !ok {
		return "", false
	}
	identity, ok := DecodeIdentity(token)
	if !ok {
		p.logger.Debug(ctx, "credential carries no decodable identity")
	}
	return identity, ok
}
