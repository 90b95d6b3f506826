package services

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/doclift/doclift/internal/core/domain"
	"github.com/doclift/doclift/internal/core/ports/driven"
)

// SyncService dispatches repository imports to per-provider importers.
type SyncService struct {
	importers map[domain.Provider]driven.Importer
	logger    *log.Logger
}

// NewSyncService creates a sync service over the given importers.
// Registering two importers for the same provider keeps the last one.
func NewSyncService(logger *log.Logger, importers ...driven.Importer) *SyncService {
	m := make(map[domain.Provider]driven.Importer, len(importers))
	for _, imp := range importers {
		m[imp.Provider()] = imp
	}
	return &SyncService{importers: m, logger: logger}
}

// Providers returns the providers with a registered importer.
func (s *SyncService) Providers() []domain.Provider {
	providers := make([]domain.Provider, 0, len(s.importers))
	for p := range s.importers {
		providers = append(providers, p)
	}
	return providers
}

// Import runs the importer registered for the provider. The boolean
// reports whether an authenticated session could be built from stored
// credentials; sync failures after a session was obtained are returned
// alongside true.
func (s *SyncService) Import(ctx context.Context, user domain.User, provider domain.Provider, sync bool) (bool, error) {
	imp, ok := s.importers[provider]
	if !ok {
		return false, fmt.Errorf("%w: %q", domain.ErrUnsupportedProvider, provider)
	}

	obtained, err := imp.Import(ctx, user, sync)
	if err != nil {
		s.logger.Warn("import failed", "user", user.Username, "provider", provider, "err", err)
		return obtained, err
	}
	return obtained, nil
}
