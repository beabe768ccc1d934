// Package service provides the people service implementation
package service

import (
	"context"

	perr "peopledex/internal/platform/errors"
	"peopledex/internal/platform/metrics"

	"peopledex/internal/modkit/repokit"
	dom "peopledex/internal/services/people/domain"
	"peopledex/internal/services/people/repo"
)

// Config for the people service
type Config struct {
	// SearchLimit caps search result sets, defaults to 50
	SearchLimit int
}

// Service implements domain.ServicePort over a bound Storage
type Service struct {
	db      repokit.TxRunner
	binder  repokit.Binder[repo.Storage]
	cfg     Config
	metrics *metrics.Metrics
}

// New constructs a people service
// db may be nil when the binder does not need a sql seam (memory storage)
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config, m *metrics.Metrics) *Service {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 50
	}
	return &Service{db: db, binder: binder, cfg: cfg, metrics: m}
}

func (s *Service) storage() repo.Storage { return s.binder.Bind(s.db) }

// Create implements domain.ServicePort
func (s *Service) Create(ctx context.Context, in dom.CreatePersonInput) (dom.Person, error) {
	p, err := s.storage().Insert(ctx, in)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeConflict) {
			s.metrics.IncrementCreateConflicts()
		}
		return dom.Person{}, err
	}
	s.metrics.IncrementPeopleCreated()
	return p, nil
}

// GetByID implements domain.ServicePort
func (s *Service) GetByID(ctx context.Context, id int64) (dom.Person, error) {
	return s.storage().GetByID(ctx, id)
}

// Search implements domain.ServicePort
// an empty term is a valid search that matches every record up to the cap
func (s *Service) Search(ctx context.Context, term string) ([]dom.Person, error) {
	out, err := s.storage().Search(ctx, term, s.cfg.SearchLimit)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementSearches()
	if out == nil {
		out = []dom.Person{}
	}
	return out, nil
}

// Count implements domain.ServicePort
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.storage().Count(ctx)
}
