package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kanzcollective/storefront-backend/pkg/db/models"
	pkgerrors "github.com/kanzcollective/storefront-backend/pkg/errors"
)

// Service exposes catalog browsing operations.
type Service interface {
	ListProducts(ctx context.Context, q Query) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id string) (*ProductDTO, error)
	Tags() []string
}

type productReader interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

type service struct {
	repo       productReader
	fetchDelay time.Duration
}

// NewService constructs the catalog service. fetchDelay simulates the
// upstream latency the web client was built around; zero disables it.
func NewService(repo productReader, fetchDelay time.Duration) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, fetchDelay: fetchDelay}, nil
}

func (s *service) ListProducts(ctx context.Context, q Query) ([]ProductDTO, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}

	return ApplyQuery(toDTOs(rows), q), nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*ProductDTO, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	row, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	dto := toDTO(*row)
	return &dto, nil
}

func (s *service) Tags() []string {
	return append([]string(nil), FilterTags...)
}

func (s *service) simulateLatency(ctx context.Context) error {
	if s.fetchDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.fetchDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeInternal, ctx.Err(), "catalog fetch cancelled")
	case <-timer.C:
		return nil
	}
}
