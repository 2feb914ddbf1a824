package service

import (
	"context"
	"net/http"
	"strings"

	"autobid-server/internal/model"
	"autobid-server/pkg/apierror"
)

// CarStore is the persistence contract the catalog needs. Implemented by
// repository.CarRepository; mocked in tests.
type CarStore interface {
	List(ctx context.Context, q model.CarQuery) ([]model.Car, error)
	Count(ctx context.Context, q model.CarQuery) (int, error)
	FindAll(ctx context.Context) ([]model.Car, error)
	FindByID(ctx context.Context, id string) (model.Car, error)
	FindForOwner(ctx context.Context, email string) ([]model.Car, error)
	Insert(ctx context.Context, car model.Car) (model.Car, error)
	Update(ctx context.Context, id string, patch model.CarPatch) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type catalogMetrics interface {
	RecordCarCreated()
}

// CatalogService is the CRUD facade over car listings.
type CatalogService struct {
	store   CarStore
	metrics catalogMetrics
}

func NewCatalogService(store CarStore, metrics catalogMetrics) *CatalogService {
	return &CatalogService{store: store, metrics: metrics}
}

func (s *CatalogService) List(ctx context.Context, q model.CarQuery) ([]model.Car, error) {
	return s.store.List(ctx, q)
}

func (s *CatalogService) Count(ctx context.Context, q model.CarQuery) (int, error) {
	return s.store.Count(ctx, q)
}

func (s *CatalogService) GetAll(ctx context.Context) ([]model.Car, error) {
	return s.store.FindAll(ctx)
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (model.Car, error) {
	return s.store.FindByID(ctx, id)
}

func (s *CatalogService) ListForOwner(ctx context.Context, email string) ([]model.Car, error) {
	return s.store.FindForOwner(ctx, email)
}

// Create stores a new listing. The seller is always the authenticated
// caller; a caller-supplied seller_email is discarded.
func (s *CatalogService) Create(ctx context.Context, car model.Car, identity string) (model.Car, error) {
	if strings.TrimSpace(car.BrandName) == "" || strings.TrimSpace(car.ModelName) == "" {
		return model.Car{}, apierror.New("BAD_REQUEST", "brand_name and model_name are required", "", http.StatusBadRequest)
	}
	if car.Deadline.IsZero() {
		return model.Car{}, apierror.New("BAD_REQUEST", "deadline is required", "deadline", http.StatusBadRequest)
	}

	car.SellerEmail = identity

	created, err := s.store.Insert(ctx, car)
	if err != nil {
		return model.Car{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordCarCreated()
	}
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, patch model.CarPatch) (model.MutationResult, error) {
	matched, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return model.MutationResult{}, err
	}

	return model.MutationResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: matched,
	}, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) (model.MutationResult, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return model.MutationResult{}, err
	}

	return model.MutationResult{Acknowledged: true, DeletedCount: deleted}, nil
}
