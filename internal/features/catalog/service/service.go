package service

import (
	"context"

	"digital-store-bot/internal/features/catalog/models"
	"digital-store-bot/internal/features/catalog/repository"
)

type CatalogService interface {
	Add(ctx context.Context, category, name, features, price, description string) (*models.Product, error)
	All(ctx context.Context) ([]*models.Product, error)
	ByCategory(ctx context.Context, category string) ([]*models.Product, error)
	ByID(ctx context.Context, id int64) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	// Categories materializes the full catalog and extracts the distinct
	// category values in first-seen order. O(n) per call, no caching;
	// fine for the small catalogs this bot serves.
	Categories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) Add(ctx context.Context, category, name, features, price, description string) (*models.Product, error) {
	product := &models.Product{
		Category:    category,
		Name:        name,
		Features:    features,
		Price:       price,
		Description: description,
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	return product, nil
}

func (s *catalogService) All(ctx context.Context) ([]*models.Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *catalogService) ByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	return s.repo.GetByCategory(ctx, category)
}

func (s *catalogService) ByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *catalogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(products))
	var categories []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories, nil
}
