package services

import (
	"context"

	"github.com/duckshop/go-storefront/internal/domain"
)

// CatalogAPI is the remote surface the catalog service needs.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// CatalogService owns the product collection.
type CatalogService struct {
	api      CatalogAPI
	sessions *SessionStore
}

// NewCatalogService wires the service to its remote surface and session store.
func NewCatalogService(api CatalogAPI, sessions *SessionStore) *CatalogService {
	return &CatalogService{api: api, sessions: sessions}
}

// Products returns the catalog. Refuses to fetch when logged out.
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	if !s.sessions.IsAuthenticated() {
		return nil, ErrNotLoggedIn
	}
	return s.api.ListProducts(ctx)
}
