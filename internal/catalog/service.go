package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) ListProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.repo.ListProductsByCategory(ctx, category)
}

// --------------------------------------------------
// Upload product image (ADMIN)
// --------------------------------------------------
func (s *Service) UploadProductImage(
	ctx context.Context,
	productID string,
	file multipart.File,
	filename string,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"products/%s/%s%s",
		productID,
		uuid.New().String(),
		ext,
	)

	imageURL, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateProductImage(ctx, productID, imageURL); err != nil {
		return "", err
	}

	return imageURL, nil
}
