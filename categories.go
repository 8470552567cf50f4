package taskman

import (
	"context"
	"fmt"
	"net/http"
)

var categoryMessages = map[int]string{
	http.StatusBadRequest:   "Invalid input. Please check the category details.",
	http.StatusUnauthorized: "Unauthorized. Please log in again.",
	http.StatusForbidden:    "Access denied.",
	http.StatusNotFound:     "Category not found.",
	http.StatusConflict:     "Category name already exists.",
}

// CategoryService calls the category resource endpoints.
type CategoryService struct {
	client *Client
}

func (s *CategoryService) Create(ctx context.Context, request CategoryRequest) (*Category, error) {
	var category Category
	if err := s.client.do(ctx, http.MethodPost, "/api/category", nil, request, &category, categoryMessages); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.client.do(ctx, http.MethodGet, "/api/category", nil, nil, &categories, categoryMessages); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*Category, error) {
	var category Category
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/category/%v", id), nil, nil, &category, categoryMessages); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, request CategoryRequest) (*Category, error) {
	var category Category
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/category/%v", id), nil, request, &category, categoryMessages); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/category/%v", id), nil, nil, nil, categoryMessages)
}
