package taskman

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

var taskMessages = map[int]string{
	http.StatusBadRequest:   "Invalid input. Please check the task details.",
	http.StatusUnauthorized: "Unauthorized. Please log in again.",
	http.StatusForbidden:    "Access denied. You cannot modify this task or category.",
	http.StatusNotFound:     "Task or category not found.",
}

// TaskService calls the task resource endpoints.
type TaskService struct {
	client *Client
}

func (s *TaskService) Create(ctx context.Context, request TaskRequest) (*Task, error) {
	var task Task
	if err := s.client.do(ctx, http.MethodPost, "/api/tasks", nil, request, &task, taskMessages); err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the caller's tasks, optionally narrowed by status.
func (s *TaskService) List(ctx context.Context, status Status) ([]Task, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	var tasks []Task
	if err := s.client.do(ctx, http.MethodGet, "/api/tasks", query, nil, &tasks, taskMessages); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (*Task, error) {
	var task Task
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%v", id), nil, nil, &task, taskMessages); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Update(ctx context.Context, id int64, request TaskRequest) (*Task, error) {
	var task Task
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%v", id), nil, request, &task, taskMessages); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%v", id), nil, nil, nil, taskMessages)
}

// Filter narrows tasks by any combination of status, category and
// creation cutoff (RFC 3339 date).
func (s *TaskService) Filter(ctx context.Context, status Status, categoryID int64, createdBefore string) ([]Task, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if categoryID != 0 {
		query.Set("categoryId", strconv.FormatInt(categoryID, 10))
	}
	if createdBefore != "" {
		query.Set("createdBefore", createdBefore)
	}
	var tasks []Task
	if err := s.client.do(ctx, http.MethodGet, "/api/tasks/filter", query, nil, &tasks, taskMessages); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Paged returns one page of tasks; sort follows the service convention,
// e.g. "id,asc".
func (s *TaskService) Paged(ctx context.Context, page, size int, sort string) (*Page[Task], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if sort != "" {
		query.Set("sort", sort)
	}
	var result Page[Task]
	if err := s.client.do(ctx, http.MethodGet, "/api/tasks/paged", query, nil, &result, taskMessages); err != nil {
		return nil, err
	}
	return &result, nil
}
