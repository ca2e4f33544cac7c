package handler

import (
	"context"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (*ports.SessionUser, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.SessionUser, error) {
	return s.loginFn(ctx, username, password)
}

type stubRoleService struct {
	listFn   func(ctx context.Context) ([]domain.Role, error)
	getFn    func(ctx context.Context, id int64) (*domain.Role, error)
	createFn func(ctx context.Context, in ports.CreateRoleInput) (*domain.Role, error)
	updateFn func(ctx context.Context, id int64, in ports.UpdateRoleInput) (*domain.Role, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubRoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.listFn(ctx)
}

func (s *stubRoleService) Get(ctx context.Context, id int64) (*domain.Role, error) {
	return s.getFn(ctx, id)
}

func (s *stubRoleService) Create(ctx context.Context, in ports.CreateRoleInput) (*domain.Role, error) {
	return s.createFn(ctx, in)
}

func (s *stubRoleService) Update(ctx context.Context, id int64, in ports.UpdateRoleInput) (*domain.Role, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubRoleService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubUserService struct {
	listFn   func(ctx context.Context, filter ports.UserFilter) ([]domain.User, error)
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id int64) error
	resetFn  func(ctx context.Context, id int64) error
}

func (s *stubUserService) List(ctx context.Context, filter ports.UserFilter) ([]domain.User, error) {
	return s.listFn(ctx, filter)
}

func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) ResetPassword(ctx context.Context, id int64) error {
	return s.resetFn(ctx, id)
}

type stubCategoryService struct {
	listFn   func(ctx context.Context) ([]domain.Category, error)
	getFn    func(ctx context.Context, id int64) (*domain.Category, error)
	createFn func(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error)
	updateFn func(ctx context.Context, id int64, in ports.UpdateCategoryInput) (*domain.Category, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubCategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.listFn(ctx)
}

func (s *stubCategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.getFn(ctx, id)
}

func (s *stubCategoryService) Create(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error) {
	return s.createFn(ctx, in)
}

func (s *stubCategoryService) Update(ctx context.Context, id int64, in ports.UpdateCategoryInput) (*domain.Category, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubCategoryService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubImageService struct {
	listFn   func(ctx context.Context, filter ports.ImageFilter) ([]domain.Image, error)
	getFn    func(ctx context.Context, id int64) (*domain.Image, error)
	createFn func(ctx context.Context, in ports.CreateImageInput) (*domain.Image, error)
	updateFn func(ctx context.Context, id int64, in ports.UpdateImageInput) (*domain.Image, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubImageService) List(ctx context.Context, filter ports.ImageFilter) ([]domain.Image, error) {
	return s.listFn(ctx, filter)
}

func (s *stubImageService) Get(ctx context.Context, id int64) (*domain.Image, error) {
	return s.getFn(ctx, id)
}

func (s *stubImageService) Create(ctx context.Context, in ports.CreateImageInput) (*domain.Image, error) {
	return s.createFn(ctx, in)
}

func (s *stubImageService) Update(ctx context.Context, id int64, in ports.UpdateImageInput) (*domain.Image, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubImageService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}
