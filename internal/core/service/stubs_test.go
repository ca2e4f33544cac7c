package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubRoleRepo struct {
	roles     map[int64]*domain.Role
	nextID    int64
	userCount map[int64]int64
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[int64]*domain.Role), userCount: make(map[int64]int64)}
}

func (r *stubRoleRepo) List(context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubRoleRepo) GetByID(_ context.Context, id int64) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) GetByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			clone := *role
			return &clone, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return nil, domain.ErrRoleExists
		}
	}
	r.nextID++
	clone := *role
	clone.ID = r.nextID
	r.roles[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) error {
	if _, ok := r.roles[role.ID]; !ok {
		return domain.ErrRoleNotFound
	}
	clone := *role
	r.roles[role.ID] = &clone
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, id)
	return nil
}

func (r *stubRoleRepo) CountUsers(_ context.Context, roleID int64) (int64, error) {
	return r.userCount[roleID], nil
}

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) List(_ context.Context, filter ports.UserFilter) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.RoleID != nil && u.RoleID != *filter.RoleID {
			continue
		}
		if filter.Username != "" && !strings.Contains(strings.ToLower(u.Username), strings.ToLower(filter.Username)) {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	r.users[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, roleID int64) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.RoleID == roleID {
			n++
		}
	}
	return n, nil
}

type stubCategoryRepo struct {
	categories map[int64]*domain.Category
	nextID     int64
	imageCount map[int64]int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[int64]*domain.Category), imageCount: make(map[int64]int64)}
}

func (r *stubCategoryRepo) List(context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCategoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	for _, existing := range r.categories {
		if existing.Name == category.Name {
			return nil, domain.ErrCategoryExists
		}
	}
	r.nextID++
	clone := *category
	clone.ID = r.nextID
	r.categories[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) CountImages(_ context.Context, categoryID int64) (int64, error) {
	return r.imageCount[categoryID], nil
}

type stubImageRepo struct {
	images  map[int64]*domain.Image
	nextID  int64
	failOps bool
}

func newStubImageRepo() *stubImageRepo {
	return &stubImageRepo{images: make(map[int64]*domain.Image)}
}

func (r *stubImageRepo) List(_ context.Context, filter ports.ImageFilter) ([]domain.Image, error) {
	out := make([]domain.Image, 0, len(r.images))
	for _, img := range r.images {
		if filter.CategoryID != nil && img.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(img.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, *img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubImageRepo) GetByID(_ context.Context, id int64) (*domain.Image, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	clone := *img
	return &clone, nil
}

func (r *stubImageRepo) Create(_ context.Context, image *domain.Image) (*domain.Image, error) {
	if r.failOps {
		return nil, fmt.Errorf("stub: insert failed")
	}
	r.nextID++
	clone := *image
	clone.ID = r.nextID
	r.images[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubImageRepo) Update(_ context.Context, image *domain.Image) error {
	if r.failOps {
		return fmt.Errorf("stub: update failed")
	}
	if _, ok := r.images[image.ID]; !ok {
		return domain.ErrImageNotFound
	}
	clone := *image
	r.images[image.ID] = &clone
	return nil
}

func (r *stubImageRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.images[id]; !ok {
		return domain.ErrImageNotFound
	}
	delete(r.images, id)
	return nil
}

// stubAssetStore records Store/Remove calls and can be told to fail either.
type stubAssetStore struct {
	stored     []string
	removed    []string
	failStore  bool
	failRemove bool
}

func (s *stubAssetStore) Store(src io.Reader, originalName string) (string, error) {
	if s.failStore {
		return "", fmt.Errorf("stub: store failed")
	}
	_, _ = io.Copy(io.Discard, src)
	path := fmt.Sprintf("/uploads/stub-%d-%s", len(s.stored), originalName)
	s.stored = append(s.stored, path)
	return path, nil
}

func (s *stubAssetStore) Remove(relativePath string) error {
	if s.failRemove {
		return fmt.Errorf("stub: remove failed")
	}
	s.removed = append(s.removed, relativePath)
	return nil
}
