package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
	"github.com/dongzhentu/gallery-admin/internal/core/ports"
	"github.com/dongzhentu/gallery-admin/internal/pkg/timeutil"
)

// ImageHandler handles HTTP requests for image operations. Create and Update
// accept multipart form data; the file part is named "image".
type ImageHandler struct {
	service ports.ImageService
	times   *timeutil.Formatter
}

func NewImageHandler(service ports.ImageService, times *timeutil.Formatter) *ImageHandler {
	return &ImageHandler{service: service, times: times}
}

type imageResponse struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"image_path"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (h *ImageHandler) toResponse(image *domain.Image) imageResponse {
	return imageResponse{
		ID:          image.ID,
		CategoryID:  image.CategoryID,
		Name:        image.Name,
		Description: image.Description,
		Path:        image.Path,
		CreatedAt:   h.times.Format(image.CreatedAt),
		UpdatedAt:   h.times.Format(image.UpdatedAt),
	}
}

// List handles GET /api/images?category_id=&name=.
func (h *ImageHandler) List(c echo.Context) error {
	categoryID, err := queryID(c, "category_id")
	if err != nil {
		return err
	}

	images, err := h.service.List(c.Request().Context(), ports.ImageFilter{
		CategoryID: categoryID,
		Name:       c.QueryParam("name"),
	})
	if err != nil {
		return err
	}

	resp := make([]imageResponse, 0, len(images))
	for i := range images {
		resp = append(resp, h.toResponse(&images[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/images. The "image" file part is mandatory, as are
// the category_id and name form fields.
func (h *ImageHandler) Create(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return fmt.Errorf("%w: image file is required", domain.ErrValidation)
	}

	categoryID, err := strconv.ParseInt(c.FormValue("category_id"), 10, 64)
	if err != nil || categoryID <= 0 {
		return fmt.Errorf("%w: invalid category_id", domain.ErrValidation)
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	image, err := h.service.Create(c.Request().Context(), ports.CreateImageInput{
		CategoryID:  categoryID,
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Upload:      &ports.ImageUpload{File: src, Filename: fh.Filename},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.toResponse(image))
}

// Update handles PUT /api/images/:id. All form fields are optional; a new
// "image" file part replaces the stored file.
func (h *ImageHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var in ports.UpdateImageInput

	if raw := formField(c, "category_id"); raw != nil {
		categoryID, err := strconv.ParseInt(*raw, 10, 64)
		if err != nil || categoryID <= 0 {
			return fmt.Errorf("%w: invalid category_id", domain.ErrValidation)
		}
		in.CategoryID = &categoryID
	}
	in.Name = formField(c, "name")
	in.Description = formField(c, "description")

	fh, err := c.FormFile("image")
	switch {
	case err == nil:
		src, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open uploaded file: %w", err)
		}
		defer src.Close()
		in.Upload = &ports.ImageUpload{File: src, Filename: fh.Filename}
	case errors.Is(err, http.ErrMissingFile):
		// No replacement file, keep the stored one.
	default:
		return fmt.Errorf("%w: invalid image part", domain.ErrValidation)
	}

	image, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.toResponse(image))
}

// Delete handles DELETE /api/images/:id. The stored file is removed
// best-effort after the record.
func (h *ImageHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// formField reads a multipart form value, distinguishing an absent field from
// an explicitly empty one.
func formField(c echo.Context, name string) *string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	if vs, ok := form.Value[name]; ok && len(vs) > 0 {
		return &vs[0]
	}
	return nil
}
