package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/reinvvay/airport-api/internal/domain"
)

// ResourceUseCase is the write and retrieve surface shared by every airport collection.
type ResourceUseCase[T, In any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in *In) (*T, error)
	Update(ctx context.Context, id int64, in *In, partial bool) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type CRUDUseCase[T, In any] interface {
	ResourceUseCase[T, In]
	List(ctx context.Context) ([]T, error)
}

type ResourceHandler[T, In any] struct {
	service ResourceUseCase[T, In]
	list    gin.HandlerFunc
}

func NewResourceHandler[T, In any](service CRUDUseCase[T, In]) *ResourceHandler[T, In] {
	h := &ResourceHandler[T, In]{service: service}
	h.list = func(c *gin.Context) {
		items, err := service.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
	return h
}

// Register mounts the collection with and without a trailing slash so that
// neither form is answered by a redirect.
func (h *ResourceHandler[T, In]) Register(router *gin.RouterGroup) {
	for _, root := range []string{"", "/"} {
		router.GET(root, h.list)
		router.POST(root, h.create)
	}
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.PATCH("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *ResourceHandler[T, In]) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ResourceHandler[T, In]) create(c *gin.Context) {
	in := new(In)
	if !bindJSON(c, in) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// update serves both PUT and PATCH; PATCH skips required-field checks.
func (h *ResourceHandler[T, In]) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	in := new(In)
	if !bindJSON(c, in) {
		return
	}
	partial := c.Request.Method == http.MethodPatch
	item, err := h.service.Update(c.Request.Context(), id, in, partial)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ResourceHandler[T, In]) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID treats a malformed id like a missing row.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, domain.ErrNotFound)
		return 0, false
	}
	return id, true
}
