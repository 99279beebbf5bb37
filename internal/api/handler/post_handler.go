package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwellhq/blog-api/internal/api/metrics"
	"github.com/inkwellhq/blog-api/internal/core/domain"
	"github.com/inkwellhq/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Create(c.Request().Context(), principal, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyContent) {
			metrics.PostMutationsTotal.WithLabelValues("create", "error").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "content is required"})
		}
		metrics.PostMutationsTotal.WithLabelValues("create", "error").Inc()
		return err
	}

	metrics.PostMutationsTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// List handles GET /posts. Posts are publicly readable.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  listPostsResponse
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, toPostResponse(p))
	}
	return c.JSON(http.StatusOK, listPostsResponse{Items: items, Total: len(items)})
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "post not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Update handles PUT /posts/:id.
//
// @Summary      Update a post's content
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "New content"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Update(c.Request().Context(), principal, c.Param("id"), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			metrics.PostMutationsTotal.WithLabelValues("update", "not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "post not found"})
		case errors.Is(err, domain.ErrForbidden):
			metrics.PostMutationsTotal.WithLabelValues("update", "forbidden").Inc()
			return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
		case errors.Is(err, domain.ErrEmptyContent):
			metrics.PostMutationsTotal.WithLabelValues("update", "error").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "content is required"})
		}
		metrics.PostMutationsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.PostMutationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			metrics.PostMutationsTotal.WithLabelValues("delete", "not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "post not found"})
		case errors.Is(err, domain.ErrForbidden):
			metrics.PostMutationsTotal.WithLabelValues("delete", "forbidden").Inc()
			return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
		}
		metrics.PostMutationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.PostMutationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}
