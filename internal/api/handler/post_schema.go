package handler

import (
	"time"

	"github.com/inkwellhq/blog-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createPostRequest struct {
	Content string `json:"content" validate:"required"`
}

type updatePostRequest struct {
	Content string `json:"content" validate:"required"`
}

// postResponse is the transport view of a post. Intentionally separate from
// the domain type so the JSON contract is not coupled to internal changes.
type postResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listPostsResponse struct {
	Items []postResponse `json:"items"`
	Total int            `json:"total"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
