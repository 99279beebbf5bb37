package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwellhq/blog-api/internal/core/domain"
	"github.com/inkwellhq/blog-api/internal/core/ports"
)

// PostCache abstracts the read cache for public post lookups (Redis). A miss
// is (nil, nil); cache errors never fail the request.
type PostCache interface {
	Get(ctx context.Context, id string) (*domain.Post, error)
	Set(ctx context.Context, post *domain.Post) error
	Invalidate(ctx context.Context, id string) error
}

// PostService implements post CRUD with ownership enforcement on mutations.
type PostService struct {
	repo   ports.PostRepository
	policy OwnershipPolicy
	cache  PostCache
	log    zerolog.Logger
}

// NewPostService returns a PostService. cache may be nil, in which case all
// reads go straight to the repository.
func NewPostService(repo ports.PostRepository, cache PostCache, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, cache: cache, log: log}
}

// Create persists a new post owned by the acting principal. No ownership
// check is needed: the owner is the creator by construction.
func (s *PostService) Create(ctx context.Context, principal domain.Principal, content string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Content:   content,
		AuthorID:  principal.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("author_id", created.AuthorID).Msg("post created")
	return created, nil
}

// List returns all posts. Publicly readable, no authentication required.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.FindAll(ctx)
}

// Get returns a single post by id, serving from the cache when possible.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("post_id", id).Msg("cache read failed, falling back to repository")
		} else if cached != nil {
			return cached, nil
		}
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, post); err != nil {
			s.log.Warn().Err(err).Str("post_id", id).Msg("cache write failed")
		}
	}
	return post, nil
}

// Update replaces the content of a post. The post is loaded first so a
// missing post reads as not-found rather than forbidden; then the ownership
// gate runs before any write. The author reference is never touched.
func (s *PostService) Update(ctx context.Context, principal domain.Principal, id, content string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeMutation(principal, post.AuthorID); err != nil {
		s.log.Debug().Str("post_id", id).Str("user_id", principal.UserID).Msg("update rejected")
		return nil, err
	}

	updated, err := s.repo.UpdateContent(ctx, id, content, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("post_id", id).Msg("post updated")
	return updated, nil
}

// Delete removes a post after the ownership gate.
func (s *PostService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.AuthorizeMutation(principal, post.AuthorID); err != nil {
		s.log.Debug().Str("post_id", id).Str("user_id", principal.UserID).Msg("delete rejected")
		return err
	}

	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrPostNotFound
	}

	s.invalidate(ctx, id)
	s.log.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

func (s *PostService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("post_id", id).Msg("cache invalidation failed")
	}
}
