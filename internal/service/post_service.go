package service

import (
	"context"
	"errors"
	"strings"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"
)

// CreatePostInput carries the fields of a new post. GroupSlug is optional;
// an empty slug publishes the post outside any group.
type CreatePostInput struct {
	AuthorID  uint
	Text      string
	GroupSlug string
	Image     string
}

// UpdatePostInput carries a full replacement of a post's editable fields.
// PublishedAt and the author are never editable.
type UpdatePostInput struct {
	UserID    uint
	PostID    uint
	Text      string
	GroupSlug string
	Image     string
}

// PostService creates and edits posts. Creation invalidates the feed cache;
// edits do not, because an edited post keeps its position in the ordering and
// the staleness window already covers content changes.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	feedCache *cache.FeedCache
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, feedCache *cache.FeedCache) *PostService {
	return &PostService{postRepo: postRepo, groupRepo: groupRepo, feedCache: feedCache}
}

// resolveGroup maps a slug to a group ID. An unknown slug is a validation
// error, the same way a form would reject an unknown choice.
func (s *PostService) resolveGroup(ctx context.Context, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return nil, models.NewValidationError("Unknown group: " + slug)
		}
		return nil, err
	}
	return &group.ID, nil
}

// CreatePost validates and stores a new post, then invalidates every cached
// feed page so the post is visible on the next read.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}

	groupID, err := s.resolveGroup(ctx, input.GroupSlug)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     text,
		AuthorID: input.AuthorID,
		GroupID:  groupID,
		Image:    input.Image,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.feedCache.InvalidateAll(ctx)

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns one post with its author and group loaded.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost replaces the editable fields of a post. Only the author may
// edit; anyone else gets a Forbidden error. The publication timestamp is
// left untouched, so the post keeps its feed position.
func (s *PostService) UpdatePost(ctx context.Context, input UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != input.UserID {
		return nil, models.NewForbiddenError("Only the author can edit this post")
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}

	groupID, err := s.resolveGroup(ctx, input.GroupSlug)
	if err != nil {
		return nil, err
	}

	post.Text = text
	post.GroupID = groupID
	post.Image = input.Image
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}
