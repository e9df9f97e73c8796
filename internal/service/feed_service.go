// Package service contains the business logic between HTTP handlers and repositories.
package service

import (
	"context"
	"encoding/json"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/pagination"
	"quill/internal/repository"
)

// PostPage is one page of the canonical post ordering.
type PostPage = pagination.Page[*models.Post]

// GroupFeed is the group detail plus one page of its posts.
type GroupFeed struct {
	Group *models.Group `json:"group"`
	Page  PostPage      `json:"page"`
}

// AuthorFeed is the author profile plus one page of their posts. Following
// reflects whether the current viewer follows this author; it is always
// false for anonymous viewers.
type AuthorFeed struct {
	Author    *models.User `json:"author"`
	Page      PostPage     `json:"page"`
	Following bool         `json:"following"`
}

// FeedService builds the canonical post listings. The home feed is the only
// listing that goes through the feed cache; the others are computed per
// request.
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	feedCache  *cache.FeedCache
	pageSize   int
}

// NewFeedService returns a FeedService with the given page size. feedCache
// may be nil, which disables home-feed caching.
func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	feedCache *cache.FeedCache,
	pageSize int,
) *FeedService {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		feedCache:  feedCache,
		pageSize:   pageSize,
	}
}

// pageOf counts the collection, clamps the requested page and fetches the
// matching slice from the store.
func (s *FeedService) pageOf(count int64, requested int, fetch func(limit, offset int) ([]*models.Post, error)) (PostPage, error) {
	totalPages := pagination.TotalPages(int(count), s.pageSize)
	number := pagination.Clamp(requested, totalPages)

	posts, err := fetch(s.pageSize, pagination.Offset(number, s.pageSize))
	if err != nil {
		return PostPage{}, models.NewInternalError(err)
	}
	return pagination.New(posts, int(count), s.pageSize, number), nil
}

// HomeFeed returns the rendered home-feed page, served from the feed cache
// when a fresh entry exists. The cache key is the requested page number, as
// supplied by the caller; viewer identity is deliberately not part of the key.
func (s *FeedService) HomeFeed(ctx context.Context, requested int) ([]byte, error) {
	if requested < 1 {
		requested = 1
	}
	return s.feedCache.GetOrCompute(ctx, requested, func() ([]byte, error) {
		count, err := s.postRepo.Count(ctx)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		page, err := s.pageOf(count, requested, func(limit, offset int) ([]*models.Post, error) {
			return s.postRepo.List(ctx, limit, offset)
		})
		if err != nil {
			return nil, err
		}
		return json.Marshal(page)
	})
}

// GroupFeed returns the group and one page of its posts. An unknown slug is
// a NotFound error.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, requested int) (*GroupFeed, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	page, err := s.pageOf(count, requested, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.ListByGroup(ctx, group.ID, limit, offset)
	})
	if err != nil {
		return nil, err
	}

	return &GroupFeed{Group: group, Page: page}, nil
}

// AuthorFeed returns the author profile and one page of their posts. An
// unknown username is a NotFound error. viewerID is zero for anonymous
// viewers.
func (s *FeedService) AuthorFeed(ctx context.Context, username string, requested int, viewerID uint) (*AuthorFeed, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	page, err := s.pageOf(count, requested, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.ListByAuthor(ctx, author.ID, limit, offset)
	})
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 {
		following, err = s.followRepo.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &AuthorFeed{Author: author, Page: page, Following: following}, nil
}

// FollowFeed returns one page of the merged posts of every author the user
// follows. Callers must have authenticated the user already.
func (s *FeedService) FollowFeed(ctx context.Context, userID uint, requested int) (PostPage, error) {
	count, err := s.postRepo.CountFeed(ctx, userID)
	if err != nil {
		return PostPage{}, models.NewInternalError(err)
	}
	return s.pageOf(count, requested, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.ListFeed(ctx, userID, limit, offset)
	})
}
