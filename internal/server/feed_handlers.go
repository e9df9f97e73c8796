package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetHomeFeed handles GET /api/posts. The rendered page comes from the feed
// cache when a fresh entry exists, so the body may lag post creation by up to
// the cache TTL.
func (s *Server) GetHomeFeed(c *fiber.Ctx) error {
	out, err := s.feedService.HomeFeed(c.Context(), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}

// GetGroupFeed handles GET /api/groups/:slug
func (s *Server) GetGroupFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.GroupFeed(c.Context(), c.Params("slug"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}

// GetAuthorFeed handles GET /api/profiles/:username
func (s *Server) GetAuthorFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.AuthorFeed(c.Context(), c.Params("username"), parsePage(c), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}

// GetFollowFeed handles GET /api/feed
func (s *Server) GetFollowFeed(c *fiber.Ctx) error {
	page, err := s.feedService.FollowFeed(c.Context(), currentUserID(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}
