package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowAuthor handles POST /api/profiles/:username/follow. Following an
// author you already follow, or yourself, succeeds without changing anything.
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := s.followService.Follow(c.Context(), currentUserID(c), username); err != nil {
		return respondError(c, err)
	}

	following, err := s.followService.IsFollowing(c.Context(), currentUserID(c), username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// UnfollowAuthor handles DELETE /api/profiles/:username/follow
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := s.followService.Unfollow(c.Context(), currentUserID(c), username); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": false})
}
