package service

import (
	"context"

	"quill/internal/repository"
)

// FollowService manages the directed follow graph, addressed by username.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow makes userID follow the named author. Following an author twice or
// following yourself succeeds without creating anything.
func (s *FollowService) Follow(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.followRepo.Follow(ctx, userID, author.ID)
}

// Unfollow removes the edge if it exists. Unfollowing someone you never
// followed succeeds.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.followRepo.Unfollow(ctx, userID, author.ID)
}

// IsFollowing reports whether userID follows the named author.
func (s *FollowService) IsFollowing(ctx context.Context, userID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.followRepo.IsFollowing(ctx, userID, author.ID)
}
