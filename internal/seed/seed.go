// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var builtinGroups = []models.Group{
	{Title: "Technology", Slug: "technology", Description: "Hardware, software and everything between"},
	{Title: "Books", Slug: "books", Description: "What we are reading"},
	{Title: "Travel", Slug: "travel", Description: "Trips, places and journeys"},
	{Title: "Food", Slug: "food", Description: "Recipes and restaurant finds"},
	{Title: "Music", Slug: "music", Description: "New releases and old favorites"},
	{Title: "Photography", Slug: "photography", Description: "Shots worth sharing"},
}

// Seed populates the database with demo authors, groups, posts, comments and
// follow edges.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	groups, err := createGroups(db)
	if err != nil {
		return fmt.Errorf("failed to create groups: %w", err)
	}
	log.Printf("created %d groups", len(groups))

	posts, err := createPosts(db, r, users, groups, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	numComments, err := createComments(db, r, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("created %d comments", numComments)

	numFollows, err := createFollows(db, r, users)
	if err != nil {
		return fmt.Errorf("failed to create follow edges: %w", err)
	}
	log.Printf("created %d follow edges", numFollows)

	return nil
}

func clearData(db *gorm.DB) error {
	for _, table := range []string{"follows", "comments", "posts", "groups", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, n int) ([]models.User, error) {
	if n < 1 {
		n = 1
	}

	// One shared hash keeps seeding fast; these are throwaway accounts.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		name := gofakeit.Person()
		users = append(users, models.User{
			Username:    fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:       fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password:    string(hash),
			DisplayName: fmt.Sprintf("%s %s", name.FirstName, name.LastName),
		})
	}
	if err := db.CreateInBatches(&users, 100).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createGroups(db *gorm.DB) ([]models.Group, error) {
	groups := make([]models.Group, len(builtinGroups))
	copy(groups, builtinGroups)
	if err := db.Create(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func createPosts(db *gorm.DB, r *rand.Rand, users []models.User, groups []models.Group, n int) ([]models.Post, error) {
	if n < 1 {
		n = 1
	}

	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[r.Intn(len(users))]
		post := models.Post{
			Text:     gofakeit.Paragraph(1, 3, 8, "\n"),
			AuthorID: author.ID,
		}

		// Roughly two thirds of posts land in a group.
		if r.Intn(3) != 0 {
			groupID := groups[r.Intn(len(groups))].ID
			post.GroupID = &groupID
		}
		// Occasional image attachment.
		if r.Intn(4) == 0 {
			post.Image = fmt.Sprintf("posts/%s.jpg", gofakeit.UUID())
		}

		// Spread publication times over the last 90 days so feeds page
		// realistically.
		daysBack := r.Intn(90)
		minsBack := r.Intn(24 * 60)
		post.PublishedAt = time.Now().UTC().
			Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(minsBack)*time.Minute)

		posts = append(posts, post)
	}
	if err := db.CreateInBatches(&posts, 100).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func createComments(db *gorm.DB, r *rand.Rand, users []models.User, posts []models.Post) (int, error) {
	comments := make([]models.Comment, 0, len(posts)*2)
	for _, post := range posts {
		for i := 0; i < r.Intn(4); i++ {
			comments = append(comments, models.Comment{
				PostID:   post.ID,
				AuthorID: users[r.Intn(len(users))].ID,
				Text:     gofakeit.Sentence(8),
			})
		}
	}
	if len(comments) == 0 {
		return 0, nil
	}
	if err := db.CreateInBatches(&comments, 100).Error; err != nil {
		return 0, err
	}
	return len(comments), nil
}

func createFollows(db *gorm.DB, r *rand.Rand, users []models.User) (int, error) {
	seen := make(map[[2]uint]bool)
	follows := make([]models.Follow, 0, len(users)*3)
	for _, user := range users {
		for i := 0; i < r.Intn(5); i++ {
			author := users[r.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			edge := [2]uint{user.ID, author.ID}
			if seen[edge] {
				continue
			}
			seen[edge] = true
			follows = append(follows, models.Follow{UserID: user.ID, AuthorID: author.ID})
		}
	}
	if len(follows) == 0 {
		return 0, nil
	}
	if err := db.CreateInBatches(&follows, 100).Error; err != nil {
		return 0, err
	}
	return len(follows), nil
}
