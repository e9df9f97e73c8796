// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an author identity. Authentication owns credentials;
// everything else in the system only references users by ID or username.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email       string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	DisplayName string    `gorm:"size:150" json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}
