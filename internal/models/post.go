package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a published entry. PublishedAt is set once at creation and never
// changes, even across edits; the canonical ordering of every post listing
// is published_at descending with id descending as the tie-break.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	PublishedAt time.Time `gorm:"not null;index:idx_posts_published_at,sort:desc" json:"published_at"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	GroupID     *uint     `gorm:"index" json:"group_id,omitempty"`
	Group       *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	// Image is an opaque reference into the media store; this core never
	// interprets it.
	Image     string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate stamps the publish time once. Updates never touch it.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now().UTC()
	}
	return nil
}
