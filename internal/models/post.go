package models

import "time"

// Post represents a single publication in Yatube.
//
// PubDate is stamped once at creation and never updated; listings sort by
// it descending with ID as the tie-break so pagination stays deterministic
// when timestamps collide.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"not null;autoCreateTime;<-:create;index:idx_posts_pub_date,sort:desc" json:"pub_date"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	GroupID  *uint     `gorm:"index" json:"group_id,omitempty"`
	Group    *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`

	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`

	UpdatedAt time.Time `json:"updated_at"`
}
