package models

import "time"

// Follow is the "user follows author" edge behind the personalized feed.
//
// Both invariants live in the schema, not in handler code: the composite
// unique index rejects duplicate edges and the CHECK constraint rejects
// self-follows, so concurrent writers are arbitrated by the database.
// The repository layer maps the resulting driver errors onto
// ErrSelfFollow and ErrAlreadyFollowing.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follow_pair;check:chk_follow_not_self,user_id <> author_id" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
