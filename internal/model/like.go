package model

import "time"

// Like marks that a user liked a post. The (user, post) pair is unique so a
// user can like a given post at most once; the toggle relies on the index to
// stay correct under concurrent requests.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_post"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
