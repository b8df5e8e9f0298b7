package review

import "time"

// Review is an append-only, user-attributed product review. The author
// display name is snapshotted at creation so later profile edits do not
// rewrite history.
type Review struct {
	ID        string    `json:"reviewId"`
	ProductID int       `json:"productId"`
	UserID    int       `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
