package domain

import "time"

// Post is a blog entry owned by the user whose id equals AuthorID.
// CreatedOn is assigned by the store on insert.
type Post struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	CreatedOn time.Time
}
