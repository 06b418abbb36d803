package dto

// CreatePostRequest is the body for POST /create/post.
type CreatePostRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Title    string `form:"title" json:"title" binding:"required"`
	Content  string `form:"content" json:"content" binding:"required"`
}

// UpdatePostRequest is the body for POST /update/post/{id}. Title and content
// are validated in the service so a missing field maps to the envelope
// instead of a binding error.
type UpdatePostRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Title    string `form:"title" json:"title"`
	Content  string `form:"content" json:"content"`
}

// DeletePostRequest is the body for POST /delete/post/{id}.
type DeletePostRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}
