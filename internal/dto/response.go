package dto

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"` // "success" or "failure"
	Message    string `json:"message"`
}

// CreateUserResponse is returned by POST /create/user.
type CreateUserResponse struct {
	Response
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CreatePostResponse is returned by POST /create/post.
type CreatePostResponse struct {
	Response
	ID int64 `json:"id"`
}

// UpdatePostResponse echoes the updated fields.
type UpdatePostResponse struct {
	Response
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
