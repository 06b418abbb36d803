package dto

// CreateUserRequest is the body for GET/POST /create/user. Form-encoded and
// JSON bodies both bind.
type CreateUserRequest struct {
	Username  string `form:"username" json:"username" binding:"required,max=120"`
	Password  string `form:"password" json:"password" binding:"required"`
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Email     string `form:"email" json:"email"`
}

// DeleteUserRequest is the body for POST /delete/user.
type DeleteUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}
