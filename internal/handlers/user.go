package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog/internal/dto"
	"microblog/internal/service"
)

// UserHandler handles user creation and deletion.
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create godoc
// @Summary      Create a user
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        username    formData  string  true   "Username (unique)"
// @Param        password    formData  string  true   "Password"
// @Param        first_name  formData  string  false  "First name"
// @Param        last_name   formData  string  false  "Last name"
// @Param        email       formData  string  false  "Email"
// @Success      200  {object}  dto.CreateUserResponse
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /create/user [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.svc.Register(c.Request.Context(), req.Username, req.Password, req.FirstName, req.LastName, req.Email)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CreateUserResponse{
		Response: envelope(http.StatusOK, "user created"),
		ID:       id,
		Username: req.Username,
	})
}

// Delete godoc
// @Summary      Delete a user and their posts
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /delete/user [post]
func (h *UserHandler) Delete(c *gin.Context) {
	var req dto.DeleteUserRequest
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Delete(c.Request.Context(), req.Username, req.Password); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope(http.StatusOK, "user deleted"))
}
