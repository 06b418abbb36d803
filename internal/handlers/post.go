package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"microblog/internal/dto"
	"microblog/internal/service"
)

// PostHandler handles post mutations.
type PostHandler struct {
	svc *service.PostService
}

// NewPostHandler returns a new PostHandler.
func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        username  formData  string  true  "Author username"
// @Param        password  formData  string  true  "Author password"
// @Param        title     formData  string  true  "Title"
// @Param        content   formData  string  true  "Content"
// @Success      200  {object}  dto.CreatePostResponse
// @Failure      400  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /create/post [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.svc.Create(c.Request.Context(), req.Username, req.Password, req.Title, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CreatePostResponse{
		Response: envelope(http.StatusOK, "post created"),
		ID:       id,
	})
}

// Update godoc
// @Summary      Update a post (author only)
// @Tags         posts
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        id        path      int     true  "Post ID"
// @Param        username  formData  string  true  "Author username"
// @Param        password  formData  string  true  "Author password"
// @Param        title     formData  string  true  "New title"
// @Param        content   formData  string  true  "New content"
// @Success      200  {object}  dto.UpdatePostResponse
// @Failure      400  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /update/post/{id} [post]
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req.Username, req.Password, req.Title, req.Content); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UpdatePostResponse{
		Response: envelope(http.StatusOK, "post updated"),
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
	})
}

// Delete godoc
// @Summary      Delete a post (author only)
// @Tags         posts
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        id        path      int     true  "Post ID"
// @Param        username  formData  string  true  "Author username"
// @Param        password  formData  string  true  "Author password"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /delete/post/{id} [post]
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.DeletePostRequest
	if err := c.ShouldBind(&req); err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, req.Username, req.Password); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope(http.StatusOK, "post deleted"))
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		failure(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
