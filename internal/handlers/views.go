package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"microblog/internal/service"
)

// ViewHandler renders the HTML pages: user list, a user with their posts,
// and a post with its author.
type ViewHandler struct {
	userSvc *service.UserService
	postSvc *service.PostService
}

// NewViewHandler returns a new ViewHandler.
func NewViewHandler(userSvc *service.UserService, postSvc *service.PostService) *ViewHandler {
	return &ViewHandler{userSvc: userSvc, postSvc: postSvc}
}

// Home renders the create-post form.
func (v *ViewHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "create_post.html", nil)
}

// Users godoc
// @Summary      HTML list of all users
// @Tags         views
// @Produce      html
// @Success      200  {string}  string  "HTML"
// @Router       /view/users [get]
func (v *ViewHandler) Users(c *gin.Context) {
	users, err := v.userSvc.List(c.Request.Context())
	if err != nil {
		v.errorPage(c, err)
		return
	}
	c.HTML(http.StatusOK, "users.html", gin.H{"Users": users})
}

// User godoc
// @Summary      HTML page for one user and their posts
// @Tags         views
// @Produce      html
// @Param        username  path  string  true  "Username"
// @Success      200  {string}  string  "HTML"
// @Failure      404  {string}  string  "HTML"
// @Router       /view/user/{username} [get]
func (v *ViewHandler) User(c *gin.Context) {
	username := c.Param("username")
	u, posts, err := v.userSvc.GetWithPosts(c.Request.Context(), username)
	if err != nil {
		v.errorPage(c, err)
		return
	}
	c.HTML(http.StatusOK, "user.html", gin.H{"User": u, "Posts": posts})
}

// Post godoc
// @Summary      HTML page for one post and its author
// @Tags         views
// @Produce      html
// @Param        id  path  int  true  "Post ID"
// @Success      200  {string}  string  "HTML"
// @Failure      404  {string}  string  "HTML"
// @Router       /view/post/{id} [get]
func (v *ViewHandler) Post(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Status":  http.StatusBadRequest,
			"Message": "invalid id",
		})
		return
	}
	p, author, err := v.postSvc.GetWithAuthor(c.Request.Context(), id)
	if err != nil {
		v.errorPage(c, err)
		return
	}
	c.HTML(http.StatusOK, "post.html", gin.H{"Post": p, "Author": author})
}

func (v *ViewHandler) errorPage(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrPostNotFound) {
		status = http.StatusNotFound
		message = err.Error()
	}
	c.HTML(status, "error.html", gin.H{"Status": status, "Message": message})
}
