// User HTTP handlers.
//
//   - GET  /users             (list, weak ETag)
//   - POST /users             (create)
//   - GET  /users/{username}  (fetch)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/services"
	"github.com/tbourn/go-news-api/internal/validate"
)

// ListUsers godoc
// @ID          listUsers
// @Summary     List users
// @Description Returns every user ordered by username. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Users
// @Produce     json
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"  example(W/\"users:4\")
//
// @Success     200  {object}  handlers.UsersResponse
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string  "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	if n, err := h.users.Count(ctx); err == nil && notModified(c, "users", n) {
		return
	}

	users, err := h.users.List(ctx)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, UsersResponse{Users: users})
}

// GetUser godoc
// @ID          getUser
// @Summary     Get a user
// @Tags        Users
// @Produce     json
//
// @Param       username  path  string  true  "Username"  example(butter_bridge)
//
// @Success     200  {object}  handlers.UserResponse
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{username} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, UserResponse{User: u})
}

// CreateUser godoc
// @ID          createUser
// @Summary     Create a user
// @Description Creates a user. A username that is already taken is rejected with 422.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateUserRequest  true  "User payload"
//
// @Success     201  {object}  handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or extraneous fields"
// @Failure     422  {object}  handlers.ErrorResponse  "Username already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !decodeBody(c, validate.User, &req) {
		return
	}

	u, err := h.users.Create(c.Request.Context(), services.NewUser{
		Username:  req.Username,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, UserResponse{User: u})
}
