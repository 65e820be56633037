package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/services"
)

func userRouter(svc stubUserSvc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(stubTopicSvc{}, svc, stubArticleSvc{}, stubCommentSvc{})
	r := gin.New()
	r.GET("/users", h.ListUsers)
	r.POST("/users", h.CreateUser)
	r.GET("/users/:username", h.GetUser)
	return r
}

func TestListUsers_ETag(t *testing.T) {
	r := userRouter(stubUserSvc{})
	w := serve(r, http.MethodGet, "/users", "")
	if w.Code != http.StatusOK || w.Header().Get("ETag") != `W/"users:4"` {
		t.Fatalf("unexpected: %d %q", w.Code, w.Header().Get("ETag"))
	}
	var out UsersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || out.Users == nil {
		t.Fatalf("users must be an array: %s", w.Body.String())
	}
}

func TestGetUser_FoundAndMissing(t *testing.T) {
	r := userRouter(stubUserSvc{
		get: func(_ context.Context, username string) (*domain.User, error) {
			if username == "lurker" {
				return &domain.User{Username: "lurker", Name: "do_nothing"}, nil
			}
			return nil, services.ErrUserNotFound
		},
	})

	w := serve(r, http.MethodGet, "/users/lurker", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	var out UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || out.User.Name != "do_nothing" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = serve(r, http.MethodGet, "/users/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
	if er := errorBody(t, w); er.Code != ErrCodeNotFound || er.Msg != "Resource Not Found" {
		t.Fatalf("unexpected error body: %+v", er)
	}
}

func TestCreateUser(t *testing.T) {
	var got services.NewUser
	r := userRouter(stubUserSvc{
		create: func(_ context.Context, in services.NewUser) (*domain.User, error) {
			got = in
			if in.Username == "taken" {
				return nil, &apperr.ConstraintViolation{Code: apperr.CodeUniqueViolation, Constraint: apperr.ConstraintUsersPK}
			}
			return &domain.User{Username: in.Username, Name: in.Name, AvatarURL: in.AvatarURL}, nil
		},
	})

	w := serve(r, http.MethodPost, "/users", `{"username":"tickle122","name":"Tom","avatar_url":null}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d (%s)", w.Code, w.Body.String())
	}
	if got.Username != "tickle122" || got.AvatarURL != nil {
		t.Fatalf("unexpected service input: %+v", got)
	}

	w = serve(r, http.MethodPost, "/users", `{"username":"tickle122","name":"Tom","avatar_url":"https://x/y.png"}`)
	if w.Code != http.StatusCreated || got.AvatarURL == nil || *got.AvatarURL != "https://x/y.png" {
		t.Fatalf("avatar not passed through: %d %+v", w.Code, got)
	}

	if w := serve(r, http.MethodPost, "/users", `{"username":"x"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: want 400, got %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/users", `{"username":"taken","name":"T"}`); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("taken username: want 422, got %d", w.Code)
	}
}
