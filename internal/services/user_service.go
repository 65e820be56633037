// Package services – UserService
package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
)

// UserRepo defines the repository contract required by UserService.
type UserRepo interface {
	ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error)
	GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error)
	CreateUser(ctx context.Context, db *gorm.DB, username, name string, avatarURL *string) (*domain.User, error)
	CountUsers(ctx context.Context, db *gorm.DB) (int64, error)
}

// NewUser is the payload for UserService.Create.
type NewUser struct {
	Username  string
	Name      string
	AvatarURL *string
}

// UserService provides user operations.
type UserService struct {
	DB   *gorm.DB
	Repo UserRepo
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{DB: db, Repo: r}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "List")
	defer span.End()
	return s.Repo.ListUsers(ctx, s.DB)
}

// Count returns the number of users, which versions the insert-only listing.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.Repo.CountUsers(ctx, s.DB)
}

// Get returns the user or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "Get")
	span.SetAttributes(attribute.String("user.username", username))
	defer span.End()

	u, err := s.Repo.GetUser(ctx, s.DB, username)
	return u, notFound(err, ErrUserNotFound)
}

// Create inserts a user. A blank avatar is stored as null; a taken username
// is a users_pkey violation.
func (s *UserService) Create(ctx context.Context, in NewUser) (*domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "Create")
	span.SetAttributes(attribute.String("user.username", in.Username))
	defer span.End()

	avatar := in.AvatarURL
	if avatar != nil && strings.TrimSpace(*avatar) == "" {
		avatar = nil
	}
	return s.Repo.CreateUser(ctx, s.DB, strings.TrimSpace(in.Username), in.Name, avatar)
}
