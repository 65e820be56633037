package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
	"github.com/tbourn/go-news-api/internal/repo"
)

type fakeUserRepo struct {
	gotAvatar *string
	gotName   string
	getErr    error
}

func (r *fakeUserRepo) ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	return []domain.User{{Username: "lurker"}}, nil
}

func (r *fakeUserRepo) GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return &domain.User{Username: username}, nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, db *gorm.DB, username, name string, avatarURL *string) (*domain.User, error) {
	r.gotName, r.gotAvatar = username, avatarURL
	return &domain.User{Username: username, Name: name, AvatarURL: avatarURL}, nil
}

func (r *fakeUserRepo) CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return 4, nil
}

func TestUserService_GetNotFound(t *testing.T) {
	s := NewUserService(nil, &fakeUserRepo{getErr: repo.ErrNotFound})
	if _, err := s.Get(context.Background(), "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_CreateBlankAvatarIsNil(t *testing.T) {
	fr := &fakeUserRepo{}
	s := NewUserService(nil, fr)

	blank := "  "
	if _, err := s.Create(context.Background(), NewUser{Username: " newbie ", Name: "N", AvatarURL: &blank}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fr.gotAvatar != nil {
		t.Fatalf("blank avatar should be stored as nil, got %q", *fr.gotAvatar)
	}
	if fr.gotName != "newbie" {
		t.Fatalf("username should be trimmed, got %q", fr.gotName)
	}
}

func TestUserService_CreateKeepsAvatar(t *testing.T) {
	fr := &fakeUserRepo{}
	s := NewUserService(nil, fr)

	url := "https://example.com/a.png"
	u, err := s.Create(context.Background(), NewUser{Username: "a", AvatarURL: &url})
	if err != nil || u.AvatarURL == nil || *u.AvatarURL != url {
		t.Fatalf("Create: %+v %v", u, err)
	}
}

func TestUserService_List(t *testing.T) {
	s := NewUserService(nil, &fakeUserRepo{})
	users, err := s.List(context.Background())
	if err != nil || len(users) != 1 {
		t.Fatalf("List: %v %v", users, err)
	}
	if n, err := s.Count(context.Background()); err != nil || n != 4 {
		t.Fatalf("Count: %d %v", n, err)
	}
}
