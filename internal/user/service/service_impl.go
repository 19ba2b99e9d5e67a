package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/vottam/vottam/internal/user/domain"
	"github.com/vottam/vottam/internal/user/password"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("user.service"),
		repo: p.Repo,
	}
}

func (s *Service) Login(ctx context.Context, username, pass string) (*domain.Response, error) {
	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	u, err := s.repo.FindByUsername(ctx, s.db, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !password.Verify(pass, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	resp := toResponse(u)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	users, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Response, 0, len(users))
	for i := range users {
		out = append(out, toResponse(&users[i]))
	}
	return out, nil
}

func (s *Service) Preferences(ctx context.Context, id int64) (*domain.Preferences, error) {
	if id == 0 {
		return nil, nil
	}
	u, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	prefs := parsePreferences(u)
	return &prefs, nil
}

func toResponse(u *domain.User) domain.Response {
	return domain.Response{
		ID:          strconv.FormatInt(u.ID, 10),
		Username:    u.Username,
		Preferences: parsePreferences(u),
	}
}

func parsePreferences(u *domain.User) domain.Preferences {
	prefs := domain.Preferences{}
	if u.Preferences == nil {
		return prefs
	}
	if diet, ok := u.Preferences["diet"].(string); ok {
		prefs.Diet = diet
	}
	if health, ok := u.Preferences["health"].(string); ok {
		prefs.Health = health
	}
	return prefs
}
