package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"microblog/internal/db"
	dom "microblog/internal/domain"
	"microblog/internal/hash"
	"microblog/internal/repo"
)

// UserService handles account registration, credential checks and lookups.
// Each operation runs inside its own connection scope.
type UserService struct {
	pool db.Beginner
	log  *zap.Logger
}

// NewUserService returns a new UserService.
func NewUserService(pool db.Beginner, log *zap.Logger) *UserService {
	return &UserService{pool: pool, log: log}
}

// authenticate checks username/password against the stored digest. The
// existence check runs before the digest comparison, so an unknown username
// reports ErrUserNotFound rather than ErrWrongPassword.
func authenticate(ctx context.Context, users *repo.UserRepo, username, password string) error {
	digest, err := users.FindPasswordHash(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if !hash.Verify(password, digest) {
		return ErrWrongPassword
	}
	return nil
}

// Register creates a new user. The store's unique constraint on username is
// the duplicate check; two concurrent registrations race down to it.
func (s *UserService) Register(ctx context.Context, username, password, firstName, lastName, email string) (int64, error) {
	username = strings.TrimSpace(username)

	scope, err := db.Open(ctx, s.pool)
	if err != nil {
		return 0, err
	}
	defer scope.Close(ctx)

	users := repo.NewUserRepo(scope)
	id, err := users.Create(ctx, username, hash.Hash(password), firstName, lastName, email)
	if err != nil {
		if repo.IsUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	if err := scope.Commit(ctx); err != nil {
		return 0, err
	}
	s.log.Info("user created", zap.String("username", username), zap.Int64("id", id))
	return id, nil
}

// Delete removes the user after verifying their credentials. Owned posts go
// with the user (ON DELETE CASCADE).
func (s *UserService) Delete(ctx context.Context, username, password string) error {
	scope, err := db.Open(ctx, s.pool)
	if err != nil {
		return err
	}
	defer scope.Close(ctx)

	users := repo.NewUserRepo(scope)
	if err := authenticate(ctx, users, username, password); err != nil {
		return err
	}
	if err := users.Delete(ctx, username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if err := scope.Commit(ctx); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("username", username))
	return nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]dom.User, error) {
	scope, err := db.Open(ctx, s.pool)
	if err != nil {
		return nil, err
	}
	defer scope.Close(ctx)

	return repo.NewUserRepo(scope).ListAll(ctx)
}

// GetWithPosts returns the user and their posts, read within one scope.
func (s *UserService) GetWithPosts(ctx context.Context, username string) (dom.User, []dom.Post, error) {
	scope, err := db.Open(ctx, s.pool)
	if err != nil {
		return dom.User{}, nil, err
	}
	defer scope.Close(ctx)

	u, err := repo.NewUserRepo(scope).FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, nil, ErrUserNotFound
		}
		return dom.User{}, nil, err
	}
	posts, err := repo.NewPostRepo(scope).ListByAuthor(ctx, u.ID)
	if err != nil {
		return dom.User{}, nil, err
	}
	return u, posts, nil
}
