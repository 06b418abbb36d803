package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"microblog/internal/db"
	dom "microblog/internal/domain"
	"microblog/internal/repo"
)

// PostService handles post mutations and reads. Mutations require the
// caller's credentials; update and delete additionally require ownership.
type PostService struct {
	pool db.Beginner
	log  *zap.Logger
}

// NewPostService returns a new PostService.
func NewPostService(pool db.Beginner, log *zap.Logger) *PostService {
	return &PostService{pool: pool, log: log}
}

// Create authenticates the caller and inserts a post authored by them.
func (s *PostService) Create(ctx context.Context, username, password, title, content string) (int64, error) {
	scope, err := db.Open(ctx, s.pool)
	if err != nil {
		return 0, err
	}
	defer scope.Close(ctx)

	users := repo.NewUserRepo(scope)
	if err := authenticate(ctx, users, username, password); err != nil {
		return 0, err
	}
	authorID, err := users.FindIDByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	id, err := repo.NewPostRepo(scope).Create(ctx, title, content, authorID)
	if err != nil {
		return 0, err
	}
	if err := scope.Commit(ctx); err != nil {
		return 0, err
	}
	s.log.Info("post created", zap.Int64("id", id), zap.String("author", username))
	return id, nil
}

// checkOwnership resolves the caller's id and the post's author id and
// compares them. A mismatch fails before the password digest is checked;
// the digest check still has to pass afterwards.
func checkOwnership(ctx context.Context, users *repo.UserRepo, posts *repo.PostRepo, id int64, username, password string) error {
	callerID, err := users.FindIDByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	authorID, err := posts.FindAuthorID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPostNotFound
		}
		return err
	}
	if callerID != authorID {
		return ErrForbidden
	}
	return authenticate(ctx, users, username, password)
}

// Update replaces the post's title and content. Only the author may update,
// and both fields are required.
func (s *PostService) Update(ctx context.Context, id int64, username, password, title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return ErrInvalidInput
	}

	scope, err := db.Open(ctx, s.pool)
	if err != nil {
		return err
	}
	defer scope.Close(ctx)

	users := repo.NewUserRepo(scope)
	posts := repo.NewPostRepo(scope)
	if err := checkOwnership(ctx, users, posts, id, username, password); err != nil {
		return err
	}
	if err := posts.Update(ctx, id, title, content); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPostNotFound
		}
		return err
	}
	if err := scope.Commit(ctx); err != nil {
		return err
	}
	s.log.Info("post updated", zap.Int64("id", id), zap.String("author", username))
	return nil
}

// Delete removes the post. Only the author may delete.
func (s *PostService) Delete(ctx context.Context, id int64, username, password string) error {
	scope, err := db.Open(ctx, s.pool)
	if err != nil {
		return err
	}
	defer scope.Close(ctx)

	users := repo.NewUserRepo(scope)
	posts := repo.NewPostRepo(scope)
	if err := checkOwnership(ctx, users, posts, id, username, password); err != nil {
		return err
	}
	if err := posts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPostNotFound
		}
		return err
	}
	if err := scope.Commit(ctx); err != nil {
		return err
	}
	s.log.Info("post deleted", zap.Int64("id", id), zap.String("author", username))
	return nil
}

// GetWithAuthor returns the post and its author, read within one scope.
func (s *PostService) GetWithAuthor(ctx context.Context, id int64) (dom.Post, dom.User, error) {
	scope, err := db.Open(ctx, s.pool)
	if err != nil {
		return dom.Post{}, dom.User{}, err
	}
	defer scope.Close(ctx)

	p, err := repo.NewPostRepo(scope).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Post{}, dom.User{}, ErrPostNotFound
		}
		return dom.Post{}, dom.User{}, err
	}
	author, err := repo.NewUserRepo(scope).FindByID(ctx, p.AuthorID)
	if err != nil {
		return dom.Post{}, dom.User{}, err
	}
	return p, author, nil
}
