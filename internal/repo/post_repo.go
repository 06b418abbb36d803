package repo

import (
	"context"

	dom "microblog/internal/domain"

	"microblog/internal/db"
)

type PostRepo struct {
	q db.Querier
}

func NewPostRepo(q db.Querier) *PostRepo {
	return &PostRepo{q: q}
}

// Create inserts a post; created_on is assigned by the store.
func (r *PostRepo) Create(ctx context.Context, title, content string, authorID int64) (int64, error) {
	query := `
		INSERT INTO posts (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, title, content, authorID).Scan(&id)
	return id, err
}

func (r *PostRepo) FindByID(ctx context.Context, id int64) (dom.Post, error) {
	var p dom.Post
	err := r.q.QueryRow(ctx,
		`SELECT id, title, content, author_id, created_on FROM posts WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedOn)
	return p, err
}

// FindAuthorID returns the author_id of the post, for ownership checks.
func (r *PostRepo) FindAuthorID(ctx context.Context, id int64) (int64, error) {
	var authorID int64
	err := r.q.QueryRow(ctx,
		`SELECT author_id FROM posts WHERE id = $1`,
		id,
	).Scan(&authorID)
	return authorID, err
}

func (r *PostRepo) Update(ctx context.Context, id int64, title, content string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE posts SET title = $2, content = $3 WHERE id = $1`,
		id, title, content)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRows
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRows
	}
	return nil
}

// ListByAuthor returns the author's posts, newest first.
func (r *PostRepo) ListByAuthor(ctx context.Context, authorID int64) ([]dom.Post, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, title, content, author_id, created_on FROM posts WHERE author_id = $1 ORDER BY created_on DESC`,
		authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Post
	for rows.Next() {
		var p dom.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedOn); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
