package repo

import (
	"context"

	dom "microblog/internal/domain"

	"microblog/internal/db"
)

// UserRepo runs user queries inside the scope it was built around.
type UserRepo struct {
	q db.Querier
}

// NewUserRepo returns a UserRepo bound to the given scope.
func NewUserRepo(q db.Querier) *UserRepo {
	return &UserRepo{q: q}
}

// FindPasswordHash returns the stored digest for username.
func (r *UserRepo) FindPasswordHash(ctx context.Context, username string) (string, error) {
	var digest string
	err := r.q.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&digest)
	return digest, err
}

// FindIDByUsername returns the id for username.
func (r *UserRepo) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`SELECT id FROM users WHERE username = $1`,
		username,
	).Scan(&id)
	return id, err
}

// FindByUsername returns the full user row for username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.q.QueryRow(ctx,
		`SELECT id, username, password_hash, name, last_name, email FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Email)
	return u, err
}

// FindByID returns the full user row for id.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.q.QueryRow(ctx,
		`SELECT id, username, password_hash, name, last_name, email FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Email)
	return u, err
}

// ListAll returns every user in natural storage order.
func (r *UserRepo) ListAll(ctx context.Context) ([]dom.User, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, username, password_hash, name, last_name, email FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.User
	for rows.Next() {
		var u dom.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Create inserts a new user and returns the assigned id. The store's unique
// constraint on username is the only duplicate check; see IsUniqueViolation.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash, firstName, lastName, email string) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash, name, last_name, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, username, passwordHash, firstName, lastName, email).Scan(&id)
	return id, err
}

// Delete removes the user by username. Returns ErrNoRows when nothing matched.
func (r *UserRepo) Delete(ctx context.Context, username string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNoRows
	}
	return nil
}
