// Package user implements the User repository using PostgreSQL.
// Passwords are hashed with bcrypt on every write and the hash never leaves
// the package except through GetCredentials.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"golang.org/x/crypto/bcrypt"

	postgres "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "first_name", "email", "created_at"}

// updateColumns maps update field names to columns. The password field is
// hashed before it reaches the clause builder.
var updateColumns = map[string]string{
	"password": "password_hash",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db       postgres.Querier
	hashCost int
}

// New creates a new user repository. hashCost is the bcrypt cost.
func New(db postgres.Querier, hashCost int) *Repo {
	return &Repo{db: db, hashCost: hashCost}
}

type userRow struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type credentialsRow struct {
	userRow
	PasswordHash string `db:"password_hash"`
}

// Add hashes the password and inserts the user.
// A taken username maps to domain.ErrAlreadyExists.
func (r *Repo) Add(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), r.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("username", "password_hash", "first_name", "email").
		Values(u.Username, string(hash), u.FirstName, u.Email).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	return toDomain(row), nil
}

// Get returns the user with the given username.
func (r *Repo) Get(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return toDomain(row), nil
}

// GetCredentials returns the user together with its password hash.
func (r *Repo) GetCredentials(ctx context.Context, username string) (*domain.Credentials, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		Column("password_hash").
		From(table).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select credentials: %w", err)
	}

	var row credentialsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return &domain.Credentials{User: *toDomain(row.userRow), PasswordHash: row.PasswordHash}, nil
}

// GetAll returns every user ordered by username.
func (r *Repo) GetAll(ctx context.Context) ([]domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("username").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = *toDomain(row)
	}
	return users, nil
}

// Update applies a sparse update. A "password" field is re-hashed before
// storage.
func (r *Repo) Update(ctx context.Context, username string, fields []postgres.Field) (*domain.User, error) {
	fields, err := r.hashPasswordField(fields)
	if err != nil {
		return nil, err
	}

	set, err := postgres.PartialUpdate(fields, updateColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE username = $%d RETURNING %s",
		table, set.SQL, set.Next(), joinColumns())
	args := append(set.Args, username)

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return toDomain(row), nil
}

// Remove deletes the user; trips cascade.
func (r *Repo) Remove(ctx context.Context, username string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"username": username}).
		Suffix("RETURNING username").
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	var deleted string
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&deleted); err != nil {
		return postgres.MapError(err, "user", username)
	}
	return nil
}

func (r *Repo) hashPasswordField(fields []postgres.Field) ([]postgres.Field, error) {
	out := make([]postgres.Field, len(fields))
	for i, f := range fields {
		out[i] = f
		if f.Name != "password" {
			continue
		}
		plain, ok := f.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: password must be a string", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), r.hashCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		out[i].Value = string(hash)
	}
	return out, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func toDomain(row userRow) *domain.User {
	return &domain.User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		FirstName: row.FirstName,
		CreatedAt: row.CreatedAt,
	}
}
