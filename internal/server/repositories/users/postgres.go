package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"skillswap/internal/common"
	"skillswap/internal/dbx"
	"skillswap/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, password_hash, location, profile_photo, bio,
	skills_offered, skills_wanted, availability, is_public, role, is_banned,
	rating_average, total_swaps, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	user := &models.User{}
	var offered, wanted []byte

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Location, &user.ProfilePhoto, &user.Bio, &offered, &wanted,
		&user.Availability, &user.IsPublic, &user.Role, &user.IsBanned,
		&user.RatingAverage, &user.TotalSwaps, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(offered, &user.SkillsOffered); err != nil {
		return nil, fmt.Errorf("decode skills_offered: %w", err)
	}
	if err := json.Unmarshal(wanted, &user.SkillsWanted); err != nil {
		return nil, fmt.Errorf("decode skills_wanted: %w", err)
	}
	return user, nil
}

func encodeSkills(skills []string) ([]byte, error) {
	if skills == nil {
		skills = []string{}
	}
	return json.Marshal(skills)
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	offered, err := encodeSkills(user.SkillsOffered)
	if err != nil {
		return nil, err
	}
	wanted, err := encodeSkills(user.SkillsWanted)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO users
		(id, name, email, password_hash, location, bio, skills_offered,
		 skills_wanted, availability, is_public, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Location,
		user.Bio, offered, wanted, user.Availability, user.IsPublic, user.Role,
	).Scan(&user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) ListPublic(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE is_public AND NOT is_banned
		ORDER BY created_at`
	return r.queryUsers(ctx, query)
}

// SearchBySkill matches the term case-insensitively as a substring of any
// offered skill label.
func (r *PostgresRepository) SearchBySkill(ctx context.Context, skill string) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE is_public AND NOT is_banned
		  AND EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(skills_offered) AS s
			WHERE s ILIKE '%' || $1 || '%'
		  )
		ORDER BY created_at`
	return r.queryUsers(ctx, query, skill)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	return r.queryUsers(ctx, query)
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	offered, err := encodeSkills(user.SkillsOffered)
	if err != nil {
		return nil, err
	}
	wanted, err := encodeSkills(user.SkillsWanted)
	if err != nil {
		return nil, err
	}

	query := `UPDATE users SET
		name = $2, location = $3, bio = $4, skills_offered = $5,
		skills_wanted = $6, availability = $7, is_public = $8
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Location,
		user.Bio, offered, wanted, user.Availability, user.IsPublic)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, common.ErrNotFound
	}

	return r.GetByID(ctx, user.ID)
}

func (r *PostgresRepository) SetPhoto(ctx context.Context, id, photoURL string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET profile_photo = $2 WHERE id = $1`, id, photoURL)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetBanned(ctx context.Context, id string, banned bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET is_banned = $2 WHERE id = $1`, id, banned)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetRatingAverage(ctx context.Context, id string, avg float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET rating_average = $2 WHERE id = $1`, id, avg)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) IncrementTotalSwaps(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET total_swaps = total_swaps + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
