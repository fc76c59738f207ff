package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Memo977/KidsTube-Backendv2/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository uses, so tests can swap in
// a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const accountColumns = `id, email, password_hash, name, last_name, phone_number,
		pin, country, birthdate, verified, active, google_id, created_at, updated_at`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE email = $1
		LIMIT 1;
	`, accountColumns)

	return r.scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE id = $1
		LIMIT 1;
	`, accountColumns)

	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE google_id = $1
		LIMIT 1;
	`, accountColumns)

	return r.scanAccount(r.db.QueryRow(ctx, query, googleID))
}

func (r *PostgresRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.LastName,
		&a.PhoneNumber, &a.Pin, &a.Country, &a.Birthdate, &a.Verified,
		&a.Active, &a.GoogleID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *domain.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, email, password_hash, name, last_name, phone_number,
			pin, country, birthdate, verified, active, google_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, a.ID, a.Email, a.PasswordHash, a.Name, a.LastName, a.PhoneNumber,
		a.Pin, a.Country, a.Birthdate, a.Verified, a.Active, a.GoogleID,
		a.CreatedAt, a.UpdatedAt)

	return err
}

func (r *PostgresRepository) Update(ctx context.Context, a *domain.Account) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET email = $2, password_hash = $3, name = $4, last_name = $5,
			phone_number = $6, pin = $7, country = $8, birthdate = $9,
			verified = $10, active = $11, google_id = $12, updated_at = $13
		WHERE id = $1
	`, a.ID, a.Email, a.PasswordHash, a.Name, a.LastName, a.PhoneNumber,
		a.Pin, a.Country, a.Birthdate, a.Verified, a.Active, a.GoogleID,
		a.UpdatedAt)

	return err
}

// GetRestrictedProfileByPin scopes the lookup to the owning guardian, so a
// PIN belonging to another guardian resolves the same as no PIN at all.
func (r *PostgresRepository) GetRestrictedProfileByPin(ctx context.Context, accountID, pin string) (*domain.RestrictedProfile, error) {
	query := `
		SELECT id, account_id, name, avatar, pin
		FROM restricted_profiles
		WHERE account_id = $1 AND pin = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, accountID, pin)

	var p domain.RestrictedProfile
	err := row.Scan(&p.ID, &p.AccountID, &p.Name, &p.Avatar, &p.Pin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get restricted profile: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) ListPlaylistIDsByProfile(ctx context.Context, profileID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT playlist_id
		FROM profile_playlists
		WHERE profile_id = $1
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists for profile: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
