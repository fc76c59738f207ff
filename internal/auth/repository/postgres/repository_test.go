package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Memo977/KidsTube-Backendv2/internal/auth/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountRowColumns = []string{
	"id", "email", "password_hash", "name", "last_name", "phone_number",
	"pin", "country", "birthdate", "verified", "active", "google_id",
	"created_at", "updated_at",
}

func accountRow(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountRowColumns).AddRow(
		a.ID, a.Email, a.PasswordHash, a.Name, a.LastName, a.PhoneNumber,
		a.Pin, a.Country, a.Birthdate, a.Verified, a.Active, a.GoogleID,
		a.CreatedAt, a.UpdatedAt,
	)
}

func sampleAccount() *domain.Account {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Account{
		ID:           "acc-1",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$hash",
		Name:         "Ana",
		LastName:     "Mora",
		PhoneNumber:  "50685551234",
		Pin:          "4321",
		Country:      "CR",
		Birthdate:    time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Verified:     true,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestGetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		want := sampleAccount()
		mock.ExpectQuery("SELECT id, email").
			WithArgs(want.Email).
			WillReturnRows(accountRow(want))

		repo := NewPostgresRepository(mock)
		got, err := repo.GetByEmail(context.Background(), want.Email)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email").
			WithArgs("missing@x.com").
			WillReturnRows(pgxmock.NewRows(accountRowColumns))

		repo := NewPostgresRepository(mock)
		got, err := repo.GetByEmail(context.Background(), "missing@x.com")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email").
			WithArgs("a@x.com").
			WillReturnError(errors.New("connection refused"))

		repo := NewPostgresRepository(mock)
		got, err := repo.GetByEmail(context.Background(), "a@x.com")
		assert.Error(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByGoogleID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	want := sampleAccount()
	want.GoogleID = "sub-google-1"
	mock.ExpectQuery("SELECT id, email").
		WithArgs(want.GoogleID).
		WillReturnRows(accountRow(want))

	repo := NewPostgresRepository(mock)
	got, err := repo.GetByGoogleID(context.Background(), want.GoogleID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.GoogleID, got.GoogleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	t.Run("inserts all columns", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		a := sampleAccount()
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(a.ID, a.Email, a.PasswordHash, a.Name, a.LastName,
				a.PhoneNumber, a.Pin, a.Country, a.Birthdate, a.Verified,
				a.Active, a.GoogleID, a.CreatedAt, a.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := NewPostgresRepository(mock)
		require.NoError(t, repo.Create(context.Background(), a))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		a := sampleAccount()
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(a.ID, a.Email, a.PasswordHash, a.Name, a.LastName,
				a.PhoneNumber, a.Pin, a.Country, a.Birthdate, a.Verified,
				a.Active, a.GoogleID, a.CreatedAt, a.UpdatedAt).
			WillReturnError(errors.New("duplicate key"))

		repo := NewPostgresRepository(mock)
		assert.Error(t, repo.Create(context.Background(), a))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := sampleAccount()
	a.GoogleID = "sub-google-1"
	mock.ExpectExec("UPDATE accounts").
		WithArgs(a.ID, a.Email, a.PasswordHash, a.Name, a.LastName,
			a.PhoneNumber, a.Pin, a.Country, a.Birthdate, a.Verified,
			a.Active, a.GoogleID, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewPostgresRepository(mock)
	require.NoError(t, repo.Update(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRestrictedProfileByPin(t *testing.T) {
	t.Run("found when pin belongs to guardian", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, account_id").
			WithArgs("acc-1", "2222").
			WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "name", "avatar", "pin"}).
				AddRow("rp-1", "acc-1", "Kiddo", "fox.png", "2222"))

		repo := NewPostgresRepository(mock)
		got, err := repo.GetRestrictedProfileByPin(context.Background(), "acc-1", "2222")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "rp-1", got.ID)
		assert.Equal(t, "Kiddo", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign guardian pin resolves to nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, account_id").
			WithArgs("acc-other", "2222").
			WillReturnRows(pgxmock.NewRows([]string{"id", "account_id", "name", "avatar", "pin"}))

		repo := NewPostgresRepository(mock)
		got, err := repo.GetRestrictedProfileByPin(context.Background(), "acc-other", "2222")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListPlaylistIDsByProfile(t *testing.T) {
	t.Run("returns ids", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT playlist_id").
			WithArgs("rp-1").
			WillReturnRows(pgxmock.NewRows([]string{"playlist_id"}).
				AddRow("pl-1").AddRow("pl-2"))

		repo := NewPostgresRepository(mock)
		ids, err := repo.ListPlaylistIDsByProfile(context.Background(), "rp-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"pl-1", "pl-2"}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty for profile with no playlists", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT playlist_id").
			WithArgs("rp-2").
			WillReturnRows(pgxmock.NewRows([]string{"playlist_id"}))

		repo := NewPostgresRepository(mock)
		ids, err := repo.ListPlaylistIDsByProfile(context.Background(), "rp-2")
		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
