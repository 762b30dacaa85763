package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Patient(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+patients\s*\(username,\s*salt,\s*hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`

	mock.ExpectExec(q).
		WithArgs("alice", []byte("salt"), []byte("hash")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	acc := &model.Account{Username: "alice", Salt: []byte("salt"), Hash: []byte("hash")}
	if err := repo.Create(context.Background(), model.RolePatient, acc); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_CaregiverTable(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+caregivers\s*\(username,\s*salt,\s*hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`

	mock.ExpectExec(q).
		WithArgs("carol", []byte("salt"), []byte("hash")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	acc := &model.Account{Username: "carol", Salt: []byte("salt"), Hash: []byte("hash")}
	if err := repo.Create(context.Background(), model.RoleCaregiver, acc); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_UsernameTaken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+patients`

	mock.ExpectExec(q).
		WithArgs("alice", []byte("salt"), []byte("hash")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	acc := &model.Account{Username: "alice", Salt: []byte("salt"), Hash: []byte("hash")}
	err := repo.Create(context.Background(), model.RolePatient, acc)
	if !errors.Is(err, model.ErrUsernameTaken) {
		t.Fatalf("want model.ErrUsernameTaken, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+patients`).
		WithArgs("alice", []byte("salt"), []byte("hash")).
		WillReturnError(errors.New("db down"))

	acc := &model.Account{Username: "alice", Salt: []byte("salt"), Hash: []byte("hash")}
	err := repo.Create(context.Background(), model.RolePatient, acc)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*salt,\s*hash\s+FROM\s+caregivers\s+WHERE\s+username\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"username", "salt", "hash"}).
		AddRow("carol", []byte("salt"), []byte("hash"))
	mock.ExpectQuery(q).WithArgs("carol").WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), model.RoleCaregiver, "carol")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.Username != "carol" || string(got.Salt) != "salt" {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+username,\s*salt,\s*hash\s+FROM\s+patients`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), model.RolePatient, "ghost")
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("want model.ErrNotFound, got %v", err)
	}
}
