package repositories

import (
	"testing"

	"haulhub/internal/domain"
	"haulhub/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var userColumnNames = []string{"id", "name", "username", "email", "phone", "password_hash", "role", "status"}

func TestUserRepoGetByLogin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(userColumnNames).
		AddRow(int64(7), "Ana Diaz", "adiaz", "ana@example.com", "", "$2a$10$hash", "dispatcher", "active")
	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("adiaz", "adiaz").
		WillReturnRows(rows)

	u, err := UserRepository{DB: db}.GetByLogin("adiaz")
	if err != nil {
		t.Fatalf("GetByLogin error: %v", err)
	}
	if u.ID != 7 || u.Role != "dispatcher" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepoGetByLoginNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ghost", "ghost").
		WillReturnRows(sqlmock.NewRows(userColumnNames))

	_, err = UserRepository{DB: db}.GetByLogin("ghost")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUserRepoExistsByLogin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("ana@example.com", "adiaz").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := UserRepository{DB: db}.ExistsByLogin("ana@example.com", "adiaz")
	if err != nil {
		t.Fatalf("ExistsByLogin error: %v", err)
	}
	if !exists {
		t.Fatal("expected user to exist")
	}
}

func TestUserRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := UserRepository{DB: db}.Insert(models.User{
		Name:         "Ana Diaz",
		Username:     "adiaz",
		Email:        "ana@example.com",
		Role:         "dispatcher",
		Status:       "active",
		PasswordHash: "$2a$10$hash",
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
}

func TestUserRepoUpdateRoleStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE users SET role").
		WithArgs("driver", "active", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = UserRepository{DB: db}.UpdateRoleStatus(99, "driver", "active")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUserRepoListByRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(userColumnNames).
		AddRow(int64(1), "A", "a", "a@example.com", "", "h", "driver", "active").
		AddRow(int64(2), "B", "b", "b@example.com", "", "h", "driver", "inactive")
	mock.ExpectQuery("SELECT (.+) FROM users WHERE role").
		WithArgs("driver").
		WillReturnRows(rows)

	users, err := UserRepository{DB: db}.List("driver")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
