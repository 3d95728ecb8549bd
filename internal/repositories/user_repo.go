package repositories

import (
	"database/sql"
	"strings"

	intconfig "haulhub/internal/config"
	"haulhub/internal/domain"
	"haulhub/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id, name, username, email, COALESCE(phone,''), password_hash, role, status`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.Status)
	return u, err
}

// GetByLogin matches either email or username.
func (r UserRepository) GetByLogin(login string) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE email=? OR username=?`, login, login)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return u, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	return u, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return u, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	return u, nil
}

func (r UserRepository) ExistsByLogin(email, username string) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email=? OR username=?`, email, username).Scan(&count)
	if err != nil {
		return false, domain.InternalError{Msg: "failed to check user", Err: err}
	}
	return count > 0, nil
}

func (r UserRepository) Insert(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.Role, u.Status,
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to insert user", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r UserRepository) List(role string) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	args := []any{}
	if role = strings.TrimSpace(role); role != "" {
		query += ` WHERE role=?`
		args = append(args, role)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list users", Err: err}
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return out, domain.InternalError{Msg: "failed to scan user", Err: err}
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) UpdateRoleStatus(id int64, role, status string) error {
	res, err := r.db().Exec(`UPDATE users SET role=?, status=?, updated_at=NOW() WHERE id=?`, role, status, id)
	if err != nil {
		return domain.InternalError{Msg: "failed to update user", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Msg: "failed to delete user", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
