package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/setlocale/pkg/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password, language, role_id, is_active, created_at, updated_at`

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) error {
	query := `INSERT INTO users (name, email, password, language, role_id, is_active)
		VALUES (?, ?, ?, ?, ?, ?)`
	args := []interface{}{user.Name, user.Email, user.Password, user.Language, user.RoleID, user.IsActive}

	if r.db.DriverName() == "postgres" {
		err := r.db.QueryRow(r.db.Rebind(query+" RETURNING id"), args...).Scan(&user.ID)
		if err != nil {
			return fmt.Errorf("failed to create user: %v", err)
		}
		return nil
	}

	result, err := r.db.Exec(r.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("failed to create user: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	user.ID = id
	return nil
}

// GetByID returns a user by ID, or nil when no such user exists
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE id = ?")
	err := r.db.Get(&user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %v", err)
	}
	return &user, nil
}

// EmailExists reports whether any user already uses the email
func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int
	query := r.db.Rebind("SELECT COUNT(1) FROM users WHERE email = ?")
	if err := r.db.Get(&count, query, email); err != nil {
		return false, fmt.Errorf("failed to check user email: %v", err)
	}
	return count > 0, nil
}

// CountAll returns the total number of users
func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Get(&count, "SELECT COUNT(1) FROM users"); err != nil {
		return 0, fmt.Errorf("failed to count users: %v", err)
	}
	return count, nil
}

// ListAll returns one page of users, most recently created first
func (r *UserRepository) ListAll(limit, offset int) ([]models.User, error) {
	var users []models.User
	query := r.db.Rebind("SELECT " + userColumns + " FROM users ORDER BY id DESC LIMIT ? OFFSET ?")
	if err := r.db.Select(&users, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to get users: %v", err)
	}
	return users, nil
}

// CountByRole returns the number of users holding the role
func (r *UserRepository) CountByRole(roleID int) (int64, error) {
	var count int64
	query := r.db.Rebind("SELECT COUNT(1) FROM users WHERE role_id = ?")
	if err := r.db.Get(&count, query, roleID); err != nil {
		return 0, fmt.Errorf("failed to count users: %v", err)
	}
	return count, nil
}

// ListByRole returns one page of users holding the role, most recent first
func (r *UserRepository) ListByRole(roleID int, limit, offset int) ([]models.User, error) {
	var users []models.User
	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE role_id = ? ORDER BY id DESC LIMIT ? OFFSET ?")
	if err := r.db.Select(&users, query, roleID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to get users: %v", err)
	}
	return users, nil
}
