package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/setlocale/pkg/models"
)

// AppRepository handles database operations for client applications
type AppRepository struct {
	db *sqlx.DB
}

// NewAppRepository creates a new repository instance
func NewAppRepository(db *sqlx.DB) *AppRepository {
	return &AppRepository{db: db}
}

const appColumns = `id, name, url, description, usage_count, is_active, created_by, created_at, updated_at`

// Create inserts a new app
func (r *AppRepository) Create(app *models.App) error {
	query := `INSERT INTO apps (name, url, description, usage_count, is_active, created_by)
		VALUES (?, ?, ?, ?, ?, ?)`
	args := []interface{}{app.Name, app.URL, app.Description, app.UsageCount, app.IsActive, app.CreatedBy}

	if r.db.DriverName() == "postgres" {
		err := r.db.QueryRow(r.db.Rebind(query+" RETURNING id"), args...).Scan(&app.ID)
		if err != nil {
			return fmt.Errorf("failed to create app: %v", err)
		}
		return nil
	}

	result, err := r.db.Exec(r.db.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("failed to create app: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	app.ID = id
	return nil
}

// GetByID returns an app by ID, or nil when no such app exists
func (r *AppRepository) GetByID(id int64) (*models.App, error) {
	var app models.App
	query := r.db.Rebind("SELECT " + appColumns + " FROM apps WHERE id = ?")
	err := r.db.Get(&app, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get app by ID: %v", err)
	}
	return &app, nil
}

// CountAll returns the total number of apps
func (r *AppRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Get(&count, "SELECT COUNT(1) FROM apps"); err != nil {
		return 0, fmt.Errorf("failed to count apps: %v", err)
	}
	return count, nil
}

// ListAll returns one page of apps, most recently created first
func (r *AppRepository) ListAll(limit, offset int) ([]models.App, error) {
	var apps []models.App
	query := r.db.Rebind("SELECT " + appColumns + " FROM apps ORDER BY id DESC LIMIT ? OFFSET ?")
	if err := r.db.Select(&apps, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to get apps: %v", err)
	}
	return apps, nil
}
