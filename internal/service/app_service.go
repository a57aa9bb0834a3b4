package service

import (
	"github.com/example/setlocale/internal/database"
	"github.com/example/setlocale/pkg/models"
)

// AppService implements application registration and the paged app query
type AppService struct {
	apps     *database.AppRepository
	pageSize int
}

// NewAppService creates an app service using the given page size
func NewAppService(apps *database.AppRepository, pageSize int) *AppService {
	return &AppService{apps: apps, pageSize: pageSize}
}

// Create validates and persists a candidate app. It returns the new
// app's id, or 0 when the candidate is invalid.
func (s *AppService) Create(in AppInput) (int64, error) {
	if !in.Valid() {
		return 0, nil
	}

	app := models.App{
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
		IsActive:    true,
		CreatedBy:   in.CreatedBy,
	}
	if err := s.apps.Create(&app); err != nil {
		return 0, err
	}
	return app.ID, nil
}

// GetApps returns one page of all apps
func (s *AppService) GetApps(page int) (*models.PagedList[models.App], error) {
	return pagedQuery(page, s.pageSize, s.apps.CountAll, s.apps.ListAll)
}

// GetByID returns the app with the id, or nil when none matches
func (s *AppService) GetByID(id int64) (*models.App, error) {
	return s.apps.GetByID(id)
}
