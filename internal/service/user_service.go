package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/example/setlocale/internal/database"
	"github.com/example/setlocale/pkg/models"
)

// UserService implements account creation and the paged user queries
type UserService struct {
	users    *database.UserRepository
	pageSize int
}

// NewUserService creates a user service using the given page size for
// all paged queries
func NewUserService(users *database.UserRepository, pageSize int) *UserService {
	return &UserService{users: users, pageSize: pageSize}
}

// Create validates and persists a candidate account with the given
// role. It returns the new user's id, or 0 when the candidate is
// invalid, the role is unknown or the email is already taken.
func (s *UserService) Create(in UserInput, roleID int) (int64, error) {
	if !in.Valid() || !models.IsValidRole(roleID) {
		return 0, nil
	}

	exists, err := s.users.EmailExists(in.Email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Language: in.Language,
		RoleID:   roleID,
		IsActive: true,
	}
	if err := s.users.Create(&user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// CreateTranslator registers a translator account with a generated
// one-time password. The translator is expected to reset it on first
// sign-in.
func (s *UserService) CreateTranslator(in UserInput) (int64, error) {
	in.Password = strings.ReplaceAll(uuid.NewString(), "-", "")
	return s.Create(in, models.RoleTranslator)
}

// GetUsers returns one page of all users
func (s *UserService) GetUsers(page int) (*models.PagedList[models.User], error) {
	return pagedQuery(page, s.pageSize, s.users.CountAll, s.users.ListAll)
}

// GetAllByRoleID returns one page of the users holding the role, or nil
// for an unknown role id
func (s *UserService) GetAllByRoleID(roleID, page int) (*models.PagedList[models.User], error) {
	if !models.IsValidRole(roleID) {
		return nil, nil
	}
	return pagedQuery(page, s.pageSize,
		func() (int64, error) { return s.users.CountByRole(roleID) },
		func(limit, offset int) ([]models.User, error) { return s.users.ListByRole(roleID, limit, offset) })
}

// GetByID returns the user with the id, or nil when none matches
func (s *UserService) GetByID(id int64) (*models.User, error) {
	return s.users.GetByID(id)
}
