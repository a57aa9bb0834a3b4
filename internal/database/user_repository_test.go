package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/setlocale/pkg/models"
)

func TestUserCreateAndLookup(t *testing.T) {
	db, err := Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := NewUserRepository(db)

	user := &models.User{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret",
		Language: "en",
		RoleID:   models.RoleTranslator,
		IsActive: true,
	}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	found, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "ada@example.com", found.Email)
	assert.Equal(t, models.RoleTranslator, found.RoleID)

	exists, err := repo.EmailExists("ada@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	missing, err := repo.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserListByRole(t *testing.T) {
	db, err := Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := NewUserRepository(db)

	for i, role := range []int{models.RoleAdmin, models.RoleTranslator, models.RoleTranslator} {
		require.NoError(t, repo.Create(&models.User{
			Name:   "user",
			Email:  string(rune('a'+i)) + "@example.com",
			RoleID: role,
		}))
	}

	count, err := repo.CountByRole(models.RoleTranslator)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	translators, err := repo.ListByRole(models.RoleTranslator, 10, 0)
	require.NoError(t, err)
	require.Len(t, translators, 2)
	for _, u := range translators {
		assert.Equal(t, models.RoleTranslator, u.RoleID)
	}
}
