package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/repository"
	"github.com/qs3c/soultria_server/internal/testutil"
)

func TestUserService_GetProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := NewUserService(repository.NewUserRepository(db))
	user := testutil.TestUser(t, db, testutil.WithName("Profile User"))

	info, err := service.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, info.ID)
	assert.Equal(t, "Profile User", info.Name)

	_, err = service.GetProfile(99999)
	assert.Equal(t, ErrUserNotFound, err)
}

func TestUserService_UpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	service := NewUserService(repository.NewUserRepository(db))
	user := testutil.TestUser(t, db, testutil.WithPhone("555-0000"))

	name := "  New Name "
	info, err := service.UpdateProfile(user.ID, &dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", info.Name)
	assert.Equal(t, "555-0000", info.Phone)

	_, err = service.UpdateProfile(99999, &dto.UpdateProfileRequest{Name: &name})
	assert.Equal(t, ErrUserNotFound, err)
}
