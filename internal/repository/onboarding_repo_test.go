package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/qs3c/soultria_server/internal/model"
	"github.com/qs3c/soultria_server/internal/profile"
	"github.com/qs3c/soultria_server/internal/testutil"
)

func TestOnboardingRepository_SaveAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewOnboardingRepository(db)
	user := testutil.TestUser(t, db)

	spiritual := map[string]string{"spiritual_practices": "energy"}
	result := profile.Calculate(spiritual, nil)

	p := &model.OnboardingProfile{
		UserID:           user.ID,
		Name:             "Luna Rivers",
		FirstName:        "Luna",
		ConnectionLevel:  7,
		Devices:          []string{"apple-watch"},
		SpiritualAnswers: datatypes.NewJSONType(spiritual),
		DominantElement:  string(result.DominantElement),
		SpiritAnimal:     string(result.SpiritAnimal),
		AuraColor:        string(result.AuraColor),
		Calculation:      datatypes.NewJSONType(result.Breakdown),
		Completed:        true,
		CompletedAt:      time.Now(),
		IsFirstLogin:     true,
	}
	require.NoError(t, repo.Save(p))

	found, err := repo.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luna", found.FirstName)
	assert.Equal(t, []string{"apple-watch"}, []string(found.Devices))
	assert.Equal(t, "energy", found.SpiritualAnswers.Data()["spiritual_practices"])
	assert.Equal(t, result, found.Result())
	assert.True(t, found.IsFirstLogin)
}

func TestOnboardingRepository_SaveOverwrites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewOnboardingRepository(db)
	user := testutil.TestUser(t, db)

	require.NoError(t, repo.Save(&model.OnboardingProfile{UserID: user.ID, Name: "First", ConnectionLevel: 3}))
	require.NoError(t, repo.Save(&model.OnboardingProfile{UserID: user.ID, Name: "Second", ConnectionLevel: 9}))

	found, err := repo.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second", found.Name)
	assert.Equal(t, 9, found.ConnectionLevel)

	var count int64
	db.Model(&model.OnboardingProfile{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestOnboardingRepository_SetFirstLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewOnboardingRepository(db)
	user := testutil.TestUser(t, db)
	require.NoError(t, repo.Save(&model.OnboardingProfile{UserID: user.ID, Name: "Luna", IsFirstLogin: true}))

	require.NoError(t, repo.SetFirstLogin(user.ID, false))

	found, err := repo.GetByUserID(user.ID)
	require.NoError(t, err)
	assert.False(t, found.IsFirstLogin)
}

func TestOnboardingRepository_GetByUserID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	_, err := NewOnboardingRepository(db).GetByUserID(404)
	assert.Error(t, err)
}
