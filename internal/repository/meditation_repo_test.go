package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/soultria_server/internal/model"
	"github.com/qs3c/soultria_server/internal/testutil"
)

func TestMeditationRepository_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMeditationRepository(db)
	user := testutil.TestUser(t, db)

	_, err := repo.GetStats(user.ID)
	assert.Error(t, err)

	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveStats(&model.MeditationStats{
		UserID: user.ID, TotalSessions: 1, TotalMinutes: 7, CurrentStreak: 1, LastSessionAt: &now,
	}))
	require.NoError(t, repo.SaveStats(&model.MeditationStats{
		UserID: user.ID, TotalSessions: 2, TotalMinutes: 17, CurrentStreak: 2, LastSessionAt: &now,
	}))

	stats, err := repo.GetStats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 17, stats.TotalMinutes)
	assert.Equal(t, 2, stats.CurrentStreak)
}

func TestMeditationRepository_Settings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMeditationRepository(db)
	user := testutil.TestUser(t, db)

	settings := model.DefaultMeditationSettings(user.ID)
	settings.Volume = 0
	settings.ReminderEnabled = false
	require.NoError(t, repo.SaveSettings(settings))

	found, err := repo.GetSettings(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Volume)
	assert.Equal(t, 50, found.SoundscapeVolume)
	assert.False(t, found.ReminderEnabled)
}

func TestMeditationRepository_ListReminderEnabled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMeditationRepository(db)
	on := testutil.TestUser(t, db)
	off := testutil.TestUser(t, db)
	done := testutil.TestUser(t, db)

	testutil.TestSettings(t, db, on.ID, testutil.WithReminder(model.ScheduleDaily, "08:00", true))
	testutil.TestSettings(t, db, off.ID, testutil.WithReminder(model.ScheduleDaily, "08:00", false))
	testutil.TestSettings(t, db, done.ID, testutil.WithReminder(model.ScheduleDaily, "08:00", true))
	require.NoError(t, repo.MarkReminded(done.ID, "2024-03-15"))

	list, err := repo.ListReminderEnabled("2024-03-15")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, on.ID, list[0].UserID)

	// 第二天重新进入候选
	list, err = repo.ListReminderEnabled("2024-03-16")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
