package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/soultria_server/internal/model"
	"github.com/qs3c/soultria_server/internal/testutil"
)

func TestJournalRepository_ListByUser_MostRecentFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewJournalRepository(db)
	user := testutil.TestUser(t, db)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	old := testutil.TestJournalEntry(t, db, user.ID, testutil.WithCreatedAt(base))
	newer := testutil.TestJournalEntry(t, db, user.ID, testutil.WithCreatedAt(base.Add(time.Hour)))

	entries, err := repo.ListByUser(user.ID, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.EntryID, entries[0].EntryID)
	assert.Equal(t, old.EntryID, entries[1].EntryID)
}

func TestJournalRepository_ListByUser_SameTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewJournalRepository(db)
	user := testutil.TestUser(t, db)
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	first := testutil.TestJournalEntry(t, db, user.ID, testutil.WithCreatedAt(at))
	second := testutil.TestJournalEntry(t, db, user.ID, testutil.WithCreatedAt(at))

	entries, err := repo.ListByUser(user.ID, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.EntryID, entries[0].EntryID)
	assert.Equal(t, first.EntryID, entries[1].EntryID)
}

func TestJournalRepository_ListByUser_Filter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewJournalRepository(db)
	user := testutil.TestUser(t, db)

	testutil.TestJournalEntry(t, db, user.ID)
	testutil.TestJournalEntry(t, db, user.ID, testutil.WithMeditation("Chakra Healing", 10, 4))

	manual, err := repo.ListByUser(user.ID, model.JournalTypeManual)
	require.NoError(t, err)
	require.Len(t, manual, 1)
	assert.Equal(t, model.JournalTypeManual, manual[0].Type)

	meditation, err := repo.ListByUser(user.ID, model.JournalTypeMeditation)
	require.NoError(t, err)
	require.Len(t, meditation, 1)
	assert.Equal(t, "Chakra Healing", meditation[0].MeditationType)
	assert.Equal(t, 10, meditation[0].Duration)
}

func TestJournalRepository_ListByUser_Isolated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewJournalRepository(db)
	alice := testutil.TestUser(t, db)
	bob := testutil.TestUser(t, db)

	testutil.TestJournalEntry(t, db, alice.ID, testutil.WithEmotions("joyful", "grateful"))

	entries, err := repo.ListByUser(bob.ID, "")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = repo.ListByUser(alice.ID, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"joyful", "grateful"}, []string(entries[0].Emotions))

	count, err := repo.CountByUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
