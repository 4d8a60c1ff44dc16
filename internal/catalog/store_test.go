package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EmptyAttributesStoredAsNull(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	v := &Video{Source: "youtube", FileName: "bare"}
	require.NoError(t, store.AddVideo(v))

	var audio *string
	require.NoError(t, db.QueryRow("SELECT audio_codecs FROM videos WHERE id = ?", v.ID).Scan(&audio))
	assert.Nil(t, audio, "empty attributes are stored as NULL")

	retrieved, err := store.GetVideo(v.ID)
	require.NoError(t, err)
	assert.Empty(t, retrieved.AudioCodecs)
	assert.Empty(t, retrieved.FileExtension)
}

// Concurrent inserts of one file name must leave exactly one row.
func TestStore_ConcurrentSameName(t *testing.T) {
	db := setupTestDB(t)
	db.SetMaxOpenConns(1)
	store := NewStore(db)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var duplicates int

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.AddVideo(newVideo("youtube", "race")); err != nil {
				mu.Lock()
				assert.ErrorIs(t, err, ErrDuplicate)
				duplicates++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 9, duplicates)
	videos, err := store.ListAll()
	require.NoError(t, err)
	assert.Len(t, videos, 1)
}

func TestStore_SchemaVersion(t *testing.T) {
	store := NewStore(setupTestDB(t))

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestStore_SchemaVersionClosedDB(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Close())

	_, err := NewStore(db).SchemaVersion()
	assert.ErrorContains(t, err, "schema version")
}
