package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProMBZ/Teacher-Project/internal/domain/models"
)

func TestRecordStoreAppendPreservesOrder(t *testing.T) {
	store := NewRecordStore()
	store.Append(models.FinalizedRecord{Date: "2025-01-13"})
	store.Append(models.FinalizedRecord{Date: "2025-01-14"})
	store.Append(models.FinalizedRecord{Date: "2025-01-15"})

	records := store.List()
	require.Len(t, records, 3)
	assert.Equal(t, "2025-01-13", records[0].Date)
	assert.Equal(t, "2025-01-14", records[1].Date)
	assert.Equal(t, "2025-01-15", records[2].Date)
	assert.Equal(t, 3, store.Len())
}

func TestRecordStoreListReturnsCopy(t *testing.T) {
	store := NewRecordStore()
	store.Append(models.FinalizedRecord{Date: "2025-01-13"})

	records := store.List()
	records[0].Date = "mutated"

	assert.Equal(t, "2025-01-13", store.List()[0].Date)
}

func TestRecordStoreHasDate(t *testing.T) {
	store := NewRecordStore()
	assert.False(t, store.HasDate("2025-01-15"))

	store.Append(models.FinalizedRecord{Date: "2025-01-15"})
	assert.True(t, store.HasDate("2025-01-15"))
	assert.False(t, store.HasDate("2025-01-16"))
}
