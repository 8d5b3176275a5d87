package stories

import (
	"testing"

	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.Equal(t, 18, catalog.Len())

	free, ok := catalog.ByID(entities.FreeStoryID)
	require.True(t, ok)
	assert.True(t, free.IsFree)
	assert.Zero(t, free.Price)

	for i, s := range catalog.All() {
		assert.Equal(t, i, s.ID, "stories are ordered by id")
		if s.ID != entities.FreeStoryID {
			assert.False(t, s.IsFree)
			assert.Positive(t, s.Price)
		}
	}
}

func TestByIDUnknown(t *testing.T) {
	_, ok := DefaultCatalog().ByID(99)
	assert.False(t, ok)
}

func TestFilters(t *testing.T) {
	catalog := DefaultCatalog()

	legendary := catalog.ByRarity(entities.RarityLegendary)
	assert.Len(t, legendary, 5)
	for _, s := range legendary {
		assert.GreaterOrEqual(t, s.Price, int64(1000))
	}

	comebacks := catalog.ByCategory(entities.CategoryComeback)
	ids := make([]int, 0, len(comebacks))
	for _, s := range comebacks {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{4, 15, 17}, ids)

	assert.Empty(t, catalog.ByCategory(entities.StoryCategory("Unknown")))
}

func TestAllReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()

	all := catalog.All()
	all[1].Price = 1

	s, _ := catalog.ByID(1)
	assert.Equal(t, int64(500), s.Price)
	assert.Equal(t, int64(500), catalog.All()[1].Price)
}
