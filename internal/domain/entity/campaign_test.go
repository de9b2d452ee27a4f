package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignCatalog(t *testing.T) {
	catalog := CampaignCatalog()
	assert.NotEmpty(t, catalog)

	// Every campaign carries an enumerated category
	for _, campaign := range catalog {
		assert.True(t, IsValidCategory(string(campaign.Category)), "campaign %s has unknown category %s", campaign.ID, campaign.Category)
		assert.NotEmpty(t, campaign.ID)
		assert.NotEmpty(t, campaign.Title)
	}

	// Returned slice is a copy; mutating it must not affect the catalog
	catalog[0].Title = "mutated"
	assert.NotEqual(t, "mutated", CampaignCatalog()[0].Title)
}

func TestListByCategory(t *testing.T) {
	t.Run("All returns the full catalog", func(t *testing.T) {
		assert.Equal(t, len(CampaignCatalog()), len(ListByCategory(CategoryAll)))
	})

	t.Run("Filters to a single category", func(t *testing.T) {
		campaigns := ListByCategory(string(CategoryHealth))
		assert.NotEmpty(t, campaigns)
		for _, campaign := range campaigns {
			assert.Equal(t, CategoryHealth, campaign.Category)
		}
	})

	t.Run("Switching filters is a pure function of the filter", func(t *testing.T) {
		// All -> Health -> All must return exactly the unfiltered catalog again
		before := ListByCategory(CategoryAll)
		_ = ListByCategory(string(CategoryHealth))
		after := ListByCategory(CategoryAll)
		assert.Equal(t, before, after)
	})

	t.Run("Case-insensitive match", func(t *testing.T) {
		assert.Equal(t, ListByCategory("Health"), ListByCategory("health"))
		assert.Equal(t, ListByCategory(CategoryAll), ListByCategory("all"))
	})

	t.Run("Unknown category yields empty result", func(t *testing.T) {
		assert.Empty(t, ListByCategory("Sports"))
		assert.Empty(t, ListByCategory(""))
	})
}
