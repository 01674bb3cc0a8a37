package eldritch

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocations(t *testing.T) {
	r := MustBuild(Options{})

	tests := []struct {
		neighborhood string
		want         []string
	}{
		{"Downtown", []string{"Asylum", "Bank", "Square"}},
		{"Easttown", []string{"Diner", "Roadhouse", "Police"}},
		{"Merchant", []string{"Docks", "Unnamable", "Isle"}},
		{"Uptown", []string{"Hospital", "Woods", "MagickShoppe"}},
		{"FrenchHill", []string{"Lodge", "Witch"}},
		{"Northside", []string{"Train"}},
		{"Rivertown", []string{"Store"}},
		{"Southside", []string{"Society"}},
		{"University", []string{"Administration"}},
	}

	for _, tt := range tests {
		t.Run(tt.neighborhood, func(t *testing.T) {
			got, err := r.Locations(tt.neighborhood)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			for _, loc := range got {
				n, ok := r.NeighborhoodOf(loc)
				assert.True(t, ok)
				assert.Equal(t, tt.neighborhood, n)
			}
		})
	}

	t.Run("unknown neighborhood", func(t *testing.T) {
		_, err := r.Locations("Innsmouth")
		assert.ErrorIs(t, err, ErrUnknownNeighborhood)
	})

	t.Run("unknown location", func(t *testing.T) {
		_, ok := r.NeighborhoodOf("Library")
		assert.False(t, ok)
	})

	t.Run("returns a copy", func(t *testing.T) {
		got, err := r.Locations("Downtown")
		require.NoError(t, err)
		got[0] = "tampered"
		again, err := r.Locations("Downtown")
		require.NoError(t, err)
		assert.Equal(t, "Asylum", again[0])
	})
}

func TestLocations_EveryNeighborhoodIsKnown(t *testing.T) {
	for _, entry := range neighborhoodLocations {
		assert.Contains(t, neighborhoodNames, entry.neighborhood)
	}

	r := MustBuild(Options{})
	locs, err := r.Category(CategoryLocations)
	require.NoError(t, err)
	assert.Len(t, locs.Items, 18)
	for _, loc := range locs.Items {
		n, ok := r.NeighborhoodOf(loc)
		require.True(t, ok, "location %q has no neighborhood", loc)
		assert.True(t, slices.Contains(neighborhoodNames, n))
	}
}

func TestIndexLocations_RejectsUnknownNeighborhood(t *testing.T) {
	_, err := indexLocations([]neighborhoodLocation{
		{"Downtown", []string{"Asylum"}},
		{"Donwtown", []string{"Bank"}},
	}, neighborhoodNames)
	assert.ErrorIs(t, err, ErrUnknownNeighborhood)
	assert.ErrorContains(t, err, "Donwtown")
}

// Encounter card ids come from neighborhoodNames, so a misspelled
// "Donwtown6" can never appear.
func TestEncounterCards_DowntownSpelling(t *testing.T) {
	cards, err := MustBuild(Options{}).Category(CategoryEncounters)
	require.NoError(t, err)
	assert.Contains(t, cards.Items, "Downtown6")
	assert.Contains(t, cards.Items, "Downtown7")
	for _, c := range cards.Items {
		assert.NotContains(t, c, "Donwtown")
	}
}

func TestStories(t *testing.T) {
	r := MustBuild(Options{})
	want := []Story{
		{Name: "Powerful Nightmares", Pass: "Sweet Dreams", Fail: "Living Nightmare"},
		{Name: "He Is My Shepherd", Pass: "Fear No Evil", Fail: "I Shall Not Want"},
	}
	assert.Equal(t, want, r.Stories())

	c, err := r.Category(CategoryStories)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Powerful Nightmares", "Sweet Dreams", "Living Nightmare",
		"He Is My Shepherd", "Fear No Evil", "I Shall Not Want",
	}, c.Items)

	got := r.Stories()
	got[0].Name = "tampered"
	assert.Equal(t, "Powerful Nightmares", r.Stories()[0].Name)
}

// Locations and stories are lookup data, not client assets.
func TestLocationsAndStoriesStayOutOfAssets(t *testing.T) {
	r := MustBuild(Options{})
	assert.Len(t, r.AssetNames(), 264)
	assert.NotContains(t, r.AssetNames(), "Asylum")
	assert.NotContains(t, r.AssetNames(), "Sweet Dreams")
}
