package services

import (
	"testing"

	"stayhub/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "grand plaza", NormalizeInput("  Grand Plaza  "))
	assert.Equal(t, "tallinn", NormalizeInput("Tallinn"))
	assert.Equal(t, "parnu", NormalizeInput("Pärnu"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, CalculateSimilarity("hotel", "hotel"))
	assert.Equal(t, 1.0, CalculateSimilarity("", ""))
	assert.InDelta(t, 0.8, CalculateSimilarity("hotel", "hotex"), 0.01)
	assert.Less(t, CalculateSimilarity("hotel", "zzzzz"), 0.2)
}

func TestFilterAndScoreHotelsOrdersBestFirst(t *testing.T) {
	hotels := []models.Hotel{
		{ID: 1, Name: "Grand Plaza", Address: "1 Harbour Rd"},
		{ID: 2, Name: "Seaside Inn", Address: "2 Beach St"},
		{ID: 3, Name: "Grand Palace", Address: "3 Castle Hill"},
	}

	results := FilterAndScoreHotels("grand plaza", hotels)

	assert.NotEmpty(t, results)
	assert.Equal(t, uint(1), results[0].Hotel.ID)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestFilterAndScoreHotelsToleratesTypos(t *testing.T) {
	hotels := []models.Hotel{
		{ID: 1, Name: "Grand Plaza", Address: "1 Harbour Rd"},
		{ID: 2, Name: "Seaside Inn", Address: "2 Beach St"},
	}

	results := FilterAndScoreHotels("grnd plaza", hotels)

	assert.NotEmpty(t, results)
	assert.Equal(t, uint(1), results[0].Hotel.ID)
}

func TestScoreAmenities(t *testing.T) {
	assert.Equal(t, 4, scoreAmenities("sauna", []string{"sauna", "gym"}))
	assert.Equal(t, 0, scoreAmenities("sauna", []string{"parking"}))
	assert.Equal(t, 0, scoreAmenities("sauna", nil))

	// The amenity contribution is capped even when many amenities match.
	many := []string{"spa one", "spa two", "spa abc", "spa xyz"}
	assert.Equal(t, 12, scoreAmenities("spa one spa two spa abc spa xyz", many))
}

func TestFilterAndScoreHotelsEmptyCorpus(t *testing.T) {
	results := FilterAndScoreHotels("anything", nil)
	assert.Empty(t, results)
}
