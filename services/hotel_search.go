package services

import (
	"sort"
	"stayhub/dto"
	"stayhub/models"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// Free-text hotel search. Queries are accent-stripped and matched against
// hotel names, addresses and amenities with n-gram and edit-distance
// scoring, so "grnd plaza talinn" still finds "Grand Plaza Tallinn".

// NormalizeInput strips accents, lowercases and trims the query.
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// CalculateSimilarity returns a 0..1 similarity based on edit distance.
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// prepareUniqueList builds the deduplicated, normalized value list a
// closestmatch matcher is trained on.
func prepareUniqueList(hotels []models.Hotel, field string) []string {
	uniqueValues := make(map[string]bool)

	for _, h := range hotels {
		var value string
		switch field {
		case "name":
			value = h.Name
		case "address":
			value = h.Address
		}
		if value != "" {
			uniqueValues[NormalizeInput(value)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// ScoreHotel rates how well a hotel matches the normalized query.
func ScoreHotel(query string, hotel models.Hotel, cmName, cmAddress *closestmatch.ClosestMatch) int {
	score := 0

	normalizedName := NormalizeInput(hotel.Name)
	if strings.Contains(query, normalizedName) || strings.Contains(normalizedName, query) {
		score += 20
	} else if CalculateSimilarity(query, normalizedName) > 0.6 {
		score += 15
	}
	if cmName.Closest(query) == normalizedName {
		score += 13
	}

	normalizedAddress := NormalizeInput(hotel.Address)
	if cmAddress.Closest(query) == normalizedAddress {
		score += 8
	}

	score += scoreAmenities(query, hotel.Amenities)

	return score
}

func scoreAmenities(query string, amenities []string) int {
	maxAmenityScore := 12
	amenityScore := 0

	for _, amenity := range amenities {
		normalizedAmenity := NormalizeInput(amenity)
		similarity := CalculateSimilarity(query, normalizedAmenity)
		if similarity > 0.7 || strings.Contains(query, normalizedAmenity) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	return amenityScore
}

// FilterAndScoreHotels scores every hotel concurrently and returns the
// positive matches ordered best-first.
func FilterAndScoreHotels(query string, hotels []models.Hotel) []dto.ScoredHotel {
	normalizedQuery := NormalizeInput(query)
	cmName := createMatcher(prepareUniqueList(hotels, "name"))
	cmAddress := createMatcher(prepareUniqueList(hotels, "address"))

	var scored []dto.ScoredHotel
	scoreCh := make(chan dto.ScoredHotel, len(hotels))
	var wg sync.WaitGroup

	for _, hotel := range hotels {
		wg.Add(1)
		go func(hotel models.Hotel) {
			defer wg.Done()
			score := ScoreHotel(normalizedQuery, hotel, cmName, cmAddress)
			if score > 0 {
				scoreCh <- dto.ScoredHotel{
					Hotel: hotel,
					Score: score,
				}
			}
		}(hotel)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredHotel := range scoreCh {
		scored = append(scored, scoredHotel)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// SearchHotels loads all hotels with their rooms and runs the fuzzy scorer.
func SearchHotels(db *gorm.DB, query string) ([]dto.ScoredHotel, error) {
	var hotels []models.Hotel
	if err := db.Preload("Rooms").Find(&hotels).Error; err != nil {
		return nil, err
	}

	return FilterAndScoreHotels(query, hotels), nil
}
