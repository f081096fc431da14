package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripbook/internal/domain"
	"tripbook/internal/service"
)

func TestComputeTripStats_DistinctCountries(t *testing.T) {
	t.Parallel()

	trips := []domain.Trip{
		{ID: "1", Country: "França", MediaCount: 2, Status: domain.TripStatusPast},
		{ID: "2", Country: "Japão", MediaCount: 1, Status: domain.TripStatusUpcoming},
		{ID: "3", Country: "França", Status: domain.TripStatusUpcoming},
	}

	stats := service.ComputeTripStats(trips)

	assert.Equal(t, 3, stats.TripCount)
	assert.Equal(t, 2, stats.CountryCount)
	assert.Equal(t, 3, stats.MediaCount)
	assert.Equal(t, 2, stats.ByStatus[domain.TripStatusUpcoming])
}

func TestComputeTripStats_Empty(t *testing.T) {
	t.Parallel()

	stats := service.ComputeTripStats(nil)

	assert.Zero(t, stats.TripCount)
	assert.Zero(t, stats.CountryCount)
	assert.Zero(t, stats.MediaCount)
}

func TestComputeTripStats_IgnoresBlankCountry(t *testing.T) {
	t.Parallel()

	stats := service.ComputeTripStats([]domain.Trip{{ID: "1", Country: " "}, {ID: "2", Country: "Chile"}})

	assert.Equal(t, 1, stats.CountryCount)
}
