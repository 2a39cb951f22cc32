package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haiderrentals/rental-api/internal/booking"
	"github.com/haiderrentals/rental-api/internal/model"
)

func TestComputeStats(t *testing.T) {
	bookings := []model.Booking{
		{Status: booking.StatusConfirmed, TotalPrice: 12000},
		{Status: booking.StatusPending, TotalPrice: 9000},
		{Status: booking.StatusCancelled, TotalPrice: 15000},
	}
	messages := []model.ContactMessage{
		{Read: false},
		{Read: true},
		{Read: false},
	}

	s := computeStats(bookings, messages)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 1, s.Confirmed)
	// Only confirmed bookings count toward revenue.
	assert.Equal(t, uint64(12000), s.Revenue)
	assert.Equal(t, 2, s.UnreadMessages)
}

func TestComputeStatsEmpty(t *testing.T) {
	s := computeStats(nil, nil)
	assert.Equal(t, Stats{}, s)
}

func TestComputeStatsRevenueSums(t *testing.T) {
	bookings := []model.Booking{
		{Status: booking.StatusConfirmed, TotalPrice: 16000},
		{Status: booking.StatusConfirmed, TotalPrice: 6000},
		{Status: booking.StatusCancelled, TotalPrice: 50000},
	}
	s := computeStats(bookings, nil)
	assert.Equal(t, uint64(22000), s.Revenue)
	assert.Equal(t, 2, s.Confirmed)
	assert.Equal(t, 0, s.Pending)
}
