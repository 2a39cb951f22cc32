package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(vs []Vehicle) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}

func TestFilterNoPredicates(t *testing.T) {
	got := Filter(All(), "", 0, SeatAny)
	assert.Equal(t, ids(All()), ids(got))

	// "All" as a category label behaves like no type predicate.
	got = Filter(All(), "All", 0, SeatAny)
	assert.Len(t, got, len(All()))
}

func TestFilterByType(t *testing.T) {
	got := Filter(All(), "SUV", 0, SeatAny)
	assert.Equal(t, []string{"kia-sorento", "mg-hs"}, ids(got))

	got = Filter(All(), "Van", 0, SeatAny)
	assert.Equal(t, []string{"hiace-10"}, ids(got))

	got = Filter(All(), "Convertible", 0, SeatAny)
	assert.Empty(t, got)
}

func TestFilterByMaxPrice(t *testing.T) {
	// The cap is inclusive.
	got := Filter(All(), "", 8000, SeatAny)
	assert.Equal(t, []string{"toyota-yaris-1", "honda-civic-2023"}, ids(got))

	// Exactly on a vehicle's rate keeps it.
	got = Filter(All(), "", 6000, SeatAny)
	assert.Equal(t, []string{"toyota-yaris-1"}, ids(got))

	// Below every rate.
	got = Filter(All(), "", 100, SeatAny)
	assert.Empty(t, got)
}

func TestFilterBySeats(t *testing.T) {
	got := Filter(All(), "", 0, SeatSevenPlus)
	assert.Equal(t, []string{"kia-sorento", "hiace-10"}, ids(got))

	got = Filter(All(), "", 0, SeatExactFive)
	assert.Equal(t, []string{"toyota-yaris-1", "honda-civic-2023", "toyota-revo", "mg-hs"}, ids(got))
}

func TestFilterCombined(t *testing.T) {
	got := Filter(All(), "SUV", 12000, SeatExactFive)
	assert.Equal(t, []string{"mg-hs"}, ids(got))
}

func TestFilterIsIdempotent(t *testing.T) {
	first := Filter(All(), "SUV", 0, SeatAny)
	second := Filter(first, "SUV", 0, SeatAny)
	assert.Equal(t, first, second)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := All()
	_ = Filter(in, "Van", 0, SeatSevenPlus)
	assert.Equal(t, All(), in)
}

func TestParseSeatMode(t *testing.T) {
	m, ok := ParseSeatMode("")
	require.True(t, ok)
	assert.Equal(t, SeatAny, m)

	m, ok = ParseSeatMode("5")
	require.True(t, ok)
	assert.Equal(t, SeatExactFive, m)

	m, ok = ParseSeatMode("7+")
	require.True(t, ok)
	assert.Equal(t, SeatSevenPlus, m)

	_, ok = ParseSeatMode("9")
	assert.False(t, ok)
}

func TestGetByID(t *testing.T) {
	v, ok := GetByID("honda-civic-2023")
	require.True(t, ok)
	assert.Equal(t, "Honda Civic 2023", v.Name)
	assert.Equal(t, uint32(8000), v.PricePerDay)

	_, ok = GetByID("no-such-car")
	assert.False(t, ok)
}
