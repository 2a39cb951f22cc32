package fleet

// SeatMode selects how the seat-count predicate is applied when filtering.
type SeatMode string

const (
	SeatAny       SeatMode = "any" // no seat predicate
	SeatExactFive SeatMode = "5"   // exactly five seats
	SeatSevenPlus SeatMode = "7+"  // seven seats or more
)

// ParseSeatMode normalizes a query-string value into a SeatMode.  An empty
// string means SeatAny; unknown values are rejected.
func ParseSeatMode(s string) (SeatMode, bool) {
	switch SeatMode(s) {
	case "", SeatAny:
		return SeatAny, true
	case SeatExactFive:
		return SeatExactFive, true
	case SeatSevenPlus:
		return SeatSevenPlus, true
	}
	return SeatAny, false
}

// Filter returns the subset of vehicles matching every active predicate, in
// the input order.  An empty vehicleType (or "All") matches every category.
// maxPrice is inclusive; zero disables the price cap.  Filtering is pure and
// idempotent: running the same predicates over a previous result returns the
// same subset.
func Filter(vehicles []Vehicle, vehicleType string, maxPrice uint32, seats SeatMode) []Vehicle {
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if vehicleType != "" && vehicleType != "All" && v.Type != vehicleType {
			continue
		}
		if maxPrice > 0 && v.PricePerDay > maxPrice {
			continue
		}
		switch seats {
		case SeatExactFive:
			if v.Seats != 5 {
				continue
			}
		case SeatSevenPlus:
			if v.Seats < 7 {
				continue
			}
		}
		out = append(out, v)
	}
	return out
}
