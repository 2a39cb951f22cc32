// Package fleet holds the static vehicle catalog and the pure filtering
// logic used by the public browse API.  The catalog is fixed at deployment
// time and never mutated at runtime; bookings denormalize the vehicle name
// and daily rate at creation so later catalog edits do not affect them.
package fleet

// Transmission kinds for catalog vehicles.
const (
	TransmissionManual    = "Manual"
	TransmissionAutomatic = "Automatic"
)

// Vehicle describes one rentable car in the catalog.  This is also the
// public response shape; there is nothing sensitive to strip.
//
// Fields:
//  ID           – stable slug identifier, referenced by bookings.
//  Name         – display name.
//  Type         – category label (Sedan, SUV, Van, ...).
//  Transmission – Manual or Automatic.
//  Seats        – seat count, positive.
//  PricePerDay  – daily rate in rupees.
//  Image        – static image path served by the frontend.
//  Available    – whether the vehicle can currently be requested.
//  Features     – ordered feature list shown on the card.
type Vehicle struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Transmission string   `json:"transmission"`
	Seats        int      `json:"seats"`
	PricePerDay  uint32   `json:"price_per_day"`
	Image        string   `json:"image"`
	Available    bool     `json:"available"`
	Features     []string `json:"features"`
}

var catalog = []Vehicle{
	{
		ID:           "toyota-yaris-1",
		Name:         "Toyota Yaris",
		Type:         "Sedan",
		Transmission: TransmissionAutomatic,
		Seats:        5,
		PricePerDay:  6000,
		Image:        "/cars/toyota-yaris.png",
		Available:    true,
		Features:     []string{"AC", "Bluetooth", "Airbags", "Apple CarPlay"},
	},
	{
		ID:           "honda-civic-2023",
		Name:         "Honda Civic 2023",
		Type:         "Premium Sedan",
		Transmission: TransmissionAutomatic,
		Seats:        5,
		PricePerDay:  8000,
		Image:        "/cars/honda-civic.png",
		Available:    true,
		Features:     []string{"Sunroof", "Adaptive Cruise", "Leather Seats", "Lane Assist"},
	},
	{
		ID:           "kia-sorento",
		Name:         "KIA Sorento",
		Type:         "SUV",
		Transmission: TransmissionAutomatic,
		Seats:        7,
		PricePerDay:  18000,
		Image:        "/cars/kia-sorento.png",
		Available:    true,
		Features:     []string{"Panoramic Sunroof", "All-Wheel Drive", "Premium Audio", "7 Seater"},
	},
	{
		ID:           "toyota-revo",
		Name:         "Toyota Hilux Revo",
		Type:         "Pickup / 4x4",
		Transmission: TransmissionAutomatic,
		Seats:        5,
		PricePerDay:  14000,
		Image:        "/cars/toyota-hilux-revo.png",
		Available:    true,
		Features:     []string{"4x4", "Off-road Capability", "Turbo Diesel", "Tow Bar"},
	},
	{
		ID:           "mg-hs",
		Name:         "MG HS Trophy",
		Type:         "SUV",
		Transmission: TransmissionAutomatic,
		Seats:        5,
		PricePerDay:  12000,
		Image:        "/cars/mg-hs-trophy.png",
		Available:    true,
		Features:     []string{"Turbo Engine", "Ambient Lighting", "360 Camera", "Panoramic Roof"},
	},
	{
		ID:           "hiace-10",
		Name:         "Toyota Hiace",
		Type:         "Van",
		Transmission: TransmissionManual,
		Seats:        10,
		PricePerDay:  10000,
		Image:        "/cars/toyota-hiace.png",
		Available:    true,
		Features:     []string{"10 Seater", "Dual AC", "Large Luggage Space", "Group Travel"},
	},
}

// All returns the full catalog in its defined order.  Callers get a copy of
// the slice header only; vehicles themselves are treated as immutable.
func All() []Vehicle {
	out := make([]Vehicle, len(catalog))
	copy(out, catalog)
	return out
}

// GetByID looks a vehicle up by its slug identifier.
func GetByID(id string) (Vehicle, bool) {
	for _, v := range catalog {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}
