package domain

// Represents a single geolocated hotel record.
// A Hotel has a unique, stable identifier and validated coordinates.
// Price is kept in its raw display form (e.g. "$129"); numeric coercion
// is the aggregation layer's policy, not the record's.
// Hotels are immutable once constructed: the clustering engine only
// borrows them for the duration of a call.
type Hotel struct {
	HotelID  int
	Name     string
	Position Coordinates
	Rating   float64
	Price    string
}
