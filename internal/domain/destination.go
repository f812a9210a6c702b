package domain

// Destination is the per-trip snapshot of country facts taken when the trip
// was created. When the facts could not be fetched, only Country and City are
// set and Unavailable carries the placeholder message.
type Destination struct {
	ID           int64
	TripID       int64
	Country      string
	OfficialName string
	City         string
	CapitalCity  string
	Currency     string
	Languages    []string
	Timezones    []string
	Region       string
	Subregion    string
	Population   int64
	Flag         string
	GoogleMaps   string
	StartOfWeek  string
	Unavailable  string
}

// Available reports whether the snapshot holds real country facts.
func (d Destination) Available() bool {
	return d.Unavailable == ""
}
