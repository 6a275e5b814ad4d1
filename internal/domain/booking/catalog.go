package booking

// Catalog holds the shop's bookable hours in ascending order. Loaded once at
// process start and never mutated.
var Catalog = []string{
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
}

func InCatalog(t string) bool {
	for _, slot := range Catalog {
		if slot == t {
			return true
		}
	}
	return false
}

// AvailableTimes returns the catalog minus the booked times, catalog order
// preserved. The result is never nil so a fully booked day encodes as [].
func AvailableTimes(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]string, 0, len(Catalog))
	for _, slot := range Catalog {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}
	return available
}
