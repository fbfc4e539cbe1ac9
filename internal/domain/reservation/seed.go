package reservation

import "fmt"

// SeedDemoData loads the fixed demo dataset into the registry through the
// regular AddPassenger/AddFlight operations. It is meant to run once at
// process start; a failure here means the dataset itself is broken.
func SeedDemoData(r *Registry) error {
	passengers := []struct {
		firstName string
		lastName  string
		document  string
	}{
		{"Juan", "Perez", "12345678"},
		{"Maria", "Gomez", "87654321"},
		{"Carlos", "Lopez", "11223344"},
		{"Ana", "Martinez", "44332211"},
		{"Pedro", "Rodriguez", "55667788"},
		{"Laura", "Gonzalez", "88776655"},
		{"Diego", "Santos", "99887766"},
		{"Isabel", "Fernandez", "66778899"},
		{"Andres", "Rios", "77889900"},
		{"Sofia", "Diaz", "00998877"},
	}

	flights := []struct {
		number      string
		origin      string
		destination string
		date        string
		capacity    int
	}{
		{"V001", "Buenos Aires", "Madrid", "2024-03-15", 150},
		{"V002", "Madrid", "Paris", "2024-03-16", 120},
		{"V003", "Paris", "Londres", "2024-03-17", 100},
		{"AA1234", "Buenos Aires", "New York", "2024-03-18", 200},
		{"IB5678", "Madrid", "Barcelona", "2024-03-19", 80},
	}

	for _, p := range passengers {
		if _, err := r.AddPassenger(p.firstName, p.lastName, p.document); err != nil {
			return fmt.Errorf("seed passenger %s: %w", p.document, err)
		}
	}
	for _, f := range flights {
		if _, err := r.AddFlight(f.number, f.origin, f.destination, f.date, f.capacity); err != nil {
			return fmt.Errorf("seed flight %s: %w", f.number, err)
		}
	}
	return nil
}
