package extract

import "github.com/ProMBZ/Teacher-Project/internal/domain/models"

// MissingFields returns the identifiers of required fields still unset on
// the record, in the fixed order date, arrival, departure, topics, then the
// three marks (only required on Fridays). The order is stable so user-facing
// prompts stay deterministic. An empty result means the record is complete.
func MissingFields(rec models.OngoingRecord) []string {
	var missing []string

	if rec.Date == "" {
		missing = append(missing, models.FieldDate)
	}
	if rec.Arrival == "" {
		missing = append(missing, models.FieldArrival)
	}
	if rec.Departure == "" {
		missing = append(missing, models.FieldDeparture)
	}
	if rec.Topics == "" {
		missing = append(missing, models.FieldTopics)
	}

	if rec.IsFriday {
		for _, child := range models.ChildNames {
			if rec.Marks[child] == "" {
				missing = append(missing, models.MarkField(child))
			}
		}
	}

	return missing
}
