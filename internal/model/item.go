package model

import "time"

// Item is a single lost-or-found report.
type Item struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category,omitempty"`
	Status          string    `json:"status"`
	ReporterName    string    `json:"reporter_name,omitempty"`
	ReporterContact string    `json:"reporter_contact,omitempty"`
	ImagePath       string    `json:"image_path,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Item statuses. The only transition is lost -> found.
const (
	StatusLost  = "lost"
	StatusFound = "found"
)

// CategoryAny is the search sentinel meaning "no category filter".
const CategoryAny = "Any"

// Categories is the closed category vocabulary, in display order.
var Categories = []string{
	"Electronics",
	"Documents",
	"Accessories",
	"Clothing",
	"Others",
}

// ValidStatus reports whether status is a known item status.
func ValidStatus(status string) bool {
	return status == StatusLost || status == StatusFound
}

// ValidCategory reports whether category is in the closed vocabulary.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
