package models

import "time"

// Slot is a bookable (date, time) unit embedded in an Experience. Available
// counts remaining capacity; SoldOut is kept in lockstep with Available by the
// booking repository and must never be mutated independently.
type Slot struct {
	Date      string `bson:"date" json:"date"`           // "YYYY-MM-DD"
	Time      string `bson:"time" json:"time"`           // e.g. "07:00 am"
	Available int    `bson:"available" json:"available"` // remaining capacity units
	SoldOut   bool   `bson:"soldOut" json:"soldOut"`     // true iff Available <= 0
}

// Experience is the aggregate root of the catalog: an activity with a list of
// dated time slots. Prices are integer currency units.
type Experience struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Location    string    `bson:"location" json:"location"`
	Description string    `bson:"description" json:"description"`
	Price       int       `bson:"price" json:"price"` // per-unit price
	Image       string    `bson:"image" json:"image"`
	Slots       []Slot    `bson:"slots" json:"slots"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FindSlot returns the slot matching the given date and time exactly, or nil.
func (e *Experience) FindSlot(date, timeOfDay string) *Slot {
	for i := range e.Slots {
		if e.Slots[i].Date == date && e.Slots[i].Time == timeOfDay {
			return &e.Slots[i]
		}
	}
	return nil
}
