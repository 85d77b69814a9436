package entities

import "time"

// Book is a single catalog record. The identifier is assigned by the store.
type Book struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"size:512" json:"title"`
	Author string `gorm:"size:256" json:"author"`
	Year   int    `json:"year"`
}

// ApplyDefaults fills the year with the current calendar year when it is unset.
func (b *Book) ApplyDefaults(now time.Time) {
	if b.Year == 0 {
		b.Year = now.Year()
	}
}
