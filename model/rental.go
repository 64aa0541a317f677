package model

import "time"

// Rental mirrors one row of the rental table. A rental is open while
// ReturnDate is nil; the allocator guarantees at most one open rental per
// inventory unit.
type Rental struct {
	ID          int64      `db:"rental_id" json:"rental_id"`
	RentalDate  time.Time  `db:"rental_date" json:"rental_date"`
	InventoryID int64      `db:"inventory_id" json:"inventory_id"`
	CustomerID  int64      `db:"customer_id" json:"customer_id"`
	ReturnDate  *time.Time `db:"return_date" json:"return_date,omitempty"`
	StaffID     int64      `db:"staff_id" json:"staff_id"`
}

// HistoryRow is one rental in a customer's history, joined with the film it
// was for.
type HistoryRow struct {
	RentalID   int64      `db:"rental_id" json:"rental_id"`
	FilmID     int64      `db:"film_id" json:"film_id"`
	Title      string     `db:"title" json:"title"`
	RentalDate time.Time  `db:"rental_date" json:"rental_date"`
	ReturnDate *time.Time `db:"return_date" json:"return_date,omitempty"`
}
