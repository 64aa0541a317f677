package model

import "time"

type Customer struct {
	ID         int64     `db:"customer_id" json:"customer_id"`
	StoreID    int64     `db:"store_id" json:"store_id"`
	FirstName  string    `db:"first_name" json:"first_name"`
	LastName   string    `db:"last_name" json:"last_name"`
	Email      *string   `db:"email" json:"email,omitempty"`
	AddressID  int64     `db:"address_id" json:"address_id"`
	Active     bool      `db:"active" json:"active"`
	CreateDate time.Time `db:"create_date" json:"create_date"`
	LastUpdate time.Time `db:"last_update" json:"last_update"`
}

// CustomerDetails is the /customerdetails payload: the customer plus their
// full rental history, open rentals included.
type CustomerDetails struct {
	Customer Customer     `json:"customer"`
	Rentals  []HistoryRow `json:"rentals"`
}
