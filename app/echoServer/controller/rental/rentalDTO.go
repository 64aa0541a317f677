package rental

type RentFilmReq struct {
	FilmID     int64  `json:"film_id" validate:"required,gt=0"`
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	StaffID    int64  `json:"staff_id" validate:"omitempty,gt=0"`
	RentalDate string `json:"rental_date" validate:"omitempty"`
}

type ReturnFilmReq struct {
	RentalID   int64  `json:"rental_id" validate:"required,gt=0"`
	ReturnDate string `json:"return_date" validate:"omitempty"`
}
