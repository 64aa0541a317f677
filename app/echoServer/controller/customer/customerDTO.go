package customer

type AddCustomerReq struct {
	StoreID   int64  `json:"store_id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	AddressID int64  `json:"address_id" validate:"required,gt=0"`
}
