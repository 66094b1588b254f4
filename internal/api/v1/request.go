package v1

type CreateTransactionRequest struct {
	Title  string `json:"title" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Type   string `json:"type" validate:"required,txtype"`
}
