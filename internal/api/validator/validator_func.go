package validator

import (
	"github.com/go-playground/validator/v10"
)

const (
	TransactionTypeTag = "txtype"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	TransactionTypeTag: ValidateTransactionType,
}

// ValidateTransactionType accepts exactly the two lowercase literals;
// no case folding, no synonyms.
func ValidateTransactionType(fl validator.FieldLevel) bool {
	t := fl.Field().String()
	return t == "credit" || t == "debit"
}
