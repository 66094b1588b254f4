package constants

const (
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeInvalidRequestBody   = "INVALID_REQUEST_BODY"
	ErrCodeInvalidTransactionID = "INVALID_TRANSACTION_ID"
	ErrCodeSessionRequired      = "SESSION_REQUIRED"
	ErrCodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
	ErrCodeOperationFailed      = "OPERATION_FAILED"
)

const (
	ErrMsgValidationFailed     = "request validation failed"
	ErrMsgInvalidRequestBody   = "failed to parse request body"
	ErrMsgInvalidTransactionID = "transaction id must be a valid UUID"
	ErrMsgSessionRequired      = "session cookie is required"
	ErrMsgTransactionNotFound  = "Transaction not found"
	ErrMsgOperationFailed      = "Internal server error"
)

const MessageErrorFormat = "field %s is invalid or missing"

var errorMessages = map[string]string{
	ErrCodeValidationFailed:     ErrMsgValidationFailed,
	ErrCodeInvalidRequestBody:   ErrMsgInvalidRequestBody,
	ErrCodeInvalidTransactionID: ErrMsgInvalidTransactionID,
	ErrCodeSessionRequired:      ErrMsgSessionRequired,
	ErrCodeTransactionNotFound:  ErrMsgTransactionNotFound,
	ErrCodeOperationFailed:      ErrMsgOperationFailed,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgOperationFailed
}
