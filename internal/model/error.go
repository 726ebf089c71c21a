package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeValidation         = "VALIDATION_FAILED"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeProductOutOfStock  = "PRODUCT_OUT_OF_STOCK"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInvalidLineItem    = "INVALID_LINE_ITEM"
	ErrCodeCartEmpty          = "CART_EMPTY"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodePaymentDeclined    = "PAYMENT_DECLINED"
	ErrCodeInvalidPayment     = "INVALID_PAYMENT_METHOD"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeInvalidWasteType   = "INVALID_WASTE_TYPE"
	ErrCodeRequestNotFound    = "REQUEST_NOT_FOUND"
	ErrCodeNotCancellable     = "REQUEST_NOT_CANCELLABLE"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrProductOutOfStock  = NewDomainError(ErrCodeProductOutOfStock, "Product is out of stock")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidLineItem    = NewDomainError(ErrCodeInvalidLineItem, "Line item has a negative price or quantity")
	ErrCartEmpty          = NewDomainError(ErrCodeCartEmpty, "Cart is empty")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Invalid status transition")
	ErrPaymentDeclined    = NewDomainError(ErrCodePaymentDeclined, "Payment was declined")
	ErrInvalidPayment     = NewDomainError(ErrCodeInvalidPayment, "Unsupported payment method")
	ErrUserNotFound       = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrEmailTaken         = NewDomainError(ErrCodeEmailTaken, "An account with this email already exists")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid email or password")
	ErrInvalidWasteType   = NewDomainError(ErrCodeInvalidWasteType, "Waste type is not declared by this industry")
	ErrRequestNotFound    = NewDomainError(ErrCodeRequestNotFound, "Pickup request not found")
	ErrNotCancellable     = NewDomainError(ErrCodeNotCancellable, "Pickup request can no longer be cancelled")
)
