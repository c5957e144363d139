// Package errors defines the coded errors returned by shoploc. The error
// middleware turns every AppError into an ErrorResponse with its HTTP status.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// AppError is an error the API can show to a user.
type AppError interface {
	error
	HTTPCode() int
	// ErrorCode is the stable machine-readable code, e.g. "LOGIN_ERROR".
	ErrorCode() string
	// Message is the user-facing text.
	Message() string
	// Details is logged and never sent to the client.
	Details() string
}

const msgInternal = "Une erreur interne est survenue. Veuillez réessayer plus tard."

// BaseError is a coded error value. Two BaseErrors match under errors.Is when
// their codes match, so WithDetails and NewNotFoundError copies still match
// the package-level values.
type BaseError struct {
	status  int
	code    string
	message string
	details string
}

func newError(status int, code, message string) *BaseError {
	return &BaseError{status: status, code: code, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.status }
func (e *BaseError) ErrorCode() string { return e.code }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.code == e.code
}

// WithDetails returns a copy of e carrying details for the logs.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WrapMessage annotates e while keeping it reachable through errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Entity names used in not-found messages and codes.
const (
	EntityUser      = "User"
	EntityMerchant  = "Merchant"
	EntityCategory  = "Category"
	EntityProduct   = "Product"
	EntityOrder     = "Order"
	EntityOrderLine = "OrderLine"
)

// NewNotFoundError builds "<Entity> not found with ID: <id>" with code <ENTITY>_NOT_FOUND.
func NewNotFoundError(entityName string, id int64) *BaseError {
	return newError(
		http.StatusNotFound,
		strings.ToUpper(entityName)+"_NOT_FOUND",
		fmt.Sprintf("%s not found with ID: %d", entityName, id),
	)
}

// Login and session.
var (
	ErrLogin            = newError(http.StatusUnauthorized, "LOGIN_ERROR", "Identifiant ou mot de passe incorrect")
	ErrVerificationCode = newError(http.StatusUnauthorized, "VERIFICATION_CODE_ERROR", "Code de vérification incorrect. Veuillez réessayer.")
	ErrUnauthorized     = newError(http.StatusUnauthorized, "UNAUTHORIZED_ERROR", "Merci de vous authentifier pour accéder à cette ressource.")
)

// Registration.
var (
	ErrRegister           = newError(http.StatusBadRequest, "REGISTER_ERROR", "L'inscription a échoué. Veuillez réessayer.")
	ErrUserAlreadyExists  = newError(http.StatusConflict, "USER_ALREADY_EXISTS", "Cette adresse e-mail est déjà utilisée")
	ErrPasswordHashFailed = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Erreur lors du traitement du mot de passe")
)

// Not found, matched by code.
var (
	ErrUserNotFound      = NewNotFoundError(EntityUser, 0)
	ErrMerchantNotFound  = NewNotFoundError(EntityMerchant, 0)
	ErrCategoryNotFound  = NewNotFoundError(EntityCategory, 0)
	ErrProductNotFound   = NewNotFoundError(EntityProduct, 0)
	ErrOrderNotFound     = NewNotFoundError(EntityOrder, 0)
	ErrOrderLineNotFound = NewNotFoundError(EntityOrderLine, 0)
)

var (
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Les données saisies sont invalides")
	ErrMailDelivery     = newError(http.StatusInternalServerError, "MAIL_DELIVERY_FAILED", msgInternal)
	ErrInternalError    = newError(http.StatusInternalServerError, "INTERNAL_ERROR", msgInternal)
)

// DatabaseExecuteError hides a driver failure behind the generic internal message.
type DatabaseExecuteError struct {
	cause   error
	details string
}

func NewDatabaseExecuteError(cause error, details string) AppError {
	return &DatabaseExecuteError{cause: cause, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.cause.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.cause }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return msgInternal }
func (e *DatabaseExecuteError) Details() string   { return e.details }
