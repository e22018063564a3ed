package exceptions

import "fmt"

type ServiceError struct {
	StatusCode int
	Cause      error
}

func (se *ServiceError) Error() string {
	return se.Cause.Error()
}

func (se *ServiceError) Unwrap() error {
	return se.Cause
}

// Status wraps a non-successful store response.
func Status(method string, url string, statusCode int) *ServiceError {
	return &ServiceError{
		StatusCode: statusCode,
		Cause:      fmt.Errorf("%s %s returned status %d", method, url, statusCode),
	}
}

type ConflictError struct {
	Resource string
	Id       string
}

func (ce *ConflictError) Error() string {
	return fmt.Sprintf("Found conflicting %s with id: %s", ce.Resource, ce.Id)
}

func Conflict(resource string, id string) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Id:       id,
	}
}

type NotFoundError struct {
	Resource string
	Id       string
}

func (nfe *NotFoundError) Error() string {
	return fmt.Sprintf("Could not find a %s with id: %s", nfe.Resource, nfe.Id)
}

func NotFound(resource string, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Id:       id,
	}
}

type InvalidInputError struct {
	Message string
}

func (ie *InvalidInputError) Error() string {
	return ie.Message
}

func InvalidInput(message string) *InvalidInputError {
	return &InvalidInputError{
		Message: message,
	}
}

// InvalidResponseError marks a store reply that decoded but broke the
// record contract, such as a created recipe without an id.
type InvalidResponseError struct {
	Message string
}

func (ir *InvalidResponseError) Error() string {
	return ir.Message
}

func InvalidResponse(format string, args ...any) *InvalidResponseError {
	return &InvalidResponseError{
		Message: fmt.Sprintf(format, args...),
	}
}
