package exceptions

type Kind int

const (
	KindValidation Kind = iota
	KindStoreFailure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStoreFailure:
		return "store failure"
	}
	return "unknown"
}

const (
	MessageRequired   = "Recipe and Ingredients are required"
	MessageSaveFailed = "An error occurred while saving data."
	MessageLoadFailed = "An error occurred while loading data."
	MessageDelFailed  = "An error occurred while deleting data."
)

// UserError is the single message shown to the user. Cause is kept for
// logging and is never rendered.
type UserError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (ue *UserError) Error() string {
	return ue.Message
}

func (ue *UserError) Unwrap() error {
	return ue.Cause
}

func Validation(message string) *UserError {
	return &UserError{
		Kind:    KindValidation,
		Message: message,
	}
}

func StoreFailure(message string, cause error) *UserError {
	return &UserError{
		Kind:    KindStoreFailure,
		Message: message,
		Cause:   cause,
	}
}
