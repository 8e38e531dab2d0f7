package shim

type ErrorType string

const ErrTypeBadRequest ErrorType = "ERR_BAD_REQUEST"
const ErrTypeService ErrorType = "ERR_SERVICE"

type Error struct {
	Errors []error
	Type   ErrorType
}

func (se *Error) Error() string {
	if se.Cause() != nil {
		return se.Cause().Error()
	}
	return ""
}

func (se *Error) Cause() error {
	switch len(se.Errors) {
	case 0:
		return nil
	default:
		return se.Errors[0]
	}
}

func NewShimError(cause error, errType ErrorType) *Error {
	return &Error{Errors: []error{cause}, Type: errType}
}

// NewBadRequestError tags cause as a caller mistake, mapped to a 4xx status
// at the transport boundary.
func NewBadRequestError(cause error) *Error {
	return NewShimError(cause, ErrTypeBadRequest)
}

// NewServiceError tags cause as a server-side failure, mapped to a 5xx status
// at the transport boundary.
func NewServiceError(cause error) *Error {
	return NewShimError(cause, ErrTypeService)
}

// IsBadRequest reports whether err was tagged as a caller mistake. Untagged
// errors are treated as server-side failures.
func IsBadRequest(err error) bool {
	if se, ok := err.(*Error); ok {
		return se.Type == ErrTypeBadRequest
	}
	return false
}
