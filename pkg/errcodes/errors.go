package errcodes

import (
	"fmt"
	"net/http"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		http.StatusNotFound,
		resource + " not found.",
		"not_found",
	}
}

// AlreadyExists returns a 400 error for a uniqueness conflict on the given
// resource (duplicate name or ISBN).
func AlreadyExists(resource string) error {
	return &Error{
		http.StatusBadRequest,
		resource + " already exists.",
		"already_exists",
	}
}

// BookUnavailable returns a 400 error for borrowing a book that is out.
func BookUnavailable() error {
	return &Error{
		http.StatusBadRequest,
		"Book is not available.",
		"book_unavailable",
	}
}

// BorrowLimitReached returns a 400 error for a borrower at the loan cap.
func BorrowLimitReached(limit int) error {
	return &Error{
		http.StatusBadRequest,
		fmt.Sprintf("Cannot borrow more than %d books.", limit),
		"borrow_limit_reached",
	}
}

// AlreadyReturned returns a 400 error for returning a closed borrowing.
func AlreadyReturned() error {
	return &Error{
		http.StatusBadRequest,
		"Book already returned.",
		"already_returned",
	}
}

// Unauthorized returns a 401 error with the given message.
func Unauthorized(msg string) error {
	return &Error{
		http.StatusUnauthorized,
		msg,
		"unauthorized",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		http.StatusUnsupportedMediaType,
		"Unsupported Media Type",
		"unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Unknown Parameter %q", param),
		"unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_error",
	}
}

func MalformedPayload() error {
	return &Error{
		http.StatusBadRequest,
		"Malformed Payload",
		"malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		http.StatusBadRequest,
		"Request body can't be empty.",
		"empty_request_body",
	}
}
