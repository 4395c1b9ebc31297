package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure at an operation boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindLoad
	KindEncode
	KindSaveIO
	KindNoImage
)

func (k Kind) String() string {
	switch k {
	case KindLoad:
		return "load failure"
	case KindEncode:
		return "encode failure"
	case KindSaveIO:
		return "save failure"
	case KindNoImage:
		return "no image"
	default:
		return "unknown failure"
	}
}

// Error carries both the technical cause and a short message fit for the
// status bar.
type Error struct {
	Kind    Kind
	Op      string
	UserMsg string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrLoad    = &Error{Kind: KindLoad}
	ErrEncode  = &Error{Kind: KindEncode}
	ErrSaveIO  = &Error{Kind: KindSaveIO}
	ErrNoImage = &Error{Kind: KindNoImage}
)

func Load(op string, err error) *Error {
	return &Error{Kind: KindLoad, Op: op, Err: err, UserMsg: fmt.Sprintf("Error loading file: %v", err)}
}

func Encode(op string, err error) *Error {
	return &Error{Kind: KindEncode, Op: op, Err: err, UserMsg: fmt.Sprintf("Error during conversion: %v", err)}
}

func SaveIO(op string, err error) *Error {
	return &Error{Kind: KindSaveIO, Op: op, Err: err, UserMsg: fmt.Sprintf("Could not write file: %v", err)}
}

func NoImage(op string) *Error {
	return &Error{Kind: KindNoImage, Op: op, UserMsg: "No image is loaded."}
}

// UserMessage extracts the status-bar text from err.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.UserMsg != "" {
		return e.UserMsg
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
