package query

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected listing query.
type ErrorKind string

const (
	KindUnknownField     ErrorKind = "UnknownField"
	KindProhibitedFilter ErrorKind = "ProhibitedFilter"
	KindInvalidSortby    ErrorKind = "InvalidSortby"
	KindInvalidOrder     ErrorKind = "InvalidOrder"
	KindInvalidType      ErrorKind = "InvalidType"
	KindInvalidTechTag   ErrorKind = "InvalidTechTag"
)

// ValidationError is returned for a query the API refuses. Message is safe
// to show to clients as is.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidationError unwraps err into a *ValidationError if it holds one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func unknownField(name string) error {
	return &ValidationError{Kind: KindUnknownField, Message: fmt.Sprintf("%s is an invalid filter.", name)}
}

func prohibitedFilter(name string) error {
	return &ValidationError{Kind: KindProhibitedFilter, Message: fmt.Sprintf("Cannot filter by %s.", name)}
}

var (
	errInvalidSortby  = &ValidationError{Kind: KindInvalidSortby, Message: "Invalid sortby query."}
	errInvalidOrder   = &ValidationError{Kind: KindInvalidOrder, Message: "Invalid order query."}
	errInvalidType    = &ValidationError{Kind: KindInvalidType, Message: "Invalid type query."}
	errInvalidTechTag = &ValidationError{Kind: KindInvalidTechTag, Message: "Invalid tech tag query."}
)
