package stock

import (
	"github.com/pkg/errors"
)

// Error kinds returned by table operations. Use errors.Cause to compare.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrNotFound            = errors.New("not found")
	ErrUnsupportedFunction = errors.New("unsupported function")
)

var kinds = map[error]string{
	ErrInvalidInput:        "InvalidInput",
	ErrInvalidNumber:       "InvalidNumber",
	ErrNotFound:            "NotFound",
	ErrUnsupportedFunction: "UnsupportedFunction",
}

// Kind returns the name of the error kind of err, or "Internal" when err was
// not produced by a table operation.
func Kind(err error) string {
	if k, ok := kinds[errors.Cause(err)]; ok {
		return k
	}
	return "Internal"
}
