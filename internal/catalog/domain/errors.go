package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

var ErrUnknownCategory = fmt.Errorf("%w: unknown product category", ErrInvalidArgument)
