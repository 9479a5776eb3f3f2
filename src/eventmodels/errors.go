package eventmodels

import "errors"

var ErrInvalidRequestType = errors.New("invalid request type")
