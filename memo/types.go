package memo

import "errors"

// ErrBadCapacity is returned by NewLRU when capacity is below 1.
var ErrBadCapacity = errors.New("memo: capacity must be >= 1")
