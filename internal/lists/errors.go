package lists

import "errors"

var (
	ErrNotFound   = errors.New("list not found")
	ErrExists     = errors.New("list already exists")
	ErrEmpty      = errors.New("list is empty")
	ErrOutOfRange = errors.New("position out of range")
	ErrNoSnapshot = errors.New("snapshot not found")
)
