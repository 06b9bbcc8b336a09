package config

import "errors"

// ErrNilConfig indicates Load was called with a nil configuration pointer.
var ErrNilConfig = errors.New("config: nil configuration pointer")
