package dfs

import "errors"

// ErrNetworkNil is returned when a nil Network is passed to a dfs function.
var ErrNetworkNil = errors.New("dfs: network is nil")
