// Package store owns the in-memory train and booking collections and is
// the only writer of their flat-file archive. The process is single
// threaded by contract, so there is no locking here; every mutation runs
// to completion, flushes to disk, and only then can the next one start.
package store

import "errors"

var ErrTrainNotFound = errors.New("train not found")

var ErrBookingNotFound = errors.New("booking not found")

// ErrDuplicateTrain is returned when an administrator re-uses an existing
// train id.
var ErrDuplicateTrain = errors.New("a train with this id already exists")
