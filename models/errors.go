package models

import "errors"

// ErrInvalidQueueItem is returned when a queue item has no payload matching
// its type.
var ErrInvalidQueueItem = errors.New("invalid sync queue item")
