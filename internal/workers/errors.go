package workers

import "errors"

var ErrWorkerAlreadyStarted = errors.New("worker already started")
