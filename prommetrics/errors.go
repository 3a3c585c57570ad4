package prommetrics

import "errors"

var errPartialBatch = errors.New("batch save had failures")
