package service

import "errors"

// ErrNoValidRecords indicates ingestion produced nothing to enrich.
var ErrNoValidRecords = errors.New("no valid records in input")
