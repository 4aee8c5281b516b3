// Package domain defines domain-level errors for the bhavcopy sync feature.
package domain

import "errors"

// Stage errors for one sync run.
// Every stage wraps its failure in exactly one of these so the entry point can report
// which step aborted the run with errors.Is.
var (
	// ErrFetch indicates that the bhavcopy archive could not be downloaded
	// (network failure or non-2xx status).
	ErrFetch = errors.New("fetch bhavcopy archive")

	// ErrExtract indicates that the archive is corrupt, the expected entry is missing,
	// or the entry is not valid UTF-8.
	ErrExtract = errors.New("extract bhavcopy entry")

	// ErrParse indicates a schema mismatch or a field that could not be converted.
	ErrParse = errors.New("parse bhavcopy csv")

	// ErrDispatch indicates that the payload could not be delivered to the ingest endpoint,
	// including a non-success response from the endpoint.
	ErrDispatch = errors.New("dispatch sync payload")

	// ErrConfig indicates invalid runtime configuration.
	ErrConfig = errors.New("invalid configuration")
)

// Stage は err がどの段階で発生したかを返します。該当しない場合は "unknown" です。
func Stage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfig):
		return "config"
	case errors.Is(err, ErrFetch):
		return "fetch"
	case errors.Is(err, ErrExtract):
		return "extract"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrDispatch):
		return "dispatch"
	default:
		return "unknown"
	}
}
