// Package fio is a client for the FIO bank REST API. It downloads account
// statements as typed transaction records, uploads domestic payment orders
// as the bank's import XML, and classifies every outcome into one of three
// error kinds (Failure, Warning, TemporaryUnavailable) so callers can decide
// their own retry policy.
//
// The HTTP transport is pluggable: anything with a Do method compatible with
// *http.Client can execute the requests. The library itself never retries
// and never logs errors; an optional zerolog.Logger can be injected to trace
// request/response exchanges.
package fio
