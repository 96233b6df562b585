// Package client talks to the remote card database.
//
// Client is the transport-agnostic contract used by the services layer;
// HTTPClient implements it against the public REST API. Every call is a
// single attempt paced by a token-bucket limiter, with no retry or caching.
//
// A 404 from a single-resource endpoint surfaces as common.ErrorNotFound.
// Any other failure is wrapped in *Error and matches ErrUpstream.
package client
