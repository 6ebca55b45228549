// Package http implements the HTTP transport layer of the relay.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and body-integrity
// concerns are all handled at this layer before requests are forwarded to
// the service layer. Every payload field the relay moves is ciphertext
// produced client-side; no handler in this package can decrypt anything.
package http
