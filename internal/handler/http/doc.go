// Package http implements the REST API of the development backend.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging and bearer authentication are handled here before
// requests are delegated to the service layer.
package http
