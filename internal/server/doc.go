// Package server runs the development backend's HTTP server, including
// startup, signal handling, and graceful shutdown.
package server
