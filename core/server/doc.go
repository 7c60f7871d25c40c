// Package server holds the HTTP server configuration.
//
// The actual Fiber application is assembled in the start command; this package
// only owns the configuration surface (listen port and the API key protecting
// the admin endpoints).
package server
