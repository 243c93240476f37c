// Package server hosts slider survey trials over HTTP. Each trial is
// rendered into an in-memory surface, served as HTML, and finished by a form
// post whose result is handed to a ResultSink.
package server
