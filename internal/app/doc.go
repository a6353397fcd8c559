// Package app wires the routing engine into a runnable program: it builds the
// logger, loads the fleet, applies weather from the command line, prints the
// route report and optionally serves the HTTP API.
package app
