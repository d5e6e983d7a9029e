// Package cli implements the interactive terminal client for Rentora.
//
// It wires the configuration, the local database, the REST client, and the
// session store together (see NewApp), then runs a read-eval-print loop
// dispatching user commands (see runREPL). Command handlers prompt for their
// own input through small seams so tests can drive them without a terminal.
package cli
