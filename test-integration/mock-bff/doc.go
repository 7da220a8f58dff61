// Package integration contains the end-to-end tests of the mock BFF server.
// They start the server on a local listener and talk to it through the BFF
// HTTP client, the way UI tests consume it.
package integration
