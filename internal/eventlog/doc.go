// Package eventlog buffers the gallery's event feed in a fixed-size ring.
package eventlog
