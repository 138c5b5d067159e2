// Package jobs simulates background work for the gallery's busy-dialog
// demos. A Store holds snapshot state the UI polls on its tick; a Runner
// advances jobs on their own goroutines, the same shape a real async
// operation behind a busy confirm would take.
package jobs
