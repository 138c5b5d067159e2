// Package overlay composites a foreground block, typically a dialog, over
// an already-rendered background frame. The background is dimmed and the
// foreground centered; splicing is ANSI-aware so styled backgrounds divide
// cleanly at the overlay edges.
package overlay
