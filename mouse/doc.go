// Package mouse maps raw Bubble Tea mouse messages onto named screen
// regions. Views register Rects in a HitMap each render pass; the Handler
// then classifies presses, wheel events, motion, and drags into Actions
// the update loop can switch on.
package mouse
