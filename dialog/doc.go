// Package dialog implements a modal confirmation dialog for Bubble Tea
// programs.
//
// The dialog holds no business state. Everything it shows and every
// decision it gates lives in the Config the host passes to each View and
// Update call: visibility, labels, the disabled and busy flags, and the
// intent callbacks. The component never flips its own visibility; user
// gestures resolve to at most one callback per gesture (OnConfirm,
// OnCancel, or OnRequestClose) and the host decides what happens next.
// Escape and backdrop clicks are dismiss requests routed to
// OnRequestClose, never to OnCancel.
//
// Interactability is derived, not tracked. DeriveControls reduces a
// Config to the set of visible and enabled footer actions, and both the
// renderer and the input paths consult that same derivation, so a
// disabled or busy confirm action cannot fire: it is skipped by focus
// cycling, gets no mouse hit region, and its activation path re-checks
// enablement.
//
// A Model carries only presentation state that cannot contradict the
// Config: focus, hover, scroll offset and the busy spinner phase. Keep
// one Model for the life of the program and Reset it when a new dialog
// opens.
//
// Body content beyond plain text is built from Sections (Text, Checkbox,
// Input, List, Spacer, When, Custom). Sections are rebuilt every frame
// and write through caller-owned pointers, following the same
// externalized-state rule as the dialog itself.
package dialog
