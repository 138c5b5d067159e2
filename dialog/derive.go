package dialog

// Controls describes which footer actions exist and whether each can be
// activated. It is derived fresh from a Config snapshot; nothing here is
// stored between renders.
type Controls struct {
	// FooterVisible is false when the footer is suppressed or when both
	// actions are hidden. An empty footer bar never renders.
	FooterVisible bool

	ConfirmVisible bool
	ConfirmEnabled bool
	// ConfirmBusy marks the confirm action for busy styling. A busy
	// confirm is never enabled.
	ConfirmBusy bool

	CancelVisible bool
	CancelEnabled bool
}

// DeriveControls computes the footer capabilities for a configuration.
// Both the render path and the gesture path consult this one function, so
// an action that renders as non-interactable is also impossible to
// activate.
//
// Composition order matters for confirm: HideFooter and HideConfirm decide
// visibility, then Busy and ConfirmDisabled are ANDed onto enablement.
// Setting both Busy and ConfirmDisabled is well-defined and keeps the
// action disabled until both clear.
func DeriveControls(cfg Config) Controls {
	footer := !cfg.HideFooter

	c := Controls{
		ConfirmVisible: footer && !cfg.HideConfirm,
		CancelVisible:  footer && !cfg.HideCancel,
	}
	c.FooterVisible = c.ConfirmVisible || c.CancelVisible
	c.ConfirmBusy = c.ConfirmVisible && cfg.Busy
	c.ConfirmEnabled = c.ConfirmVisible && !cfg.Busy && !cfg.ConfirmDisabled
	c.CancelEnabled = c.CancelVisible
	return c
}
