package model

// ViewState represents the lifecycle state of the QR window
type ViewState string

const (
	// StateIdle means the window has been created but no query started yet
	StateIdle ViewState = "Idle"

	// StateLoading means the active-tab query is in flight
	StateLoading ViewState = "Loading"

	// StateReady means a QR code is rendered and actions are enabled
	StateReady ViewState = "Ready"

	// StateErrored means the tab was unavailable, restricted, or encoding failed
	StateErrored ViewState = "Errored"
)

// String returns the string representation of ViewState
func (vs ViewState) String() string {
	return string(vs)
}

// CanRender returns true if a user-driven re-render is allowed from this state.
// A size change may re-enter rendering from Ready, and from Errored when the
// stored URL itself was valid (the caller checks the URL separately).
func (vs ViewState) CanRender() bool {
	return vs == StateReady || vs == StateErrored
}
