package restore

// Mode selects the remediation behavior for a whole run. It is plain data:
// the classifier and the command layer both switch on it, which keeps the
// classification rules exhaustively checkable in one place.
type Mode string

const (
	// ModeUndelete removes top-of-chain delete markers, exposing the version
	// beneath as current again.
	ModeUndelete Mode = "undelete"
	// ModeRevert deletes the current version outright, permanently promoting
	// the previous version. Irreversible.
	ModeRevert Mode = "revert"
)

func (m Mode) Destructive() bool {
	return m == ModeRevert
}
