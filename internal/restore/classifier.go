package restore

import (
	"time"

	"VelRestore/internal/scan"
)

type ActionKind int

const (
	ActionSkip ActionKind = iota
	ActionRemoveMarker
	ActionRevert
)

const (
	SkipNotDeleted    = "not currently deleted"
	SkipNoPrevious    = "no previous version"
	SkipUseUndelete   = "currently deleted, use undelete mode"
	SkipNoRecoverable = "no recoverable version"
)

// Action is the classifier's verdict for one key. TargetVersionID is the
// version the executor deletes (the marker for undelete, the current version
// for revert); the Exposed fields describe the version that becomes current
// afterwards.
type Action struct {
	Kind             ActionKind
	Key              string
	TargetVersionID  string
	ExposedVersionID string
	ExposedSize      int64
	ExposedModified  time.Time
	SkipReason       string
}

// Classify maps one complete version chain to exactly one action. It is a
// pure function of (mode, chain).
func Classify(mode Mode, chain *scan.Chain) Action {
	head := chain.Head()

	switch mode {
	case ModeRevert:
		if head.IsDeleteMarker {
			return skip(chain.Key, SkipUseUndelete)
		}
		if len(chain.Records) < 2 {
			return skip(chain.Key, SkipNoPrevious)
		}
		exposed := chain.Records[1]
		return Action{
			Kind:             ActionRevert,
			Key:              chain.Key,
			TargetVersionID:  head.VersionID,
			ExposedVersionID: exposed.VersionID,
			ExposedSize:      exposed.Size,
			ExposedModified:  exposed.LastModified,
		}

	default: // ModeUndelete
		if !head.IsDeleteMarker {
			return skip(chain.Key, SkipNotDeleted)
		}
		// Never propose removing a marker without proof that a real version
		// survives somewhere beneath it; a marker-only chain means every
		// prior version has expired.
		if !hasRealVersion(chain) {
			return skip(chain.Key, SkipNoRecoverable)
		}
		exposed := chain.Records[1]
		return Action{
			Kind:             ActionRemoveMarker,
			Key:              chain.Key,
			TargetVersionID:  head.VersionID,
			ExposedVersionID: exposed.VersionID,
			ExposedSize:      exposed.Size,
			ExposedModified:  exposed.LastModified,
		}
	}
}

func hasRealVersion(chain *scan.Chain) bool {
	for _, r := range chain.Records {
		if !r.IsDeleteMarker {
			return true
		}
	}
	return false
}

func skip(key, reason string) Action {
	return Action{Kind: ActionSkip, Key: key, SkipReason: reason}
}
