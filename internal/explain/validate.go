package explain

import (
	"github.com/jonathan/proofcard/internal/types"
)

// IsValidUnlockedResponse reports whether a wire payload may be treated as an
// authoritative unlocked result. Consumers that only see the raw payload must
// fail closed: anything without the unlocked status tag, a non-empty evidence
// summary, and a positive confidence score is treated as locked, so a
// malformed or tampered unlocked-looking payload never passes.
func IsValidUnlockedResponse(payload map[string]any) bool {
	status, ok := payload["status"].(string)
	if !ok || status != types.StatusUnlocked {
		return false
	}

	summary, ok := payload["evidence_summary"].(string)
	if !ok || summary == "" {
		return false
	}

	score, ok := payload["confidence_score"].(float64)
	if !ok || score <= 0 {
		return false
	}

	return true
}
