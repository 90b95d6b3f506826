package bitbucket

import (
	"errors"
	"fmt"
)

// Phase identifies which part of a sync run failed.
type Phase string

const (
	// PhaseRepositories is the user-owned repository sync.
	PhaseRepositories Phase = "repositories"

	// PhaseTeams is the team-repository sync.
	PhaseTeams Phase = "team repositories"
)

// SyncError translates a malformed API response into the user-facing
// instruction to reconnect the account. The phase keeps repository and
// team failures distinguishable.
type SyncError struct {
	Phase Phase
	Err   error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("bitbucket: could not sync your %s, try reconnecting your account", e.Phase)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// IsSyncError reports whether err is a SyncError for the given phase.
func IsSyncError(err error, phase Phase) bool {
	var syncErr *SyncError
	return errors.As(err, &syncErr) && syncErr.Phase == phase
}
