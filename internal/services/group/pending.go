package group

import (
	"mlsbridge/internal/mlserr"
)

// HasPendingCommit reports whether a self-authored commit awaits merging.
func (s *Session) HasPendingCommit() (bool, error) {
	state, err := s.load()
	if err != nil {
		return false, err
	}
	pending, err := s.engine.HasPendingCommit(state)
	if err != nil {
		return false, mlserr.Translate(err, mlserr.KindProtocol)
	}
	return pending, nil
}

// MergePendingCommit adopts the outstanding self-authored commit. The engine
// re-checks it against the stored state, so a commit overtaken by another
// member's commit cannot be merged.
func (s *Session) MergePendingCommit() error {
	state, err := s.load()
	if err != nil {
		return err
	}
	next, err := s.engine.MergePendingCommit(state)
	if err != nil {
		return mlserr.Translate(err, mlserr.KindProtocol)
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.logTransition("pending commit merged", next)
	return nil
}

// ClearPendingCommit discards the outstanding self-authored commit. It is a
// no-op when nothing is pending.
func (s *Session) ClearPendingCommit() error {
	state, err := s.load()
	if err != nil {
		return err
	}
	next, err := s.engine.ClearPendingCommit(state)
	if err != nil {
		return mlserr.Translate(err, mlserr.KindProtocol)
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.log.Debug("pending commit cleared")
	return nil
}
