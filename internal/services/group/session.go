package group

import (
	"log/slog"

	"github.com/samber/lo"

	"mlsbridge/internal/domain"
	"mlsbridge/internal/mlserr"
)

// Session is a handle on one group. It is cheap to create; all state lives
// in storage.
type Session struct {
	groupID    domain.GroupID
	engine     domain.Engine
	states     domain.GroupStateStore
	log        *slog.Logger
	deferMerge bool
}

// Option configures a Session.
type Option func(*Session)

// WithDeferredMerge leaves self-authored commits pending until
// MergePendingCommit is called, instead of merging them immediately.
func WithDeferredMerge() Option {
	return func(s *Session) { s.deferMerge = true }
}

// WithLogger sets the logger for transition events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a session for groupID. The group state must already be stored.
func New(groupID domain.GroupID, engine domain.Engine, states domain.GroupStateStore, opts ...Option) *Session {
	s := &Session{
		groupID: groupID.Clone(),
		engine:  engine,
		states:  states,
		log:     slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("group", s.groupID.String())
	return s
}

// GroupID returns the id the session is bound to.
func (s *Session) GroupID() domain.GroupID { return s.groupID.Clone() }

func (s *Session) load() (domain.GroupState, error) {
	state, ok, err := s.states.ReadGroupState(s.groupID)
	if err != nil {
		return nil, mlserr.Storage(err)
	}
	if !ok {
		return nil, mlserr.InvalidState("no stored state for group " + s.groupID.String())
	}
	return state, nil
}

func (s *Session) persist(state domain.GroupState) error {
	if err := s.states.WriteGroupState(s.groupID, state); err != nil {
		return mlserr.Storage(err)
	}
	return nil
}

// settle merges a fresh self-authored commit unless merging is deferred.
func (s *Session) settle(state domain.GroupState) (domain.GroupState, error) {
	if s.deferMerge {
		return state, nil
	}
	merged, err := s.engine.MergePendingCommit(state)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindProtocol)
	}
	return merged, nil
}

func (s *Session) logTransition(msg string, state domain.GroupState, args ...any) {
	if epoch, err := s.engine.CurrentEpoch(state); err == nil {
		args = append(args, "epoch", uint64(epoch))
	}
	s.log.Debug(msg, args...)
}

// AddMember commits the addition of the member who published keyPackage.
// The returned commit carries one welcome for the new member.
func (s *Session) AddMember(keyPackage []byte) (domain.Commit, error) {
	state, err := s.load()
	if err != nil {
		return domain.Commit{}, err
	}
	kp, err := s.engine.ParseKeyPackage(keyPackage)
	if err != nil {
		return domain.Commit{}, mlserr.Translate(err, mlserr.KindCodec)
	}
	out, err := s.engine.CommitAdd(state, []domain.KeyPackage{kp})
	if err != nil {
		return domain.Commit{}, mlserr.Translate(err, mlserr.KindProtocol)
	}
	next, err := s.settle(out.State)
	if err != nil {
		return domain.Commit{}, err
	}
	if err := s.persist(next); err != nil {
		return domain.Commit{}, err
	}
	s.logTransition("member added", next, "member", kp.Credential.Text(), "pending", s.deferMerge)
	return domain.Commit{Commit: out.Commit, Welcome: nonNil(out.Welcomes)}, nil
}

// RemoveMember commits the removal of the first member whose credential
// identity equals memberID.
func (s *Session) RemoveMember(memberID string) (domain.Commit, error) {
	state, err := s.load()
	if err != nil {
		return domain.Commit{}, err
	}
	members, err := s.engine.Members(state)
	if err != nil {
		return domain.Commit{}, mlserr.Translate(err, mlserr.KindProtocol)
	}
	target, ok := lo.Find(members, func(m domain.Member) bool {
		return m.Credential.Text() == memberID
	})
	if !ok {
		return domain.Commit{}, mlserr.MemberNotFound(memberID)
	}
	out, err := s.engine.CommitRemove(state, []domain.LeafIndex{target.Index})
	if err != nil {
		return domain.Commit{}, mlserr.Translate(err, mlserr.KindProtocol)
	}
	next, err := s.settle(out.State)
	if err != nil {
		return domain.Commit{}, err
	}
	if err := s.persist(next); err != nil {
		return domain.Commit{}, err
	}
	s.logTransition("member removed", next, "member", memberID, "pending", s.deferMerge)
	return domain.Commit{Commit: out.Commit, Welcome: [][]byte{}}, nil
}

// Encrypt encrypts an application message for the group. The ciphertext is
// stamped with the epoch it was produced in.
func (s *Session) Encrypt(plaintext []byte) (domain.Ciphertext, error) {
	state, err := s.load()
	if err != nil {
		return domain.Ciphertext{}, err
	}
	epoch, err := s.engine.CurrentEpoch(state)
	if err != nil {
		return domain.Ciphertext{}, mlserr.Translate(err, mlserr.KindProtocol)
	}
	data, next, err := s.engine.EncryptApplication(state, plaintext)
	if err != nil {
		return domain.Ciphertext{}, mlserr.Translate(err, mlserr.KindProtocol)
	}
	if err := s.persist(next); err != nil {
		return domain.Ciphertext{}, err
	}
	return domain.Ciphertext{Data: data, Epoch: uint64(epoch)}, nil
}

// Decrypt opens an application message. Any other message kind is rejected
// with an invalid message type error and leaves the stored state untouched.
func (s *Session) Decrypt(data []byte) ([]byte, error) {
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return s.decrypt(state, data)
}

// DecryptCiphertext is Decrypt for a boundary Ciphertext value. A ciphertext
// labelled with another epoch is rejected before the engine sees it.
func (s *Session) DecryptCiphertext(c domain.Ciphertext) ([]byte, error) {
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	epoch, err := s.engine.CurrentEpoch(state)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindProtocol)
	}
	if c.Epoch != uint64(epoch) {
		return nil, mlserr.New(mlserr.KindProtocol,
			"ciphertext for epoch %d, group is at %d", c.Epoch, uint64(epoch))
	}
	return s.decrypt(state, c.Data)
}

func (s *Session) decrypt(state domain.GroupState, data []byte) ([]byte, error) {
	msg, err := s.engine.ParseMessage(data)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindCodec)
	}
	if msg.Kind != domain.KindApplication {
		return nil, mlserr.InvalidMessageType("application message", msg.Kind)
	}
	processed, err := s.engine.ProcessIncoming(state, msg)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindProtocol)
	}
	if processed.Kind != domain.KindApplication {
		return nil, mlserr.InvalidMessageType("application message", processed.Kind)
	}
	if err := s.persist(processed.State); err != nil {
		return nil, err
	}
	return processed.Application, nil
}

// ProcessCommit applies a commit authored by another member.
func (s *Session) ProcessCommit(commit []byte) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	msg, err := s.engine.ParseMessage(commit)
	if err != nil {
		return mlserr.Translate(err, mlserr.KindCodec)
	}
	if msg.Kind != domain.KindCommit {
		return mlserr.InvalidMessageType("commit", msg.Kind)
	}
	processed, err := s.engine.ProcessIncoming(state, msg)
	if err != nil {
		return mlserr.Translate(err, mlserr.KindProtocol)
	}
	if err := s.persist(processed.State); err != nil {
		return err
	}
	s.logTransition("commit applied", processed.State, "sender", uint32(processed.Sender))
	return nil
}

// CurrentEpoch reports the stored epoch. It never writes.
func (s *Session) CurrentEpoch() (uint64, error) {
	state, err := s.load()
	if err != nil {
		return 0, err
	}
	epoch, err := s.engine.CurrentEpoch(state)
	if err != nil {
		return 0, mlserr.Translate(err, mlserr.KindProtocol)
	}
	return uint64(epoch), nil
}

func nonNil(welcomes [][]byte) [][]byte {
	if welcomes == nil {
		return [][]byte{}
	}
	return welcomes
}
