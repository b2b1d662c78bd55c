package flatgroup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mlsbridge/internal/crypto"
	"mlsbridge/internal/domain"
	"mlsbridge/internal/protocol/flatgroup"
	"mlsbridge/internal/store"
)

type member struct {
	store *store.MemoryStore
	eng   *flatgroup.Engine
	cred  domain.Credential
	state domain.GroupState
}

func newMember(t *testing.T, name string) *member {
	t.Helper()
	p := crypto.NewProvider()
	st := store.NewMemoryStore()
	sig, err := p.GenerateSignatureKeyPair()
	require.NoError(t, err)
	enc, err := sig.Encode()
	require.NoError(t, err)
	require.NoError(t, st.WriteSignatureKeyPair(sig.Public, enc))
	return &member{
		store: st,
		eng:   flatgroup.New(p, st),
		cred:  domain.Credential{Identity: []byte(name), SignatureKey: sig.Public},
	}
}

func (m *member) create(t *testing.T, groupID string) {
	t.Helper()
	st, err := m.eng.CreateGroup(domain.GroupID(groupID), m.cred)
	require.NoError(t, err)
	m.state = st
}

// keyPackage generates a key package and stores it under its reference, the
// way the identity service does on export.
func (m *member) keyPackage(t *testing.T) domain.KeyPackage {
	t.Helper()
	kp, err := m.eng.GenerateKeyPackage(m.cred)
	require.NoError(t, err)
	ref, err := m.eng.KeyPackageRef(kp)
	require.NoError(t, err)
	require.NoError(t, m.store.WriteKeyPackage(ref, kp.Raw))
	return kp
}

func (m *member) parse(t *testing.T, raw []byte) domain.Message {
	t.Helper()
	msg, err := m.eng.ParseMessage(raw)
	require.NoError(t, err)
	return msg
}

func (m *member) epoch(t *testing.T) domain.Epoch {
	t.Helper()
	e, err := m.eng.CurrentEpoch(m.state)
	require.NoError(t, err)
	return e
}

func (m *member) add(t *testing.T, joiners ...*member) domain.CommitOutput {
	t.Helper()
	kps := make([]domain.KeyPackage, 0, len(joiners))
	for _, j := range joiners {
		kps = append(kps, j.keyPackage(t))
	}
	out, err := m.eng.CommitAdd(m.state, kps)
	require.NoError(t, err)
	m.state, err = m.eng.MergePendingCommit(out.State)
	require.NoError(t, err)
	for i, j := range joiners {
		welcome := j.parse(t, out.Welcomes[i])
		j.state, err = j.eng.JoinGroup(welcome)
		require.NoError(t, err)
		require.NoError(t, j.eng.ConsumeKeyPackage(welcome))
	}
	return out
}

func (m *member) remove(t *testing.T, leaves ...domain.LeafIndex) domain.CommitOutput {
	t.Helper()
	out, err := m.eng.CommitRemove(m.state, leaves)
	require.NoError(t, err)
	m.state, err = m.eng.MergePendingCommit(out.State)
	require.NoError(t, err)
	return out
}

func (m *member) apply(t *testing.T, raw []byte) domain.ProcessedMessage {
	t.Helper()
	processed, err := m.eng.ProcessIncoming(m.state, m.parse(t, raw))
	require.NoError(t, err)
	m.state = processed.State
	return processed
}

func (m *member) send(t *testing.T, text string) []byte {
	t.Helper()
	ct, next, err := m.eng.EncryptApplication(m.state, []byte(text))
	require.NoError(t, err)
	m.state = next
	return ct
}

func TestCreateGroup_StartsAtEpochZero(t *testing.T) {
	r := require.New(t)
	a := newMember(t, "alice")
	a.create(t, "group")

	r.Equal(domain.Epoch(0), a.epoch(t))
	members, err := a.eng.Members(a.state)
	r.NoError(err)
	r.Len(members, 1)
	r.Equal("alice", members[0].Credential.Text())

	id, err := a.eng.GroupID(a.state)
	r.NoError(err)
	r.Equal(domain.GroupID("group"), id)
}

func TestCreateGroup_RequiresSignatureKey(t *testing.T) {
	a := newMember(t, "alice")
	cred := domain.Credential{Identity: []byte("alice"), SignatureKey: []byte("unknown")}
	_, err := a.eng.CreateGroup(domain.GroupID("g"), cred)
	require.ErrorIs(t, err, domain.ErrMissingKey)

	_, err = a.eng.CreateGroup(nil, a.cred)
	require.Error(t, err)
}

func TestAddJoinAndExchange(t *testing.T) {
	r := require.New(t)
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")

	out := a.add(t, b)
	r.Len(out.Welcomes, 1)
	r.Equal(domain.Epoch(1), a.epoch(t))
	r.Equal(domain.Epoch(1), b.epoch(t))

	members, err := b.eng.Members(b.state)
	r.NoError(err)
	r.Len(members, 2)
	r.Equal(domain.Epoch(1), members[1].AddedAt)

	got := b.apply(t, a.send(t, "hello bob"))
	r.Equal(domain.KindApplication, got.Kind)
	r.Equal(domain.LeafIndex(0), got.Sender)
	r.Equal("hello bob", string(got.Application))

	got = a.apply(t, b.send(t, "hi alice"))
	r.Equal("hi alice", string(got.Application))
	r.Equal(domain.LeafIndex(1), got.Sender)
}

func TestJoin_ConsumesKeyPackage(t *testing.T) {
	r := require.New(t)
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")
	a.add(t, b)

	r.Zero(b.store.Len(store.SpaceKeyPackage))
	r.Zero(b.store.Len(store.SpaceEncryptionKey))
	r.Equal(1, b.store.Len(store.SpaceEpochKeyPairs))
}

func TestJoin_KeyPackageKeptUntilConsumed(t *testing.T) {
	r := require.New(t)
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")

	out, err := a.eng.CommitAdd(a.state, []domain.KeyPackage{b.keyPackage(t)})
	r.NoError(err)
	a.state, err = a.eng.MergePendingCommit(out.State)
	r.NoError(err)
	welcome := b.parse(t, out.Welcomes[0])

	first, err := b.eng.JoinGroup(welcome)
	r.NoError(err)
	r.Equal(1, b.store.Len(store.SpaceKeyPackage))
	r.Equal(1, b.store.Len(store.SpaceEncryptionKey))

	// The first state was dropped; the same welcome joins again.
	b.state, err = b.eng.JoinGroup(welcome)
	r.NoError(err)
	r.Equal(first, b.state)
	r.Equal(1, b.store.Len(store.SpaceEpochKeyPairs))

	r.NoError(b.eng.ConsumeKeyPackage(welcome))
	r.Zero(b.store.Len(store.SpaceKeyPackage))
	r.Zero(b.store.Len(store.SpaceEncryptionKey))
	r.NoError(b.eng.ConsumeKeyPackage(welcome))

	_, err = b.eng.JoinGroup(welcome)
	r.ErrorIs(err, domain.ErrMissingKey)

	got := b.apply(t, a.send(t, "after retry"))
	r.Equal("after retry", string(got.Application))
}

func TestJoin_WithoutKeyPackageFails(t *testing.T) {
	a, b, c := newMember(t, "alice"), newMember(t, "bob"), newMember(t, "carol")
	a.create(t, "group")

	out, err := a.eng.CommitAdd(a.state, []domain.KeyPackage{b.keyPackage(t)})
	require.NoError(t, err)

	_, err = c.eng.JoinGroup(c.parse(t, out.Welcomes[0]))
	require.ErrorIs(t, err, domain.ErrMissingKey)
}

func TestDecryptOwnMessageAndRejectReplay(t *testing.T) {
	r := require.New(t)
	a := newMember(t, "alice")
	a.create(t, "group")

	ct := a.send(t, "note to self")
	got := a.apply(t, ct)
	r.Equal("note to self", string(got.Application))

	_, err := a.eng.ProcessIncoming(a.state, a.parse(t, ct))
	r.Error(err)
}

func TestThreeMembers_CommitFromJoiner(t *testing.T) {
	r := require.New(t)
	a, b, c := newMember(t, "alice"), newMember(t, "bob"), newMember(t, "carol")
	a.create(t, "group")
	a.add(t, b)

	out := b.add(t, c)
	processed := a.apply(t, out.Commit)
	r.Equal(domain.KindCommit, processed.Kind)
	r.Equal(domain.LeafIndex(1), processed.Sender)

	for _, m := range []*member{a, b, c} {
		r.Equal(domain.Epoch(2), m.epoch(t))
	}
	r.Equal("from carol", string(a.apply(t, c.send(t, "from carol")).Application))
	r.Equal("from alice", string(c.apply(t, a.send(t, "from alice")).Application))
}

func TestRemoveMember(t *testing.T) {
	r := require.New(t)
	a, b, c := newMember(t, "alice"), newMember(t, "bob"), newMember(t, "carol")
	a.create(t, "group")
	a.add(t, b, c)
	r.Equal(domain.Epoch(1), c.epoch(t))

	out := a.remove(t, 1)
	r.Empty(out.Welcomes)

	c.apply(t, out.Commit)
	r.Equal(domain.Epoch(2), c.epoch(t))
	members, err := c.eng.Members(c.state)
	r.NoError(err)
	r.Len(members, 2)

	b.apply(t, out.Commit)
	_, _, err = b.eng.EncryptApplication(b.state, []byte("still here?"))
	r.ErrorIs(err, domain.ErrInactive)

	r.Equal("bye bob", string(c.apply(t, a.send(t, "bye bob")).Application))
}

func TestCommitRemove_UnknownLeaf(t *testing.T) {
	a := newMember(t, "alice")
	a.create(t, "group")

	_, err := a.eng.CommitRemove(a.state, []domain.LeafIndex{7})
	require.ErrorIs(t, err, domain.ErrUnknownMember)
	_, err = a.eng.CommitRemove(a.state, []domain.LeafIndex{0})
	require.Error(t, err)
}

func TestPendingCommit(t *testing.T) {
	r := require.New(t)
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")

	out, err := a.eng.CommitAdd(a.state, []domain.KeyPackage{b.keyPackage(t)})
	r.NoError(err)

	pending, err := a.eng.HasPendingCommit(out.State)
	r.NoError(err)
	r.True(pending)
	epoch, err := a.eng.CurrentEpoch(out.State)
	r.NoError(err)
	r.Equal(domain.Epoch(0), epoch, "pending commit does not advance the epoch")

	_, err = a.eng.CommitAdd(out.State, []domain.KeyPackage{b.keyPackage(t)})
	r.ErrorIs(err, domain.ErrPendingCommit)

	cleared, err := a.eng.ClearPendingCommit(out.State)
	r.NoError(err)
	pending, err = a.eng.HasPendingCommit(cleared)
	r.NoError(err)
	r.False(pending)

	_, err = a.eng.MergePendingCommit(cleared)
	r.ErrorIs(err, domain.ErrNoPendingCommit)
}

func TestProcessCommit_WrongEpoch(t *testing.T) {
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")
	first := a.add(t, b)

	_, err := b.eng.ProcessIncoming(b.state, b.parse(t, first.Commit))
	require.ErrorIs(t, err, domain.ErrWrongEpoch)
}

func TestProcessCommit_OwnCommitRejected(t *testing.T) {
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")

	out, err := a.eng.CommitAdd(a.state, []domain.KeyPackage{b.keyPackage(t)})
	require.NoError(t, err)
	_, err = a.eng.ProcessIncoming(out.State, a.parse(t, out.Commit))
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrWrongEpoch)
}

func TestProcessCommit_DropsStalePendingCommit(t *testing.T) {
	r := require.New(t)
	a, b, c := newMember(t, "alice"), newMember(t, "bob"), newMember(t, "carol")
	a.create(t, "group")
	a.add(t, b)

	mine, err := b.eng.CommitAdd(b.state, []domain.KeyPackage{c.keyPackage(t)})
	r.NoError(err)
	theirs := a.remove(t, 1)

	b.state = mine.State
	removed := b.apply(t, theirs.Commit)
	pending, err := b.eng.HasPendingCommit(removed.State)
	r.NoError(err)
	r.False(pending)
	_, err = b.eng.MergePendingCommit(b.state)
	r.ErrorIs(err, domain.ErrInactive)
}

func TestEpochKeysArePruned(t *testing.T) {
	r := require.New(t)
	a, b, c := newMember(t, "alice"), newMember(t, "bob"), newMember(t, "carol")
	a.create(t, "group")
	a.add(t, b)
	out := a.add(t, c)
	b.apply(t, out.Commit)

	for _, m := range []*member{a, b} {
		old, err := m.store.ReadEncryptionEpochKeyPairs(domain.GroupID("group"), 0, 0)
		r.NoError(err)
		r.Empty(old)
	}
	r.Equal(2, a.store.Len(store.SpaceEpochKeyPairs))
}

func TestProposal_IsReportedNotApplied(t *testing.T) {
	r := require.New(t)
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")
	a.add(t, b)

	raw, err := a.eng.ProposeRemove(a.state, 1)
	r.NoError(err)
	msg := b.parse(t, raw)
	r.Equal(domain.KindProposal, msg.Kind)

	processed, err := b.eng.ProcessIncoming(b.state, msg)
	r.NoError(err)
	r.Equal(domain.KindProposal, processed.Kind)
	r.Equal(b.state, processed.State)
}

func TestParseMessage_Kinds(t *testing.T) {
	r := require.New(t)
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")
	kp := b.keyPackage(t)

	out, err := a.eng.CommitAdd(a.state, []domain.KeyPackage{kp})
	r.NoError(err)

	cases := map[domain.MessageKind][]byte{
		domain.KindKeyPackage:  kp.Raw,
		domain.KindCommit:      out.Commit,
		domain.KindWelcome:     out.Welcomes[0],
		domain.KindApplication: a.send(t, "x"),
	}
	for want, raw := range cases {
		got, err := a.eng.ParseMessage(raw)
		r.NoError(err)
		r.Equal(want, got.Kind)
	}

	_, err = a.eng.ParseMessage([]byte{0x00, 0x01})
	r.ErrorIs(err, domain.ErrDecode)
}

func TestParseKeyPackage(t *testing.T) {
	r := require.New(t)
	b := newMember(t, "bob")
	kp := b.keyPackage(t)

	parsed, err := b.eng.ParseKeyPackage(kp.Raw)
	r.NoError(err)
	r.Equal(kp.Credential, parsed.Credential)
	r.Equal(kp.InitKey, parsed.InitKey)

	_, err = b.eng.ParseKeyPackage([]byte("garbage"))
	r.ErrorIs(err, domain.ErrDecode)
}

func TestCommitAdd_RejectsTamperedKeyPackage(t *testing.T) {
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")
	kp := b.keyPackage(t)
	kp.Raw[len(kp.Raw)-1] ^= 0xff

	_, err := a.eng.CommitAdd(a.state, []domain.KeyPackage{kp})
	require.ErrorIs(t, err, domain.ErrCrypto)
}

func TestReplayRejectedAfterWindowEviction(t *testing.T) {
	r := require.New(t)
	a, b := newMember(t, "alice"), newMember(t, "bob")
	a.create(t, "group")
	a.add(t, b)

	first := a.send(t, "g0")
	b.apply(t, first)
	for i := 0; i < 1000; i++ {
		b.apply(t, a.send(t, "filler"))
	}

	_, err := b.eng.ProcessIncoming(b.state, b.parse(t, first))
	r.Error(err)

	got := b.apply(t, a.send(t, "still flowing"))
	r.Equal("still flowing", string(got.Application))
}
