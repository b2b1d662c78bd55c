package group_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mlsbridge/internal/crypto"
	"mlsbridge/internal/domain"
	"mlsbridge/internal/mlserr"
	"mlsbridge/internal/protocol/flatgroup"
	"mlsbridge/internal/services/group"
	"mlsbridge/internal/services/identity"
	"mlsbridge/internal/store"
)

var testGroupID = domain.GroupID{5, 6, 7, 8}

func newClient(t *testing.T, name string, opts ...group.Option) *identity.Client {
	t.Helper()
	cp := crypto.NewProvider()
	st := store.NewMemoryStore()
	c, err := identity.Initialize([]byte(name), identity.Deps{
		Engine:  flatgroup.New(cp, st),
		Crypto:  cp,
		Storage: st,
		Session: opts,
	})
	require.NoError(t, err)
	return c
}

// pair returns user1's session on a fresh group and user2's session after
// joining it.
func pair(t *testing.T, opts ...group.Option) (*group.Session, *group.Session) {
	t.Helper()
	r := require.New(t)

	alice := newClient(t, "user1", opts...)
	bob := newClient(t, "user2")

	s1, err := alice.CreateGroup(testGroupID)
	r.NoError(err)
	kp, err := bob.ExportKeyPackage()
	r.NoError(err)
	commit, err := s1.AddMember(kp)
	r.NoError(err)
	r.Len(commit.Welcome, 1)
	if hasPending, _ := s1.HasPendingCommit(); hasPending {
		r.NoError(s1.MergePendingCommit())
	}
	s2, err := bob.JoinGroup(commit.Welcome[0])
	r.NoError(err)
	return s1, s2
}

func TestCreateGroup_StartsAtEpochZero(t *testing.T) {
	r := require.New(t)
	s, err := newClient(t, "user1").CreateGroup(testGroupID)
	r.NoError(err)

	epoch, err := s.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(0), epoch)
	r.Equal(testGroupID, s.GroupID())

	members, err := s.Members()
	r.NoError(err)
	r.Len(members, 1)
	r.Equal("user1", members[0].Credential.Text())
}

func TestCreateGroup_ExistingGroupRejected(t *testing.T) {
	c := newClient(t, "user1")
	_, err := c.CreateGroup(testGroupID)
	require.NoError(t, err)

	_, err = c.CreateGroup(testGroupID)
	require.ErrorIs(t, err, mlserr.ErrInvalidState)
}

func TestAddMember_AdvancesEpochAndWelcomes(t *testing.T) {
	r := require.New(t)
	s1, s2 := pair(t)

	e1, err := s1.CurrentEpoch()
	r.NoError(err)
	e2, err := s2.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(1), e1)
	r.Equal(e1, e2)
	r.Equal(testGroupID, s2.GroupID())

	info, err := s2.Info()
	r.NoError(err)
	r.Equal(testGroupID.String(), info.ID)
	r.Len(info.Members, 2)
	r.Equal("user1", info.Members[0].ID)
	r.Equal("user2", info.Members[1].ID)
	r.Equal(uint64(1), info.Members[1].AddedAtEpoch)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	r := require.New(t)
	s1, s2 := pair(t)

	ct, err := s1.Encrypt([]byte("Hello, MLS!"))
	r.NoError(err)
	r.Equal(uint64(1), ct.Epoch)

	stale := ct
	stale.Epoch = 0
	_, err = s2.DecryptCiphertext(stale)
	r.ErrorIs(err, mlserr.ErrProtocol)

	pt, err := s2.DecryptCiphertext(ct)
	r.NoError(err)
	r.Equal([]byte("Hello, MLS!"), pt)

	reply, err := s2.Encrypt([]byte("hi back"))
	r.NoError(err)
	pt, err = s1.Decrypt(reply.Data)
	r.NoError(err)
	r.Equal([]byte("hi back"), pt)
}

func TestRemoveMember_UnknownMember(t *testing.T) {
	r := require.New(t)
	s1, _ := pair(t)

	_, err := s1.RemoveMember("non_existent_user")
	r.ErrorIs(err, mlserr.ErrMemberNotFound)

	epoch, err := s1.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(1), epoch)
}

func TestRemoveMember_RemovedMemberIsInactive(t *testing.T) {
	r := require.New(t)
	s1, s2 := pair(t)

	commit, err := s1.RemoveMember("user2")
	r.NoError(err)
	r.NotEmpty(commit.Commit)
	r.NotNil(commit.Welcome)
	r.Empty(commit.Welcome)

	epoch, err := s1.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(2), epoch)
	members, err := s1.Members()
	r.NoError(err)
	r.Len(members, 1)

	r.NoError(s2.ProcessCommit(commit.Commit))
	_, err = s2.Encrypt([]byte("still here?"))
	r.ErrorIs(err, mlserr.ErrInvalidState)
}

func TestThreeMembers_RemoveKeepsOthersInSync(t *testing.T) {
	r := require.New(t)
	s1, s2 := pair(t)

	carol := newClient(t, "user3")
	kp, err := carol.ExportKeyPackage()
	r.NoError(err)
	add, err := s1.AddMember(kp)
	r.NoError(err)
	r.NoError(s2.ProcessCommit(add.Commit))
	s3, err := carol.JoinGroup(add.Welcome[0])
	r.NoError(err)

	remove, err := s1.RemoveMember("user2")
	r.NoError(err)
	r.NoError(s3.ProcessCommit(remove.Commit))

	e1, err := s1.CurrentEpoch()
	r.NoError(err)
	e3, err := s3.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(3), e1)
	r.Equal(e1, e3)

	ct, err := s3.Encrypt([]byte("two of us"))
	r.NoError(err)
	pt, err := s1.Decrypt(ct.Data)
	r.NoError(err)
	r.Equal([]byte("two of us"), pt)
}

func TestDecrypt_RejectsCommit(t *testing.T) {
	r := require.New(t)
	alice := newClient(t, "user1")
	bob := newClient(t, "user2")
	carol := newClient(t, "user3")

	s1, err := alice.CreateGroup(testGroupID)
	r.NoError(err)
	kp, err := bob.ExportKeyPackage()
	r.NoError(err)
	add, err := s1.AddMember(kp)
	r.NoError(err)
	s2, err := bob.JoinGroup(add.Welcome[0])
	r.NoError(err)

	kp, err = carol.ExportKeyPackage()
	r.NoError(err)
	add, err = s1.AddMember(kp)
	r.NoError(err)

	_, err = s2.Decrypt(add.Commit)
	r.ErrorIs(err, mlserr.ErrInvalidMessageType)

	epoch, err := s2.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(1), epoch)
	r.NoError(s2.ProcessCommit(add.Commit))
}

func TestProcessCommit_RejectsApplication(t *testing.T) {
	r := require.New(t)
	s1, s2 := pair(t)

	ct, err := s1.Encrypt([]byte("not a commit"))
	r.NoError(err)
	err = s2.ProcessCommit(ct.Data)
	r.ErrorIs(err, mlserr.ErrInvalidMessageType)
}

func TestDecrypt_Garbage(t *testing.T) {
	s1, _ := pair(t)
	_, err := s1.Decrypt([]byte{0xde, 0xad})
	require.ErrorIs(t, err, mlserr.ErrCodec)
}

func TestJoinGroup_RejectsNonWelcome(t *testing.T) {
	r := require.New(t)
	s1, _ := pair(t)
	ct, err := s1.Encrypt([]byte("x"))
	r.NoError(err)

	_, err = newClient(t, "user4").JoinGroup(ct.Data)
	r.ErrorIs(err, mlserr.ErrInvalidMessageType)
}

func TestDeferredMerge(t *testing.T) {
	r := require.New(t)
	alice := newClient(t, "user1", group.WithDeferredMerge())
	bob := newClient(t, "user2")
	carol := newClient(t, "user3")

	s1, err := alice.CreateGroup(testGroupID)
	r.NoError(err)
	kp, err := bob.ExportKeyPackage()
	r.NoError(err)
	_, err = s1.AddMember(kp)
	r.NoError(err)

	pending, err := s1.HasPendingCommit()
	r.NoError(err)
	r.True(pending)
	epoch, err := s1.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(0), epoch)

	kp3, err := carol.ExportKeyPackage()
	r.NoError(err)
	_, err = s1.AddMember(kp3)
	r.ErrorIs(err, mlserr.ErrInvalidState)

	r.NoError(s1.ClearPendingCommit())
	pending, err = s1.HasPendingCommit()
	r.NoError(err)
	r.False(pending)
	r.ErrorIs(s1.MergePendingCommit(), mlserr.ErrInvalidState)

	_, err = s1.AddMember(kp3)
	r.NoError(err)
	r.NoError(s1.MergePendingCommit())
	epoch, err = s1.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(1), epoch)
	members, err := s1.Members()
	r.NoError(err)
	r.Len(members, 2)
	r.Equal("user3", members[1].Credential.Text())
}

func TestClientRestore(t *testing.T) {
	r := require.New(t)
	cp := crypto.NewProvider()
	st := store.NewMemoryStore()
	deps := identity.Deps{Engine: flatgroup.New(cp, st), Crypto: cp, Storage: st}

	c, err := identity.Initialize([]byte("user1"), deps)
	r.NoError(err)
	_, err = c.CreateGroup(testGroupID)
	r.NoError(err)

	restored, err := identity.Restore([]byte("user1"), c.SignaturePublicKey(), deps)
	r.NoError(err)
	r.Equal(c.Fingerprint(), restored.Fingerprint())
	s, err := restored.Session(testGroupID)
	r.NoError(err)
	ct, err := s.Encrypt([]byte("after restart"))
	r.NoError(err)
	r.Equal(uint64(0), ct.Epoch)

	_, err = restored.Session(domain.GroupID{9})
	r.ErrorIs(err, mlserr.ErrInvalidState)
}

func TestEncryptDecrypt_SameSession(t *testing.T) {
	r := require.New(t)
	s, err := newClient(t, "user1").CreateGroup(testGroupID)
	r.NoError(err)

	ct, err := s.Encrypt([]byte("note to self"))
	r.NoError(err)
	pt, err := s.Decrypt(ct.Data)
	r.NoError(err)
	r.Equal([]byte("note to self"), pt)
}

func TestDecrypt_RejectsProposal(t *testing.T) {
	r := require.New(t)
	cp := crypto.NewProvider()
	st := store.NewMemoryStore()
	engine := flatgroup.New(cp, st)
	alice, err := identity.Initialize([]byte("user1"), identity.Deps{Engine: engine, Crypto: cp, Storage: st})
	r.NoError(err)
	bob := newClient(t, "user2")

	s1, err := alice.CreateGroup(testGroupID)
	r.NoError(err)
	kp, err := bob.ExportKeyPackage()
	r.NoError(err)
	add, err := s1.AddMember(kp)
	r.NoError(err)
	s2, err := bob.JoinGroup(add.Welcome[0])
	r.NoError(err)

	state, ok, err := st.ReadGroupState(testGroupID)
	r.NoError(err)
	r.True(ok)
	proposal, err := engine.ProposeRemove(state, 1)
	r.NoError(err)

	_, err = s2.Decrypt(proposal)
	r.ErrorIs(err, mlserr.ErrInvalidMessageType)
	epoch, err := s2.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(1), epoch)
}

func TestDistinctGroupsAreIndependent(t *testing.T) {
	r := require.New(t)
	alice := newClient(t, "user1")
	bob := newClient(t, "user2")

	g1, err := alice.CreateGroup(testGroupID)
	r.NoError(err)
	g2, err := alice.CreateGroup(domain.GroupID{1, 2, 3, 4})
	r.NoError(err)

	kp, err := bob.ExportKeyPackage()
	r.NoError(err)
	_, err = g1.AddMember(kp)
	r.NoError(err)

	e1, err := g1.CurrentEpoch()
	r.NoError(err)
	e2, err := g2.CurrentEpoch()
	r.NoError(err)
	r.Equal(uint64(1), e1)
	r.Equal(uint64(0), e2)

	members, err := g2.Members()
	r.NoError(err)
	r.Len(members, 1)
}
