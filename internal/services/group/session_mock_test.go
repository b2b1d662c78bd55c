package group_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mlsbridge/internal/domain"
	"mlsbridge/internal/mlserr"
	"mlsbridge/internal/mocks"
	"mlsbridge/internal/services/group"
)

var (
	storedState = domain.GroupState("state-1")
	nextState   = domain.GroupState("state-2")
	errDisk     = errors.New("disk full")
)

func TestSession_PersistFailureDiscardsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)
	states := mocks.NewMockGroupStateStore(ctrl)
	s := group.New(testGroupID, engine, states)

	t.Run("add member", func(t *testing.T) {
		r := require.New(t)
		kp := domain.KeyPackage{Raw: []byte("kp")}
		states.EXPECT().ReadGroupState(testGroupID).Return([]byte(storedState), true, nil)
		engine.EXPECT().ParseKeyPackage([]byte("kp")).Return(kp, nil)
		engine.EXPECT().CommitAdd(storedState, []domain.KeyPackage{kp}).
			Return(domain.CommitOutput{Commit: []byte("commit"), Welcomes: [][]byte{[]byte("w")}, State: nextState}, nil)
		engine.EXPECT().MergePendingCommit(nextState).Return(nextState, nil)
		states.EXPECT().WriteGroupState(testGroupID, []byte(nextState)).Return(errDisk)

		commit, err := s.AddMember([]byte("kp"))
		r.ErrorIs(err, mlserr.ErrStorage)
		r.Empty(commit.Commit)
		r.Empty(commit.Welcome)
	})

	t.Run("encrypt", func(t *testing.T) {
		r := require.New(t)
		states.EXPECT().ReadGroupState(testGroupID).Return([]byte(storedState), true, nil)
		engine.EXPECT().CurrentEpoch(storedState).Return(domain.Epoch(4), nil)
		engine.EXPECT().EncryptApplication(storedState, []byte("hi")).Return([]byte("ct"), nextState, nil)
		states.EXPECT().WriteGroupState(testGroupID, []byte(nextState)).Return(errDisk)

		ct, err := s.Encrypt([]byte("hi"))
		r.ErrorIs(err, mlserr.ErrStorage)
		r.Nil(ct.Data)
	})

	t.Run("decrypt", func(t *testing.T) {
		r := require.New(t)
		msg := domain.Message{Kind: domain.KindApplication, Raw: []byte("ct")}
		states.EXPECT().ReadGroupState(testGroupID).Return([]byte(storedState), true, nil)
		engine.EXPECT().ParseMessage([]byte("ct")).Return(msg, nil)
		engine.EXPECT().ProcessIncoming(storedState, msg).Return(domain.ProcessedMessage{
			Kind:        domain.KindApplication,
			Application: []byte("hi"),
			State:       nextState,
		}, nil)
		states.EXPECT().WriteGroupState(testGroupID, []byte(nextState)).Return(errDisk)

		pt, err := s.Decrypt([]byte("ct"))
		r.ErrorIs(err, mlserr.ErrStorage)
		r.Nil(pt)
	})
}

func TestSession_MissingState(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)
	states := mocks.NewMockGroupStateStore(ctrl)
	s := group.New(testGroupID, engine, states)

	states.EXPECT().ReadGroupState(testGroupID).Return(nil, false, nil).Times(3)

	_, err := s.CurrentEpoch()
	require.ErrorIs(t, err, mlserr.ErrInvalidState)
	_, err = s.Encrypt([]byte("x"))
	require.ErrorIs(t, err, mlserr.ErrInvalidState)
	require.ErrorIs(t, s.ProcessCommit([]byte("c")), mlserr.ErrInvalidState)
}

func TestSession_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	states := mocks.NewMockGroupStateStore(ctrl)
	s := group.New(testGroupID, mocks.NewMockEngine(ctrl), states)

	states.EXPECT().ReadGroupState(testGroupID).Return(nil, false, errDisk)
	_, err := s.Members()
	require.ErrorIs(t, err, mlserr.ErrStorage)
}

func TestSession_CurrentEpochNeverWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)
	states := mocks.NewMockGroupStateStore(ctrl)
	s := group.New(testGroupID, engine, states)

	states.EXPECT().ReadGroupState(testGroupID).Return([]byte(storedState), true, nil)
	engine.EXPECT().CurrentEpoch(storedState).Return(domain.Epoch(7), nil)
	states.EXPECT().WriteGroupState(gomock.Any(), gomock.Any()).Times(0)

	epoch, err := s.CurrentEpoch()
	require.NoError(t, err)
	require.Equal(t, uint64(7), epoch)
}

func TestSession_EngineErrorsAreTranslated(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)
	states := mocks.NewMockGroupStateStore(ctrl)
	s := group.New(testGroupID, engine, states, group.WithDeferredMerge())

	states.EXPECT().ReadGroupState(testGroupID).Return([]byte(storedState), true, nil).Times(2)
	engine.EXPECT().ParseKeyPackage(gomock.Any()).Return(domain.KeyPackage{}, domain.ErrDecode)
	engine.EXPECT().MergePendingCommit(storedState).Return(nil, domain.ErrNoPendingCommit)

	_, err := s.AddMember([]byte("junk"))
	require.ErrorIs(t, err, mlserr.ErrCodec)
	require.ErrorIs(t, s.MergePendingCommit(), mlserr.ErrInvalidState)
}

func TestSession_DecryptCiphertextChecksEpochFirst(t *testing.T) {
	r := require.New(t)
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)
	states := mocks.NewMockGroupStateStore(ctrl)
	s := group.New(testGroupID, engine, states)

	states.EXPECT().ReadGroupState(testGroupID).Return([]byte(storedState), true, nil)
	engine.EXPECT().CurrentEpoch(storedState).Return(domain.Epoch(3), nil)
	engine.EXPECT().ParseMessage(gomock.Any()).Times(0)
	engine.EXPECT().ProcessIncoming(gomock.Any(), gomock.Any()).Times(0)
	states.EXPECT().WriteGroupState(gomock.Any(), gomock.Any()).Times(0)

	pt, err := s.DecryptCiphertext(domain.Ciphertext{Data: []byte("ct"), Epoch: 2})
	r.ErrorIs(err, mlserr.ErrProtocol)
	r.Nil(pt)
}
