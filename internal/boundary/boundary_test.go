package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mlsbridge/internal/boundary"
	"mlsbridge/internal/domain"
	"mlsbridge/internal/mlserr"
)

func TestCommit_BinaryRoundTrip(t *testing.T) {
	r := require.New(t)

	in := domain.Commit{
		Commit:  []byte{0x00, 0x01, 0xfe, 0xff},
		Welcome: [][]byte{{0xaa}, {}, {0xbb, 0xcc}},
	}
	enc, err := boundary.MarshalCommit(in)
	r.NoError(err)

	out, err := boundary.UnmarshalCommit(enc)
	r.NoError(err)
	r.Equal(in.Commit, out.Commit)
	r.Len(out.Welcome, 3)
	r.Equal([]byte{0xbb, 0xcc}, out.Welcome[2])

	again, err := boundary.MarshalCommit(out)
	r.NoError(err)
	r.Equal(enc, again)
}

func TestCommit_EmptyWelcomeList(t *testing.T) {
	enc, err := boundary.MarshalCommit(domain.Commit{Commit: []byte("c"), Welcome: [][]byte{}})
	require.NoError(t, err)

	out, err := boundary.UnmarshalCommit(enc)
	require.NoError(t, err)
	require.NotNil(t, out.Welcome)
	require.Empty(t, out.Welcome)
}

func TestCiphertext_BinaryRoundTrip(t *testing.T) {
	r := require.New(t)

	in := domain.Ciphertext{Data: []byte("opaque engine bytes"), Epoch: 7}
	enc, err := boundary.MarshalCiphertext(in)
	r.NoError(err)

	out, err := boundary.UnmarshalCiphertext(enc)
	r.NoError(err)
	r.Equal(in, out)

	again, err := boundary.MarshalCiphertext(out)
	r.NoError(err)
	r.Equal(enc, again)
}

func TestUnmarshal_Malformed(t *testing.T) {
	_, err := boundary.UnmarshalCommit([]byte{0x01, 0x00})
	require.ErrorIs(t, err, mlserr.ErrSerialization)

	enc, err := boundary.MarshalCiphertext(domain.Ciphertext{Data: []byte("x")})
	require.NoError(t, err)
	_, err = boundary.UnmarshalCiphertext(append(enc, 0x00))
	require.ErrorIs(t, err, mlserr.ErrSerialization)

	_, err = boundary.UnmarshalCommit(enc)
	require.ErrorIs(t, err, mlserr.ErrSerialization)
}

func TestJSON_RoundTrip(t *testing.T) {
	r := require.New(t)

	in := domain.Commit{Commit: []byte{1, 2, 3}, Welcome: [][]byte{{4}}}
	data, err := boundary.MarshalJSON(in)
	r.NoError(err)
	r.Contains(string(data), `"commit"`)

	var out domain.Commit
	r.NoError(boundary.UnmarshalJSON(data, &out))
	r.Equal(in, out)

	again, err := boundary.MarshalJSON(out)
	r.NoError(err)
	r.Equal(data, again)

	r.ErrorIs(boundary.UnmarshalJSON([]byte("{"), &out), mlserr.ErrSerialization)
}

func TestCommit_LargeVectorsRoundTrip(t *testing.T) {
	r := require.New(t)

	big := make([]byte, 70_000)
	for i := range big {
		big[i] = byte(i)
	}
	in := domain.Commit{Commit: big, Welcome: [][]byte{big[:65_537]}}
	enc, err := boundary.MarshalCommit(in)
	r.NoError(err)

	out, err := boundary.UnmarshalCommit(enc)
	r.NoError(err)
	r.Equal(in, out)
}

func TestUnmarshal_TruncatedVector(t *testing.T) {
	enc, err := boundary.MarshalCiphertext(domain.Ciphertext{Data: []byte("payload"), Epoch: 3})
	require.NoError(t, err)

	_, err = boundary.UnmarshalCiphertext(enc[:len(enc)-2])
	require.ErrorIs(t, err, mlserr.ErrSerialization)

	commit, err := boundary.MarshalCommit(domain.Commit{Commit: []byte("c"), Welcome: [][]byte{[]byte("w")}})
	require.NoError(t, err)
	_, err = boundary.UnmarshalCommit(commit[:len(commit)-1])
	require.ErrorIs(t, err, mlserr.ErrSerialization)
}
