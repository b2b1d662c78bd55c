package flatgroup

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/crypto/cryptobyte"

	"mlsbridge/internal/domain"
)

const (
	stateFormatVersion uint8 = 2
	// maxSeen caps the replay window kept per epoch. Generations evicted
	// from it raise the sender's floor.
	maxSeen = 1000
)

type leaf struct {
	identity []byte
	sigKey   []byte
	encKey   []byte
	addedAt  uint64
}

type seenKey struct {
	sender     uint32
	generation uint32
}

type pendingCommit struct {
	baseEpoch uint64
	commit    []byte
	next      []byte
}

type groupState struct {
	groupID        []byte
	epoch          uint64
	ownLeaf        uint32
	active         bool
	epochSecret    []byte
	leaves         []*leaf
	sendGeneration uint32
	seen           []seenKey
	floors         []seenKey
	pending        *pendingCommit
}

func (gs *groupState) leafAt(i uint32) *leaf {
	if int(i) >= len(gs.leaves) {
		return nil
	}
	return gs.leaves[i]
}

func (gs *groupState) own() *leaf { return gs.leafAt(gs.ownLeaf) }

// floor returns the lowest generation still accepted from sender.
func (gs *groupState) floor(sender uint32) uint32 {
	for _, f := range gs.floors {
		if f.sender == sender {
			return f.generation
		}
	}
	return 0
}

func (gs *groupState) raiseFloor(sender, generation uint32) {
	for i, f := range gs.floors {
		if f.sender == sender {
			gs.floors[i].generation = max(f.generation, generation)
			return
		}
	}
	gs.floors = append(gs.floors, seenKey{sender, generation})
}

// hasSeen reports whether a generation was already accepted or fell below
// the sender's floor.
func (gs *groupState) hasSeen(sender, generation uint32) bool {
	return generation < gs.floor(sender) || slices.Contains(gs.seen, seenKey{sender, generation})
}

func (gs *groupState) remember(sender, generation uint32) {
	if len(gs.seen) >= maxSeen {
		old := gs.seen[0]
		gs.seen = gs.seen[1:]
		if old.generation < math.MaxUint32 {
			gs.raiseFloor(old.sender, old.generation+1)
		} else {
			gs.raiseFloor(old.sender, old.generation)
		}
	}
	gs.seen = append(gs.seen, seenKey{sender, generation})
}

func addPairs(b *cryptobyte.Builder, pairs []seenKey) {
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, k := range pairs {
			b.AddUint32(k.sender)
			b.AddUint32(k.generation)
		}
	})
}

func readPairs(s *cryptobyte.String) ([]seenKey, bool) {
	var list cryptobyte.String
	if !readUint32Prefixed(s, &list) {
		return nil, false
	}
	var out []seenKey
	for !list.Empty() {
		var k seenKey
		if !list.ReadUint32(&k.sender) || !list.ReadUint32(&k.generation) {
			return nil, false
		}
		out = append(out, k)
	}
	return out, true
}

func (gs *groupState) members() []domain.Member {
	out := make([]domain.Member, 0, len(gs.leaves))
	for i, l := range gs.leaves {
		if l == nil {
			continue
		}
		out = append(out, domain.Member{
			Index: domain.LeafIndex(i),
			Credential: domain.Credential{
				Identity:     clone(l.identity),
				SignatureKey: clone(l.sigKey),
			},
			AddedAt: domain.Epoch(l.addedAt),
		})
	}
	return out
}

func addLeaves(b *cryptobyte.Builder, leaves []*leaf) {
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, l := range leaves {
			if l == nil {
				b.AddUint8(0)
				continue
			}
			b.AddUint8(1)
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(l.identity) })
			b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(l.sigKey) })
			b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(l.encKey) })
			b.AddUint64(l.addedAt)
		}
	})
}

func readLeaves(s *cryptobyte.String) ([]*leaf, bool) {
	var list cryptobyte.String
	if !readUint32Prefixed(s, &list) {
		return nil, false
	}
	var out []*leaf
	for !list.Empty() {
		var present uint8
		if !list.ReadUint8(&present) {
			return nil, false
		}
		if present == 0 {
			out = append(out, nil)
			continue
		}
		var (
			identity, sigKey, encKey cryptobyte.String
			addedAt                  uint64
		)
		if !list.ReadUint16LengthPrefixed(&identity) ||
			!list.ReadUint8LengthPrefixed(&sigKey) ||
			!list.ReadUint8LengthPrefixed(&encKey) ||
			!list.ReadUint64(&addedAt) {
			return nil, false
		}
		out = append(out, &leaf{
			identity: clone(identity),
			sigKey:   clone(sigKey),
			encKey:   clone(encKey),
			addedAt:  addedAt,
		})
	}
	return out, true
}

func (gs *groupState) marshal() (domain.GroupState, error) {
	return build(func(b *cryptobyte.Builder) {
		b.AddUint8(stateFormatVersion)
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(gs.groupID) })
		b.AddUint64(gs.epoch)
		b.AddUint32(gs.ownLeaf)
		if gs.active {
			b.AddUint8(1)
		} else {
			b.AddUint8(0)
		}
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(gs.epochSecret) })
		addLeaves(b, gs.leaves)
		b.AddUint32(gs.sendGeneration)
		addPairs(b, gs.seen)
		addPairs(b, gs.floors)
		if gs.pending == nil {
			b.AddUint8(0)
			return
		}
		b.AddUint8(1)
		b.AddUint64(gs.pending.baseEpoch)
		b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(gs.pending.commit) })
		b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(gs.pending.next) })
	})
}

func unmarshalState(raw domain.GroupState) (*groupState, error) {
	s := cryptobyte.String(raw)
	var (
		version           uint8
		groupID, secret   cryptobyte.String
		active, hasCommit uint8
		gs                groupState
	)
	if !s.ReadUint8(&version) {
		return nil, decodeErr("group state")
	}
	// Version 1 states carry no sender floors.
	if version != 1 && version != stateFormatVersion {
		return nil, fmt.Errorf("%w: group state version %d", domain.ErrDecode, version)
	}
	if !s.ReadUint8LengthPrefixed(&groupID) ||
		!s.ReadUint64(&gs.epoch) ||
		!s.ReadUint32(&gs.ownLeaf) ||
		!s.ReadUint8(&active) ||
		!s.ReadUint8LengthPrefixed(&secret) {
		return nil, decodeErr("group state header")
	}
	leaves, ok := readLeaves(&s)
	if !ok || !s.ReadUint32(&gs.sendGeneration) {
		return nil, decodeErr("group state roster")
	}
	if gs.seen, ok = readPairs(&s); !ok {
		return nil, decodeErr("group state replay window")
	}
	if version >= 2 {
		if gs.floors, ok = readPairs(&s); !ok {
			return nil, decodeErr("group state replay floors")
		}
	}
	if !s.ReadUint8(&hasCommit) {
		return nil, decodeErr("group state pending flag")
	}
	if hasCommit == 1 {
		var commit, next cryptobyte.String
		p := &pendingCommit{}
		if !s.ReadUint64(&p.baseEpoch) ||
			!readUint32Prefixed(&s, &commit) ||
			!readUint32Prefixed(&s, &next) {
			return nil, decodeErr("group state pending commit")
		}
		p.commit, p.next = clone(commit), clone(next)
		gs.pending = p
	}
	if !s.Empty() {
		return nil, decodeErr("group state trailing bytes")
	}
	gs.groupID = clone(groupID)
	gs.active = active == 1
	gs.epochSecret = clone(secret)
	gs.leaves = leaves
	return &gs, nil
}

// applyChanges returns a copy of leaves with removes blanked and adds placed
// in the first free slots, plus the indices the adds landed on.
func applyChanges(leaves []*leaf, removes []uint32, adds []*leaf, epoch uint64) ([]*leaf, []uint32) {
	out := make([]*leaf, len(leaves))
	for i, l := range leaves {
		if l != nil {
			c := *l
			out[i] = &c
		}
	}
	for _, r := range removes {
		out[r] = nil
	}
	joined := make([]uint32, 0, len(adds))
	for _, a := range adds {
		c := *a
		c.addedAt = epoch
		idx := slices.Index(out, (*leaf)(nil))
		if idx < 0 {
			out = append(out, &c)
			idx = len(out) - 1
		} else {
			out[idx] = &c
		}
		joined = append(joined, uint32(idx))
	}
	for len(out) > 0 && out[len(out)-1] == nil {
		out = out[:len(out)-1]
	}
	return out, joined
}
