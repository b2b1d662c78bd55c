package flatgroup

import (
	"golang.org/x/crypto/cryptobyte"
)

type pathSecret struct {
	leaf uint32
	enc  []byte
	ct   []byte
}

type commitContent struct {
	groupID         []byte
	epoch           uint64
	sender          uint32
	adds            [][]byte
	removes         []uint32
	leafKey         []byte
	secrets         []pathSecret
	confirmationTag []byte
	signature       []byte
}

// context binds sealed commit secrets to the commit they travel in.
func (c *commitContent) context() []byte {
	return label("commit context", c.groupID, u64(c.epoch), u32(c.sender))
}

func (c *commitContent) addContent(b *cryptobyte.Builder) {
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(c.groupID) })
	b.AddUint64(c.epoch)
	b.AddUint32(c.sender)
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, kp := range c.adds {
			b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(kp) })
		}
	})
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, r := range c.removes {
			b.AddUint32(r)
		}
	})
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(c.leafKey) })
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, p := range c.secrets {
			b.AddUint32(p.leaf)
			b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(p.enc) })
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(p.ct) })
		}
	})
}

// content is what the confirmation tag is computed over.
func (c *commitContent) content() ([]byte, error) { return build(c.addContent) }

func (c *commitContent) addTBS(b *cryptobyte.Builder) {
	c.addContent(b)
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(c.confirmationTag) })
}

func (c *commitContent) tbs() ([]byte, error) { return build(c.addTBS) }

func (c *commitContent) marshal() ([]byte, error) {
	body, err := build(func(b *cryptobyte.Builder) {
		c.addTBS(b)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(c.signature) })
	})
	if err != nil {
		return nil, err
	}
	return framePublic(contentCommit, body)
}

func parseCommit(s cryptobyte.String) (*commitContent, error) {
	var (
		c                      commitContent
		groupID, adds, removes cryptobyte.String
		leafKey, secrets       cryptobyte.String
		tag, sig               cryptobyte.String
	)
	if !s.ReadUint8LengthPrefixed(&groupID) ||
		!s.ReadUint64(&c.epoch) ||
		!s.ReadUint32(&c.sender) ||
		!readUint32Prefixed(&s, &adds) ||
		!readUint32Prefixed(&s, &removes) ||
		!s.ReadUint8LengthPrefixed(&leafKey) ||
		!readUint32Prefixed(&s, &secrets) ||
		!s.ReadUint8LengthPrefixed(&tag) ||
		!s.ReadUint16LengthPrefixed(&sig) || !s.Empty() {
		return nil, decodeErr("commit")
	}
	for !adds.Empty() {
		var kp cryptobyte.String
		if !readUint32Prefixed(&adds, &kp) {
			return nil, decodeErr("commit adds")
		}
		c.adds = append(c.adds, clone(kp))
	}
	for !removes.Empty() {
		var r uint32
		if !removes.ReadUint32(&r) {
			return nil, decodeErr("commit removes")
		}
		c.removes = append(c.removes, r)
	}
	for !secrets.Empty() {
		var (
			p       pathSecret
			enc, ct cryptobyte.String
		)
		if !secrets.ReadUint32(&p.leaf) ||
			!secrets.ReadUint8LengthPrefixed(&enc) ||
			!secrets.ReadUint16LengthPrefixed(&ct) {
			return nil, decodeErr("commit secrets")
		}
		p.enc, p.ct = clone(enc), clone(ct)
		c.secrets = append(c.secrets, p)
	}
	c.groupID = clone(groupID)
	c.leafKey = clone(leafKey)
	c.confirmationTag = clone(tag)
	c.signature = clone(sig)
	return &c, nil
}

type removeProposal struct {
	groupID   []byte
	epoch     uint64
	sender    uint32
	removed   uint32
	signature []byte
}

func (p *removeProposal) addTBS(b *cryptobyte.Builder) {
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(p.groupID) })
	b.AddUint64(p.epoch)
	b.AddUint32(p.sender)
	b.AddUint32(p.removed)
}

func (p *removeProposal) tbs() ([]byte, error) { return build(p.addTBS) }

func (p *removeProposal) marshal() ([]byte, error) {
	body, err := build(func(b *cryptobyte.Builder) {
		p.addTBS(b)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(p.signature) })
	})
	if err != nil {
		return nil, err
	}
	return framePublic(contentProposal, body)
}

func parseRemoveProposal(s cryptobyte.String) (*removeProposal, error) {
	var (
		p            removeProposal
		groupID, sig cryptobyte.String
	)
	if !s.ReadUint8LengthPrefixed(&groupID) ||
		!s.ReadUint64(&p.epoch) ||
		!s.ReadUint32(&p.sender) ||
		!s.ReadUint32(&p.removed) ||
		!s.ReadUint16LengthPrefixed(&sig) || !s.Empty() {
		return nil, decodeErr("proposal")
	}
	p.groupID, p.signature = clone(groupID), clone(sig)
	return &p, nil
}

type groupInfo struct {
	groupID     []byte
	epoch       uint64
	epochSecret []byte
	leaves      []*leaf
	joiner      uint32
	signer      uint32
	signature   []byte
}

func (g *groupInfo) addTBS(b *cryptobyte.Builder) {
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(g.groupID) })
	b.AddUint64(g.epoch)
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(g.epochSecret) })
	addLeaves(b, g.leaves)
	b.AddUint32(g.joiner)
	b.AddUint32(g.signer)
}

func (g *groupInfo) tbs() ([]byte, error) { return build(g.addTBS) }

func (g *groupInfo) marshal() ([]byte, error) {
	return build(func(b *cryptobyte.Builder) {
		g.addTBS(b)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(g.signature) })
	})
}

func parseGroupInfo(raw []byte) (*groupInfo, error) {
	s := cryptobyte.String(raw)
	var (
		g                    groupInfo
		groupID, secret, sig cryptobyte.String
	)
	if !s.ReadUint8LengthPrefixed(&groupID) ||
		!s.ReadUint64(&g.epoch) ||
		!s.ReadUint8LengthPrefixed(&secret) {
		return nil, decodeErr("group info")
	}
	leaves, ok := readLeaves(&s)
	if !ok || !s.ReadUint32(&g.joiner) || !s.ReadUint32(&g.signer) ||
		!s.ReadUint16LengthPrefixed(&sig) || !s.Empty() {
		return nil, decodeErr("group info")
	}
	g.groupID, g.epochSecret, g.signature = clone(groupID), clone(secret), clone(sig)
	g.leaves = leaves
	return &g, nil
}

type welcome struct {
	kpRef []byte
	enc   []byte
	ct    []byte
}

func (w *welcome) marshal() ([]byte, error) {
	body, err := build(func(b *cryptobyte.Builder) {
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(w.kpRef) })
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(w.enc) })
		b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(w.ct) })
	})
	if err != nil {
		return nil, err
	}
	return frame(wireWelcome, body)
}

func parseWelcome(s cryptobyte.String) (*welcome, error) {
	var ref, enc, ct cryptobyte.String
	if !s.ReadUint8LengthPrefixed(&ref) ||
		!s.ReadUint8LengthPrefixed(&enc) ||
		!readUint32Prefixed(&s, &ct) || !s.Empty() {
		return nil, decodeErr("welcome")
	}
	return &welcome{kpRef: clone(ref), enc: clone(enc), ct: clone(ct)}, nil
}

type privateMessage struct {
	groupID    []byte
	epoch      uint64
	sender     uint32
	generation uint32
	ciphertext []byte
	signature  []byte
}

func (m *privateMessage) aad() []byte {
	return label("application aad", m.groupID, u64(m.epoch), u32(m.sender), u32(m.generation))
}

func (m *privateMessage) addTBS(b *cryptobyte.Builder) {
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(m.groupID) })
	b.AddUint64(m.epoch)
	b.AddUint32(m.sender)
	b.AddUint32(m.generation)
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(m.ciphertext) })
}

func (m *privateMessage) tbs() ([]byte, error) { return build(m.addTBS) }

func (m *privateMessage) marshal() ([]byte, error) {
	body, err := build(func(b *cryptobyte.Builder) {
		m.addTBS(b)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) { b.AddBytes(m.signature) })
	})
	if err != nil {
		return nil, err
	}
	return frame(wirePrivate, body)
}

func parsePrivate(s cryptobyte.String) (*privateMessage, error) {
	var (
		m                privateMessage
		groupID, ct, sig cryptobyte.String
	)
	if !s.ReadUint8LengthPrefixed(&groupID) ||
		!s.ReadUint64(&m.epoch) ||
		!s.ReadUint32(&m.sender) ||
		!s.ReadUint32(&m.generation) ||
		!readUint32Prefixed(&s, &ct) ||
		!s.ReadUint16LengthPrefixed(&sig) || !s.Empty() {
		return nil, decodeErr("private message")
	}
	m.groupID, m.ciphertext, m.signature = clone(groupID), clone(ct), clone(sig)
	return &m, nil
}
