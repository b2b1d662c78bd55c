package flatgroup

import (
	"bytes"
	"errors"
	"fmt"

	"mlsbridge/internal/domain"
)

var (
	errGroupIDLength = errors.New("flatgroup: group id must be 1 to 255 bytes")
	errGroupMismatch = errors.New("flatgroup: message belongs to another group")
	errOwnCommit     = errors.New("flatgroup: cannot process own commit")
	errRemoveSelf    = errors.New("flatgroup: a member cannot commit its own removal")
	errEmptyCommit   = errors.New("flatgroup: commit has no changes")
	errNoPathSecret  = errors.New("flatgroup: commit carries no secret for this member")
	errReplay        = errors.New("flatgroup: message already processed")
	errGenerations   = errors.New("flatgroup: send generations exhausted for this epoch")
	errBadWelcome    = errors.New("flatgroup: welcome does not match key package")
)

// Engine is the reference domain.Engine. It is safe for use by one client;
// callers serialize mutating calls per group.
type Engine struct {
	crypto domain.CryptoProvider
	store  domain.StorageProvider
}

// New returns an engine that keeps private key material in store.
func New(crypto domain.CryptoProvider, store domain.StorageProvider) *Engine {
	return &Engine{crypto: crypto, store: store}
}

// CreateGroup returns the epoch-0 state of a one-member group.
func (e *Engine) CreateGroup(groupID domain.GroupID, credential domain.Credential) (domain.GroupState, error) {
	if len(groupID) == 0 || len(groupID) > 255 {
		return nil, errGroupIDLength
	}
	if _, err := e.signer(credential.SignatureKey); err != nil {
		return nil, err
	}
	leafKP, err := e.crypto.GenerateHPKEKeyPair()
	if err != nil {
		return nil, err
	}
	secret, err := e.crypto.RandomBytes(secretSize)
	if err != nil {
		return nil, err
	}
	gs := &groupState{
		groupID:     groupID.Clone(),
		active:      true,
		epochSecret: secret,
		leaves: []*leaf{{
			identity: clone(credential.Identity),
			sigKey:   clone(credential.SignatureKey),
			encKey:   leafKP.Public,
		}},
	}
	if err := e.writeLeafKey(gs.groupID, 0, 0, leafKP); err != nil {
		return nil, err
	}
	return gs.marshal()
}

// GenerateKeyPackage builds and signs a key package for credential. The init
// private key is written to the encryption key pair space.
func (e *Engine) GenerateKeyPackage(credential domain.Credential) (domain.KeyPackage, error) {
	initKP, err := e.crypto.GenerateHPKEKeyPair()
	if err != nil {
		return domain.KeyPackage{}, err
	}
	kp := &keyPackage{
		identity: clone(credential.Identity),
		sigKey:   clone(credential.SignatureKey),
		initKey:  initKP.Public,
	}
	tbs, err := kp.tbs()
	if err != nil {
		return domain.KeyPackage{}, err
	}
	if kp.signature, err = e.sign(kp.sigKey, "key package", tbs); err != nil {
		return domain.KeyPackage{}, err
	}
	raw, err := kp.marshal()
	if err != nil {
		return domain.KeyPackage{}, err
	}
	enc, err := initKP.Encode()
	if err != nil {
		return domain.KeyPackage{}, fmt.Errorf("encode init key: %w", err)
	}
	if err := e.store.WriteEncryptionKeyPair(initKP.Public, enc); err != nil {
		return domain.KeyPackage{}, storageErr("write init key", err)
	}
	return domain.KeyPackage{Raw: raw, Credential: credential, InitKey: initKP.Public}, nil
}

// KeyPackageRef hashes the encoded key package.
func (e *Engine) KeyPackageRef(kp domain.KeyPackage) (domain.KeyPackageRef, error) {
	if len(kp.Raw) == 0 {
		return nil, decodeErr("empty key package")
	}
	return e.crypto.Hash(label("key package ref", kp.Raw)), nil
}

// ParseKeyPackage decodes a key package without verifying its signature.
func (e *Engine) ParseKeyPackage(raw []byte) (domain.KeyPackage, error) {
	kp, err := parseKeyPackage(raw)
	if err != nil {
		return domain.KeyPackage{}, err
	}
	return domain.KeyPackage{
		Raw:        clone(raw),
		Credential: domain.Credential{Identity: kp.identity, SignatureKey: kp.sigKey},
		InitKey:    kp.initKey,
	}, nil
}

// ParseMessage classifies a framed message.
func (e *Engine) ParseMessage(raw []byte) (domain.Message, error) {
	kind, err := classify(raw)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{Kind: kind, Raw: clone(raw)}, nil
}

func (e *Engine) verifyKeyPackage(kp *keyPackage) error {
	tbs, err := kp.tbs()
	if err != nil {
		return err
	}
	return e.verify(kp.sigKey, "key package", tbs, kp.signature)
}

// JoinGroup opens a welcome with the matching key package's init key and
// returns the joined state. The key package and its init key stay in
// storage until ConsumeKeyPackage, so a join whose state was never
// persisted can be retried with the same welcome.
func (e *Engine) JoinGroup(msg domain.Message) (domain.GroupState, error) {
	wt, body, err := unframe(msg.Raw)
	if err != nil {
		return nil, err
	}
	if wt != wireWelcome {
		return nil, fmt.Errorf("%w: join needs a welcome", domain.ErrUnexpectedMessage)
	}
	w, err := parseWelcome(body)
	if err != nil {
		return nil, err
	}

	kpRaw, ok, err := e.store.ReadKeyPackage(w.kpRef)
	if err != nil {
		return nil, storageErr("read key package", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: no key package for welcome", domain.ErrMissingKey)
	}
	kp, err := parseKeyPackage(kpRaw)
	if err != nil {
		return nil, err
	}
	initRaw, ok, err := e.store.ReadEncryptionKeyPair(kp.initKey)
	if err != nil {
		return nil, storageErr("read init key", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: init key for welcome", domain.ErrMissingKey)
	}
	initKP, err := domain.DecodeHPKEKeyPair(initRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: init key: %v", domain.ErrDecode, err)
	}

	plain, err := e.crypto.Open(initKP.Private, w.enc, label("welcome"), w.kpRef, w.ct)
	if err != nil {
		return nil, err
	}
	gi, err := parseGroupInfo(plain)
	if err != nil {
		return nil, err
	}
	gs := &groupState{
		groupID:     gi.groupID,
		epoch:       gi.epoch,
		ownLeaf:     gi.joiner,
		active:      true,
		epochSecret: gi.epochSecret,
		leaves:      gi.leaves,
	}
	me, signer := gs.own(), gs.leafAt(gi.signer)
	if me == nil || signer == nil ||
		!bytes.Equal(me.sigKey, kp.sigKey) || !bytes.Equal(me.encKey, kp.initKey) {
		return nil, errBadWelcome
	}
	tbs, err := gi.tbs()
	if err != nil {
		return nil, err
	}
	if err := e.verify(signer.sigKey, "group info", tbs, gi.signature); err != nil {
		return nil, err
	}

	// Rewriting the same leaf key on a retried join is harmless.
	if err := e.writeLeafKey(gs.groupID, gs.epoch, gs.ownLeaf, initKP); err != nil {
		return nil, err
	}
	return gs.marshal()
}

// ConsumeKeyPackage deletes the key package a welcome was addressed to and
// its init key. It is a no-op once the key package is gone.
func (e *Engine) ConsumeKeyPackage(msg domain.Message) error {
	wt, body, err := unframe(msg.Raw)
	if err != nil {
		return err
	}
	if wt != wireWelcome {
		return fmt.Errorf("%w: consume needs a welcome", domain.ErrUnexpectedMessage)
	}
	w, err := parseWelcome(body)
	if err != nil {
		return err
	}
	kpRaw, ok, err := e.store.ReadKeyPackage(w.kpRef)
	if err != nil {
		return storageErr("read key package", err)
	}
	if !ok {
		return nil
	}
	kp, err := parseKeyPackage(kpRaw)
	if err != nil {
		return err
	}
	if err := e.store.DeleteEncryptionKeyPair(kp.initKey); err != nil {
		return storageErr("delete init key", err)
	}
	if err := e.store.DeleteKeyPackage(w.kpRef); err != nil {
		return storageErr("delete key package", err)
	}
	return nil
}

// ProcessIncoming verifies and applies a message received from another
// member. Commits are merged into the returned state; proposals are
// validated and reported but not queued.
func (e *Engine) ProcessIncoming(state domain.GroupState, msg domain.Message) (domain.ProcessedMessage, error) {
	gs, err := e.activeState(state)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	wt, body, err := unframe(msg.Raw)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	switch wt {
	case wirePrivate:
		return e.processApplication(gs, body)
	case wirePublic:
		content, inner, err := readPublic(body)
		if err != nil {
			return domain.ProcessedMessage{}, err
		}
		switch content {
		case contentCommit:
			return e.processCommit(gs, inner)
		case contentProposal:
			return e.processProposal(gs, state, inner)
		}
		return domain.ProcessedMessage{}, fmt.Errorf("%w: content type %d", domain.ErrDecode, content)
	default:
		return domain.ProcessedMessage{}, fmt.Errorf("%w: wire type %d is not a group message",
			domain.ErrUnexpectedMessage, wt)
	}
}

func (e *Engine) Members(state domain.GroupState) ([]domain.Member, error) {
	gs, err := unmarshalState(state)
	if err != nil {
		return nil, err
	}
	return gs.members(), nil
}

func (e *Engine) CurrentEpoch(state domain.GroupState) (domain.Epoch, error) {
	gs, err := unmarshalState(state)
	if err != nil {
		return 0, err
	}
	return domain.Epoch(gs.epoch), nil
}

func (e *Engine) GroupID(state domain.GroupState) (domain.GroupID, error) {
	gs, err := unmarshalState(state)
	if err != nil {
		return nil, err
	}
	return gs.groupID, nil
}

// activeState decodes state and rejects groups this member has left.
func (e *Engine) activeState(state domain.GroupState) (*groupState, error) {
	gs, err := unmarshalState(state)
	if err != nil {
		return nil, err
	}
	if !gs.active {
		return nil, domain.ErrInactive
	}
	return gs, nil
}

// Compile-time assertion that Engine implements domain.Engine.
var _ domain.Engine = (*Engine)(nil)
