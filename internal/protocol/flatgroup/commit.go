package flatgroup

import (
	"bytes"
	"crypto/hmac"
	"fmt"
	"slices"

	"mlsbridge/internal/domain"
)

// CommitAdd builds a commit admitting the given key packages. The returned
// state holds the commit as pending; the next-epoch state is only adopted by
// MergePendingCommit.
func (e *Engine) CommitAdd(state domain.GroupState, kps []domain.KeyPackage) (domain.CommitOutput, error) {
	gs, err := e.committableState(state)
	if err != nil {
		return domain.CommitOutput{}, err
	}
	if len(kps) == 0 {
		return domain.CommitOutput{}, errEmptyCommit
	}
	raws := make([][]byte, 0, len(kps))
	adds := make([]*leaf, 0, len(kps))
	for _, in := range kps {
		kp, err := parseKeyPackage(in.Raw)
		if err != nil {
			return domain.CommitOutput{}, err
		}
		if err := e.verifyKeyPackage(kp); err != nil {
			return domain.CommitOutput{}, err
		}
		raws = append(raws, clone(in.Raw))
		adds = append(adds, &leaf{identity: kp.identity, sigKey: kp.sigKey, encKey: kp.initKey})
	}
	return e.commit(gs, raws, adds, nil)
}

// CommitRemove builds a commit removing the members at leaves.
func (e *Engine) CommitRemove(state domain.GroupState, leaves []domain.LeafIndex) (domain.CommitOutput, error) {
	gs, err := e.committableState(state)
	if err != nil {
		return domain.CommitOutput{}, err
	}
	if len(leaves) == 0 {
		return domain.CommitOutput{}, errEmptyCommit
	}
	removes := make([]uint32, 0, len(leaves))
	for _, l := range leaves {
		i := uint32(l)
		if gs.leafAt(i) == nil {
			return domain.CommitOutput{}, fmt.Errorf("%w: leaf %d", domain.ErrUnknownMember, i)
		}
		if i == gs.ownLeaf {
			return domain.CommitOutput{}, errRemoveSelf
		}
		if !slices.Contains(removes, i) {
			removes = append(removes, i)
		}
	}
	return e.commit(gs, nil, nil, removes)
}

func (e *Engine) committableState(state domain.GroupState) (*groupState, error) {
	gs, err := e.activeState(state)
	if err != nil {
		return nil, err
	}
	if gs.pending != nil {
		return nil, domain.ErrPendingCommit
	}
	return gs, nil
}

func (e *Engine) commit(gs *groupState, rawAdds [][]byte, adds []*leaf, removes []uint32) (domain.CommitOutput, error) {
	next := gs.epoch + 1
	roster, joined := applyChanges(gs.leaves, removes, adds, next)

	commitSecret, err := e.crypto.RandomBytes(secretSize)
	if err != nil {
		return domain.CommitOutput{}, err
	}
	leafKP, err := e.crypto.GenerateHPKEKeyPair()
	if err != nil {
		return domain.CommitOutput{}, err
	}
	roster[gs.ownLeaf].encKey = leafKP.Public

	cc := &commitContent{
		groupID: gs.groupID,
		epoch:   gs.epoch,
		sender:  gs.ownLeaf,
		adds:    rawAdds,
		removes: removes,
		leafKey: leafKP.Public,
	}
	for i, l := range gs.leaves {
		idx := uint32(i)
		if l == nil || idx == gs.ownLeaf || slices.Contains(removes, idx) {
			continue
		}
		enc, ct, err := e.crypto.Seal(l.encKey, label("commit secret"), cc.context(), commitSecret)
		if err != nil {
			return domain.CommitOutput{}, err
		}
		cc.secrets = append(cc.secrets, pathSecret{leaf: idx, enc: enc, ct: ct})
	}

	nextSecret, err := e.nextEpochSecret(gs.epochSecret, commitSecret, gs.groupID, next)
	if err != nil {
		return domain.CommitOutput{}, err
	}
	content, err := cc.content()
	if err != nil {
		return domain.CommitOutput{}, err
	}
	if cc.confirmationTag, err = e.confirmationTag(nextSecret, content); err != nil {
		return domain.CommitOutput{}, err
	}
	tbs, err := cc.tbs()
	if err != nil {
		return domain.CommitOutput{}, err
	}
	sigKey := gs.own().sigKey
	if cc.signature, err = e.sign(sigKey, "commit", tbs); err != nil {
		return domain.CommitOutput{}, err
	}
	commitMsg, err := cc.marshal()
	if err != nil {
		return domain.CommitOutput{}, err
	}

	nextState := &groupState{
		groupID:     gs.groupID,
		epoch:       next,
		ownLeaf:     gs.ownLeaf,
		active:      true,
		epochSecret: nextSecret,
		leaves:      roster,
	}
	welcomes := make([][]byte, 0, len(joined))
	for k, idx := range joined {
		w, err := e.welcome(nextState, idx, rawAdds[k], sigKey)
		if err != nil {
			return domain.CommitOutput{}, err
		}
		welcomes = append(welcomes, w)
	}

	if err := e.writeLeafKey(gs.groupID, next, gs.ownLeaf, leafKP); err != nil {
		return domain.CommitOutput{}, err
	}
	nextRaw, err := nextState.marshal()
	if err != nil {
		return domain.CommitOutput{}, err
	}
	gs.pending = &pendingCommit{baseEpoch: gs.epoch, commit: commitMsg, next: nextRaw}
	out, err := gs.marshal()
	if err != nil {
		return domain.CommitOutput{}, err
	}
	return domain.CommitOutput{Commit: commitMsg, Welcomes: welcomes, State: out}, nil
}

func (e *Engine) welcome(next *groupState, joiner uint32, rawKP, sigKey []byte) ([]byte, error) {
	gi := &groupInfo{
		groupID:     next.groupID,
		epoch:       next.epoch,
		epochSecret: next.epochSecret,
		leaves:      next.leaves,
		joiner:      joiner,
		signer:      next.ownLeaf,
	}
	tbs, err := gi.tbs()
	if err != nil {
		return nil, err
	}
	if gi.signature, err = e.sign(sigKey, "group info", tbs); err != nil {
		return nil, err
	}
	plain, err := gi.marshal()
	if err != nil {
		return nil, err
	}
	ref := e.crypto.Hash(label("key package ref", rawKP))
	enc, ct, err := e.crypto.Seal(next.leaves[joiner].encKey, label("welcome"), ref, plain)
	if err != nil {
		return nil, err
	}
	w := &welcome{kpRef: ref, enc: enc, ct: ct}
	return w.marshal()
}

// MergePendingCommit adopts the next-epoch state of the outstanding commit.
// The commit must still build on the state's current epoch.
func (e *Engine) MergePendingCommit(state domain.GroupState) (domain.GroupState, error) {
	gs, err := e.activeState(state)
	if err != nil {
		return nil, err
	}
	if gs.pending == nil {
		return nil, domain.ErrNoPendingCommit
	}
	if gs.pending.baseEpoch != gs.epoch {
		return nil, fmt.Errorf("%w: pending commit built on epoch %d, group is at %d",
			domain.ErrWrongEpoch, gs.pending.baseEpoch, gs.epoch)
	}
	next, err := unmarshalState(gs.pending.next)
	if err != nil {
		return nil, err
	}
	if next.epoch != gs.epoch+1 || !bytes.Equal(next.groupID, gs.groupID) {
		return nil, fmt.Errorf("%w: pending state does not follow epoch %d", domain.ErrWrongEpoch, gs.epoch)
	}
	if err := e.pruneLeafKeys(next.groupID, next.epoch, next.ownLeaf); err != nil {
		return nil, err
	}
	return next.marshal()
}

// ClearPendingCommit discards the outstanding commit, if any.
func (e *Engine) ClearPendingCommit(state domain.GroupState) (domain.GroupState, error) {
	gs, err := unmarshalState(state)
	if err != nil {
		return nil, err
	}
	if gs.pending == nil {
		return state, nil
	}
	if err := e.deleteLeafKey(gs.groupID, gs.epoch+1, gs.ownLeaf); err != nil {
		return nil, err
	}
	gs.pending = nil
	return gs.marshal()
}

func (e *Engine) HasPendingCommit(state domain.GroupState) (bool, error) {
	gs, err := unmarshalState(state)
	if err != nil {
		return false, err
	}
	return gs.pending != nil, nil
}

func (e *Engine) processCommit(gs *groupState, body []byte) (domain.ProcessedMessage, error) {
	cc, err := parseCommit(body)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	if !bytes.Equal(cc.groupID, gs.groupID) {
		return domain.ProcessedMessage{}, errGroupMismatch
	}
	if cc.epoch != gs.epoch {
		return domain.ProcessedMessage{}, fmt.Errorf("%w: commit for epoch %d, group is at %d",
			domain.ErrWrongEpoch, cc.epoch, gs.epoch)
	}
	if cc.sender == gs.ownLeaf {
		return domain.ProcessedMessage{}, errOwnCommit
	}
	sender := gs.leafAt(cc.sender)
	if sender == nil {
		return domain.ProcessedMessage{}, fmt.Errorf("%w: commit sender %d", domain.ErrUnknownMember, cc.sender)
	}
	tbs, err := cc.tbs()
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	if err := e.verify(sender.sigKey, "commit", tbs, cc.signature); err != nil {
		return domain.ProcessedMessage{}, err
	}

	adds := make([]*leaf, 0, len(cc.adds))
	for _, raw := range cc.adds {
		kp, err := parseKeyPackage(raw)
		if err != nil {
			return domain.ProcessedMessage{}, err
		}
		if err := e.verifyKeyPackage(kp); err != nil {
			return domain.ProcessedMessage{}, err
		}
		adds = append(adds, &leaf{identity: kp.identity, sigKey: kp.sigKey, encKey: kp.initKey})
	}
	for _, r := range cc.removes {
		if gs.leafAt(r) == nil || r == cc.sender {
			return domain.ProcessedMessage{}, fmt.Errorf("%w: commit removes leaf %d", domain.ErrUnknownMember, r)
		}
	}

	next := gs.epoch + 1
	roster, _ := applyChanges(gs.leaves, cc.removes, adds, next)
	roster[cc.sender].encKey = cc.leafKey
	processed := domain.ProcessedMessage{Kind: domain.KindCommit, Sender: domain.LeafIndex(cc.sender)}

	if gs.pending != nil {
		if err := e.deleteLeafKey(gs.groupID, next, gs.ownLeaf); err != nil {
			return domain.ProcessedMessage{}, err
		}
	}

	if slices.Contains(cc.removes, gs.ownLeaf) {
		if err := e.deleteLeafKey(gs.groupID, gs.epoch, gs.ownLeaf); err != nil {
			return domain.ProcessedMessage{}, err
		}
		if gs.epoch > 0 {
			if err := e.deleteLeafKey(gs.groupID, gs.epoch-1, gs.ownLeaf); err != nil {
				return domain.ProcessedMessage{}, err
			}
		}
		gone := &groupState{groupID: gs.groupID, epoch: next, ownLeaf: gs.ownLeaf, leaves: roster}
		if processed.State, err = gone.marshal(); err != nil {
			return domain.ProcessedMessage{}, err
		}
		return processed, nil
	}

	idx := slices.IndexFunc(cc.secrets, func(p pathSecret) bool { return p.leaf == gs.ownLeaf })
	if idx < 0 {
		return domain.ProcessedMessage{}, errNoPathSecret
	}
	leafKP, err := e.leafKey(gs.groupID, gs.epoch, gs.ownLeaf)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	p := cc.secrets[idx]
	commitSecret, err := e.crypto.Open(leafKP.Private, p.enc, label("commit secret"), cc.context(), p.ct)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	nextSecret, err := e.nextEpochSecret(gs.epochSecret, commitSecret, gs.groupID, next)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	content, err := cc.content()
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	tag, err := e.confirmationTag(nextSecret, content)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	if !hmac.Equal(tag, cc.confirmationTag) {
		return domain.ProcessedMessage{}, fmt.Errorf("%w: confirmation tag mismatch", domain.ErrCrypto)
	}

	if err := e.writeLeafKey(gs.groupID, next, gs.ownLeaf, leafKP); err != nil {
		return domain.ProcessedMessage{}, err
	}
	if err := e.pruneLeafKeys(gs.groupID, next, gs.ownLeaf); err != nil {
		return domain.ProcessedMessage{}, err
	}
	nextState := &groupState{
		groupID:     gs.groupID,
		epoch:       next,
		ownLeaf:     gs.ownLeaf,
		active:      true,
		epochSecret: nextSecret,
		leaves:      roster,
	}
	if processed.State, err = nextState.marshal(); err != nil {
		return domain.ProcessedMessage{}, err
	}
	return processed, nil
}

// ProposeRemove returns a signed remove proposal for leaf. Proposals are
// informational: receivers validate them but only commits change the group.
func (e *Engine) ProposeRemove(state domain.GroupState, target domain.LeafIndex) ([]byte, error) {
	gs, err := e.activeState(state)
	if err != nil {
		return nil, err
	}
	if gs.leafAt(uint32(target)) == nil {
		return nil, fmt.Errorf("%w: leaf %d", domain.ErrUnknownMember, target)
	}
	p := &removeProposal{groupID: gs.groupID, epoch: gs.epoch, sender: gs.ownLeaf, removed: uint32(target)}
	tbs, err := p.tbs()
	if err != nil {
		return nil, err
	}
	if p.signature, err = e.sign(gs.own().sigKey, "proposal", tbs); err != nil {
		return nil, err
	}
	return p.marshal()
}

func (e *Engine) processProposal(gs *groupState, state domain.GroupState, body []byte) (domain.ProcessedMessage, error) {
	p, err := parseRemoveProposal(body)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	if !bytes.Equal(p.groupID, gs.groupID) {
		return domain.ProcessedMessage{}, errGroupMismatch
	}
	if p.epoch != gs.epoch {
		return domain.ProcessedMessage{}, fmt.Errorf("%w: proposal for epoch %d, group is at %d",
			domain.ErrWrongEpoch, p.epoch, gs.epoch)
	}
	sender := gs.leafAt(p.sender)
	if sender == nil {
		return domain.ProcessedMessage{}, fmt.Errorf("%w: proposal sender %d", domain.ErrUnknownMember, p.sender)
	}
	tbs, err := p.tbs()
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	if err := e.verify(sender.sigKey, "proposal", tbs, p.signature); err != nil {
		return domain.ProcessedMessage{}, err
	}
	return domain.ProcessedMessage{
		Kind:   domain.KindProposal,
		Sender: domain.LeafIndex(p.sender),
		State:  state,
	}, nil
}
