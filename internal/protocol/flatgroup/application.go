package flatgroup

import (
	"bytes"
	"fmt"
	"math"

	"mlsbridge/internal/domain"
)

// EncryptApplication encrypts and signs plaintext for the current epoch and
// advances the sender generation.
func (e *Engine) EncryptApplication(state domain.GroupState, plaintext []byte) ([]byte, domain.GroupState, error) {
	gs, err := e.activeState(state)
	if err != nil {
		return nil, nil, err
	}
	if gs.sendGeneration == math.MaxUint32 {
		return nil, nil, errGenerations
	}
	m := &privateMessage{
		groupID:    gs.groupID,
		epoch:      gs.epoch,
		sender:     gs.ownLeaf,
		generation: gs.sendGeneration,
	}
	key, nonce, err := e.messageKey(gs.epochSecret, m.sender, m.generation)
	if err != nil {
		return nil, nil, err
	}
	if m.ciphertext, err = e.crypto.AEADSeal(key, nonce, m.aad(), plaintext); err != nil {
		return nil, nil, err
	}
	tbs, err := m.tbs()
	if err != nil {
		return nil, nil, err
	}
	if m.signature, err = e.sign(gs.own().sigKey, "application", tbs); err != nil {
		return nil, nil, err
	}
	raw, err := m.marshal()
	if err != nil {
		return nil, nil, err
	}
	gs.sendGeneration++
	next, err := gs.marshal()
	if err != nil {
		return nil, nil, err
	}
	return raw, next, nil
}

func (e *Engine) processApplication(gs *groupState, body []byte) (domain.ProcessedMessage, error) {
	m, err := parsePrivate(body)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	if !bytes.Equal(m.groupID, gs.groupID) {
		return domain.ProcessedMessage{}, errGroupMismatch
	}
	if m.epoch != gs.epoch {
		return domain.ProcessedMessage{}, fmt.Errorf("%w: message for epoch %d, group is at %d",
			domain.ErrWrongEpoch, m.epoch, gs.epoch)
	}
	sender := gs.leafAt(m.sender)
	if sender == nil {
		return domain.ProcessedMessage{}, fmt.Errorf("%w: message sender %d", domain.ErrUnknownMember, m.sender)
	}
	tbs, err := m.tbs()
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	if err := e.verify(sender.sigKey, "application", tbs, m.signature); err != nil {
		return domain.ProcessedMessage{}, err
	}
	if gs.hasSeen(m.sender, m.generation) {
		return domain.ProcessedMessage{}, errReplay
	}
	key, nonce, err := e.messageKey(gs.epochSecret, m.sender, m.generation)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	pt, err := e.crypto.AEADOpen(key, nonce, m.aad(), m.ciphertext)
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	gs.remember(m.sender, m.generation)
	next, err := gs.marshal()
	if err != nil {
		return domain.ProcessedMessage{}, err
	}
	return domain.ProcessedMessage{
		Kind:        domain.KindApplication,
		Sender:      domain.LeafIndex(m.sender),
		Application: pt,
		State:       next,
	}, nil
}
