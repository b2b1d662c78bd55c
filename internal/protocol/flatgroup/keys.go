package flatgroup

import (
	"fmt"

	"mlsbridge/internal/domain"
)

const secretSize = 32

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorage, op, err)
}

// signer resolves the signature key pair for a public signature key.
func (e *Engine) signer(publicKey []byte) (domain.SignatureKeyPair, error) {
	raw, ok, err := e.store.ReadSignatureKeyPair(publicKey)
	if err != nil {
		return domain.SignatureKeyPair{}, storageErr("read signature key", err)
	}
	if !ok {
		return domain.SignatureKeyPair{}, fmt.Errorf("%w: signature key pair", domain.ErrMissingKey)
	}
	kp, err := domain.DecodeSignatureKeyPair(raw)
	if err != nil {
		return domain.SignatureKeyPair{}, fmt.Errorf("%w: signature key pair: %v", domain.ErrDecode, err)
	}
	return kp, nil
}

func (e *Engine) sign(publicKey []byte, name string, tbs []byte) ([]byte, error) {
	kp, err := e.signer(publicKey)
	if err != nil {
		return nil, err
	}
	return e.crypto.Sign(kp.Private, label(name, tbs))
}

func (e *Engine) verify(publicKey []byte, name string, tbs, sig []byte) error {
	if err := e.crypto.Verify(publicKey, label(name, tbs), sig); err != nil {
		return fmt.Errorf("%s signature: %w", name, err)
	}
	return nil
}

// leafKey loads this member's leaf key pair for an epoch.
func (e *Engine) leafKey(groupID []byte, epoch uint64, leaf uint32) (domain.HPKEKeyPair, error) {
	pairs, err := e.store.ReadEncryptionEpochKeyPairs(groupID, domain.Epoch(epoch), domain.LeafIndex(leaf))
	if err != nil {
		return domain.HPKEKeyPair{}, storageErr("read epoch key pairs", err)
	}
	if len(pairs) == 0 {
		return domain.HPKEKeyPair{}, fmt.Errorf("%w: leaf key for epoch %d", domain.ErrMissingKey, epoch)
	}
	kp, err := domain.DecodeHPKEKeyPair(pairs[0])
	if err != nil {
		return domain.HPKEKeyPair{}, fmt.Errorf("%w: leaf key: %v", domain.ErrDecode, err)
	}
	return kp, nil
}

func (e *Engine) writeLeafKey(groupID []byte, epoch uint64, leaf uint32, kp domain.HPKEKeyPair) error {
	enc, err := kp.Encode()
	if err != nil {
		return fmt.Errorf("encode leaf key: %w", err)
	}
	err = e.store.WriteEncryptionEpochKeyPairs(groupID, domain.Epoch(epoch), domain.LeafIndex(leaf), [][]byte{enc})
	if err != nil {
		return storageErr("write epoch key pairs", err)
	}
	return nil
}

func (e *Engine) deleteLeafKey(groupID []byte, epoch uint64, leaf uint32) error {
	err := e.store.DeleteEncryptionEpochKeyPairs(groupID, domain.Epoch(epoch), domain.LeafIndex(leaf))
	if err != nil {
		return storageErr("delete epoch key pairs", err)
	}
	return nil
}

// pruneLeafKeys drops the leaf key of the epoch before the previous one once
// the group has moved to epoch.
func (e *Engine) pruneLeafKeys(groupID []byte, epoch uint64, leaf uint32) error {
	if epoch < 2 {
		return nil
	}
	return e.deleteLeafKey(groupID, epoch-2, leaf)
}

func (e *Engine) nextEpochSecret(epochSecret, commitSecret, groupID []byte, next uint64) ([]byte, error) {
	joiner := e.crypto.Extract(epochSecret, commitSecret)
	return e.crypto.Expand(joiner, label("epoch", groupID, u64(next)), secretSize)
}

func (e *Engine) confirmationTag(epochSecret, content []byte) ([]byte, error) {
	key, err := e.crypto.Expand(epochSecret, label("confirm"), secretSize)
	if err != nil {
		return nil, err
	}
	return e.crypto.MAC(key, content), nil
}

// messageKey derives the AEAD key and nonce for one application message.
func (e *Engine) messageKey(epochSecret []byte, sender, generation uint32) (key, nonce []byte, err error) {
	ks, ns := e.crypto.AEADKeySize(), e.crypto.AEADNonceSize()
	okm, err := e.crypto.Expand(epochSecret, label("application", u32(sender), u32(generation)), ks+ns)
	if err != nil {
		return nil, nil, err
	}
	return okm[:ks], okm[ks:], nil
}
