package store

import (
	"fmt"

	"mlsbridge/internal/domain"
)

// Backend is a flat byte store partitioned by key space. Get reports absence
// with ok=false and a nil error.
type Backend interface {
	Put(space Space, key, value []byte) error
	Get(space Space, key []byte) (value []byte, ok bool, err error)
	Delete(space Space, key []byte) error
}

// Provider implements domain.StorageProvider over a Backend.
type Provider struct {
	b Backend
}

// NewProvider returns a Provider writing through b.
func NewProvider(b Backend) *Provider { return &Provider{b: b} }

func (p *Provider) put(space Space, key, value []byte) error {
	if err := p.b.Put(space, key, EncodeRecord(value)); err != nil {
		return fmt.Errorf("write %s: %w", space, err)
	}
	return nil
}

func (p *Provider) get(space Space, key []byte) ([]byte, bool, error) {
	raw, ok, err := p.b.Get(space, key)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", space, err)
	}
	if !ok {
		return nil, false, nil
	}
	v, err := DecodeRecord(raw)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", space, err)
	}
	return v, true, nil
}

func (p *Provider) del(space Space, key []byte) error {
	if err := p.b.Delete(space, key); err != nil {
		return fmt.Errorf("delete %s: %w", space, err)
	}
	return nil
}

func (p *Provider) WriteGroupState(groupID domain.GroupID, state []byte) error {
	return p.put(SpaceGroupState, groupID, state)
}

func (p *Provider) ReadGroupState(groupID domain.GroupID) ([]byte, bool, error) {
	return p.get(SpaceGroupState, groupID)
}

func (p *Provider) DeleteGroupState(groupID domain.GroupID) error {
	return p.del(SpaceGroupState, groupID)
}

func (p *Provider) WriteKeyPackage(ref domain.KeyPackageRef, keyPackage []byte) error {
	return p.put(SpaceKeyPackage, ref, keyPackage)
}

func (p *Provider) ReadKeyPackage(ref domain.KeyPackageRef) ([]byte, bool, error) {
	return p.get(SpaceKeyPackage, ref)
}

func (p *Provider) DeleteKeyPackage(ref domain.KeyPackageRef) error {
	return p.del(SpaceKeyPackage, ref)
}

func (p *Provider) WriteSignatureKeyPair(publicKey, keyPair []byte) error {
	return p.put(SpaceSignatureKey, publicKey, keyPair)
}

func (p *Provider) ReadSignatureKeyPair(publicKey []byte) ([]byte, bool, error) {
	return p.get(SpaceSignatureKey, publicKey)
}

func (p *Provider) DeleteSignatureKeyPair(publicKey []byte) error {
	return p.del(SpaceSignatureKey, publicKey)
}

func (p *Provider) WriteEncryptionKeyPair(publicKey, keyPair []byte) error {
	return p.put(SpaceEncryptionKey, publicKey, keyPair)
}

func (p *Provider) ReadEncryptionKeyPair(publicKey []byte) ([]byte, bool, error) {
	return p.get(SpaceEncryptionKey, publicKey)
}

func (p *Provider) DeleteEncryptionKeyPair(publicKey []byte) error {
	return p.del(SpaceEncryptionKey, publicKey)
}

func (p *Provider) WriteEncryptionEpochKeyPairs(
	groupID domain.GroupID,
	epoch domain.Epoch,
	leaf domain.LeafIndex,
	keyPairs [][]byte,
) error {
	v, err := encodeList(keyPairs)
	if err != nil {
		return fmt.Errorf("write %s: %w", SpaceEpochKeyPairs, err)
	}
	return p.put(SpaceEpochKeyPairs, EpochKeyID(groupID, epoch, leaf), v)
}

func (p *Provider) ReadEncryptionEpochKeyPairs(
	groupID domain.GroupID,
	epoch domain.Epoch,
	leaf domain.LeafIndex,
) ([][]byte, error) {
	v, ok, err := p.get(SpaceEpochKeyPairs, EpochKeyID(groupID, epoch, leaf))
	if err != nil {
		return nil, err
	}
	if !ok {
		return [][]byte{}, nil
	}
	out, err := decodeList(v)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SpaceEpochKeyPairs, err)
	}
	return out, nil
}

func (p *Provider) DeleteEncryptionEpochKeyPairs(
	groupID domain.GroupID,
	epoch domain.Epoch,
	leaf domain.LeafIndex,
) error {
	return p.del(SpaceEpochKeyPairs, EpochKeyID(groupID, epoch, leaf))
}

func (p *Provider) WritePSK(pskID, psk []byte) error {
	return p.put(SpacePSK, pskID, psk)
}

func (p *Provider) ReadPSK(pskID []byte) ([]byte, bool, error) {
	return p.get(SpacePSK, pskID)
}

func (p *Provider) DeletePSK(pskID []byte) error {
	return p.del(SpacePSK, pskID)
}

// Compile-time assertion that Provider implements domain.StorageProvider.
var _ domain.StorageProvider = (*Provider)(nil)
