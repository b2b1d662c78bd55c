package identity

import (
	"bytes"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"mlsbridge/internal/crypto"
	"mlsbridge/internal/domain"
	"mlsbridge/internal/mlserr"
	"mlsbridge/internal/services/group"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// identityInput bounds the identity so it fits a u16 length prefix.
type identityInput struct {
	Identity []byte `validate:"required,min=1,max=65535"`
}

// Deps are the collaborators a Client is built from.
type Deps struct {
	Engine  domain.Engine
	Crypto  domain.CryptoProvider
	Storage domain.StorageProvider
	Logger  *slog.Logger
	// Session options applied to every session the client hands out.
	Session []group.Option
}

// Client is one local member identity.
type Client struct {
	credential domain.Credential
	signer     domain.SignatureKeyPair

	engine  domain.Engine
	storage domain.StorageProvider
	log     *slog.Logger
	session []group.Option
}

// Initialize creates a new identity: it generates a signature key pair,
// stores it and binds it to identity in a basic credential.
func Initialize(identity []byte, deps Deps) (*Client, error) {
	if err := validate.Struct(identityInput{Identity: identity}); err != nil {
		return nil, mlserr.New(mlserr.KindCodec, "invalid identity: %v", err)
	}
	kp, err := deps.Crypto.GenerateSignatureKeyPair()
	if err != nil {
		return nil, mlserr.Crypto(err)
	}
	encoded, err := kp.Encode()
	if err != nil {
		return nil, mlserr.Serialization(err)
	}
	if err := deps.Storage.WriteSignatureKeyPair(kp.Public, encoded); err != nil {
		return nil, mlserr.Storage(err)
	}
	c := newClient(identity, kp, deps)
	c.log.Debug("identity initialized", "fingerprint", c.Fingerprint().String())
	return c, nil
}

// Restore rebuilds a client from a signature key pair stored by an earlier
// Initialize.
func Restore(identity, signaturePublicKey []byte, deps Deps) (*Client, error) {
	if err := validate.Struct(identityInput{Identity: identity}); err != nil {
		return nil, mlserr.New(mlserr.KindCodec, "invalid identity: %v", err)
	}
	raw, ok, err := deps.Storage.ReadSignatureKeyPair(signaturePublicKey)
	if err != nil {
		return nil, mlserr.Storage(err)
	}
	if !ok {
		return nil, mlserr.InvalidState("no stored signature key for identity")
	}
	kp, err := domain.DecodeSignatureKeyPair(raw)
	if err != nil {
		return nil, mlserr.Serialization(err)
	}
	if !bytes.Equal(kp.Public, signaturePublicKey) {
		return nil, mlserr.InvalidState("stored signature key does not match")
	}
	return newClient(identity, kp, deps), nil
}

func newClient(identity []byte, kp domain.SignatureKeyPair, deps Deps) *Client {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		credential: domain.Credential{
			Identity:     bytes.Clone(identity),
			SignatureKey: bytes.Clone(kp.Public),
		},
		signer:  kp,
		engine:  deps.Engine,
		storage: deps.Storage,
		log:     log,
		session: append([]group.Option{group.WithLogger(log)}, deps.Session...),
	}
}

// Credential returns the client's basic credential.
func (c *Client) Credential() domain.Credential {
	return domain.Credential{
		Identity:     bytes.Clone(c.credential.Identity),
		SignatureKey: bytes.Clone(c.credential.SignatureKey),
	}
}

// SignaturePublicKey returns the public half of the signature key pair.
func (c *Client) SignaturePublicKey() []byte { return bytes.Clone(c.signer.Public) }

// Fingerprint returns a short, human-comparable form of the signature key.
func (c *Client) Fingerprint() domain.Fingerprint { return crypto.Fingerprint(c.signer.Public) }

// CreateGroup founds a new group with the client as its only member.
// Creating over an existing group id fails.
func (c *Client) CreateGroup(groupID domain.GroupID) (*group.Session, error) {
	if _, ok, err := c.storage.ReadGroupState(groupID); err != nil {
		return nil, mlserr.Storage(err)
	} else if ok {
		return nil, mlserr.InvalidState("group " + groupID.String() + " already exists")
	}
	state, err := c.engine.CreateGroup(groupID, c.credential)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindProtocol)
	}
	if err := c.storage.WriteGroupState(groupID, state); err != nil {
		return nil, mlserr.Storage(err)
	}
	c.log.Debug("group created", "group", groupID.String())
	return group.New(groupID, c.engine, c.storage, c.session...), nil
}

// JoinGroup enters a group from a welcome message. The group id is taken
// from the welcome.
func (c *Client) JoinGroup(welcome []byte) (*group.Session, error) {
	msg, err := c.engine.ParseMessage(welcome)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindCodec)
	}
	if msg.Kind != domain.KindWelcome {
		return nil, mlserr.InvalidMessageType("welcome", msg.Kind)
	}
	state, err := c.engine.JoinGroup(msg)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindProtocol)
	}
	groupID, err := c.engine.GroupID(state)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindProtocol)
	}
	if err := c.storage.WriteGroupState(groupID, state); err != nil {
		return nil, mlserr.Storage(err)
	}
	// The key package is one-time; it goes only once the join is durable.
	if err := c.engine.ConsumeKeyPackage(msg); err != nil {
		return nil, mlserr.Translate(err, mlserr.KindStorage)
	}
	c.log.Debug("group joined", "group", groupID.String())
	return group.New(groupID, c.engine, c.storage, c.session...), nil
}

// Session reopens a stored group.
func (c *Client) Session(groupID domain.GroupID) (*group.Session, error) {
	if _, ok, err := c.storage.ReadGroupState(groupID); err != nil {
		return nil, mlserr.Storage(err)
	} else if !ok {
		return nil, mlserr.InvalidState("no stored state for group " + groupID.String())
	}
	return group.New(groupID, c.engine, c.storage, c.session...), nil
}

// ExportKeyPackage generates a fresh key package for others to add the
// client with. It is stored under its reference before it is returned, so a
// later welcome can be matched to it.
func (c *Client) ExportKeyPackage() ([]byte, error) {
	kp, err := c.engine.GenerateKeyPackage(c.credential)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindProtocol)
	}
	ref, err := c.engine.KeyPackageRef(kp)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindProtocol)
	}
	if len(kp.Raw) == 0 {
		return nil, mlserr.New(mlserr.KindCodec, "engine returned an empty key package")
	}
	if err := c.storage.WriteKeyPackage(ref, kp.Raw); err != nil {
		return nil, mlserr.Storage(err)
	}
	c.log.Debug("key package exported", "ref", ref.String())
	return bytes.Clone(kp.Raw), nil
}
