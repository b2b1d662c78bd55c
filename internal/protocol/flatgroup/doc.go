// Package flatgroup is a reference group key-agreement engine.
//
// It implements domain.Engine with a flat (treeless) key schedule: every
// commit draws a fresh commit secret, seals it to each remaining member's
// leaf key and derives the next epoch secret from it with HKDF. Joiners
// receive the new epoch secret in a welcome sealed to the init key of their
// key package. Application messages are encrypted under per-sender,
// per-generation keys derived from the epoch secret and are signed by the
// sender.
//
// The wire format is framed the way MLS frames messages (version, wire type,
// length-prefixed body) but is not RFC 9420 compatible. Hosts that need
// interoperability plug a full MLS engine behind domain.Engine instead.
//
// Private key material lives in the storage provider the engine is built
// with:
//   - signature key pairs, looked up by the credential's signature key
//   - key package init keys, in the encryption key pair space, consumed once
//     the joined state is persisted
//   - the member's own leaf key, in the epoch key pair space per epoch; the
//     epoch before the previous one is pruned on every transition
package flatgroup
