// Package crypto exposes the primitives the group engine is built on.
//
// Contents
//
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - X25519 key generation, clamping and Diffie–Hellman (GenerateX25519, DH)
//   - HPKE-style sealing to an X25519 public key (SealTo, OpenFrom)
//   - SHA-256, HMAC and HKDF helpers (Hash, MAC, Extract, Expand)
//   - Provider, which bundles all of the above behind domain.CryptoProvider
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Failures of the underlying primitives are wrapped with domain.ErrCrypto so
// callers can classify them without inspecting library errors. Callers
// should treat returned secrets as sensitive and rely on Wipe when practical.
package crypto
