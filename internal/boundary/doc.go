// Package boundary converts the structured values handed to hosts (Commit
// and Ciphertext) to and from bytes. Protocol payloads inside them are
// carried verbatim.
//
// Two forms exist: a compact binary form built with cryptobyte, and the JSON
// form given by the struct tags on domain.Commit and domain.Ciphertext.
package boundary
