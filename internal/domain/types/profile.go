package types

// Profile binds a local profile name to the identity it was initialised with
// and the signature public key needed to restore that identity.
type Profile struct {
	Name         string `json:"name"`
	Identity     string `json:"identity"`
	SignatureKey []byte `json:"signature_key"`
	// Groups lists group ids (hex) this profile has created or joined.
	Groups []string `json:"groups,omitempty"`
}
