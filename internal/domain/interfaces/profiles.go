package interfaces

import domaintypes "mlsbridge/internal/domain/types"

// ProfileStore remembers which identity a named local profile uses, so a
// host can restore a client after a restart.
type ProfileStore interface {
	SaveProfile(profile domaintypes.Profile) error
	LoadProfile(name string) (domaintypes.Profile, bool, error)
}
