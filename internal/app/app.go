package app

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"mlsbridge/internal/domain"
	"mlsbridge/internal/services/group"
	"mlsbridge/internal/services/identity"
)

var (
	// ErrNoProfile is returned when a profile name has not been initialised.
	ErrNoProfile = errors.New("no such profile, run init first")
	// ErrProfileExists is returned by InitProfile for a name already in use.
	ErrProfileExists = errors.New("profile already exists")
)

// App resolves profile names to identity clients and group sessions.
type App struct {
	wire *Wire
}

func New(w *Wire) *App { return &App{wire: w} }

// InitProfile creates a new identity and records it under name.
func (a *App) InitProfile(name, id string) (*identity.Client, error) {
	if _, ok, err := a.wire.Profiles.LoadProfile(name); err != nil {
		return nil, err
	} else if ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileExists, name)
	}
	c, err := identity.Initialize([]byte(id), a.wire.Deps())
	if err != nil {
		return nil, err
	}
	err = a.wire.Profiles.SaveProfile(domain.Profile{
		Name:         name,
		Identity:     id,
		SignatureKey: c.SignaturePublicKey(),
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Client restores the identity recorded under name.
func (a *App) Client(name string) (*identity.Client, error) {
	p, err := a.profile(name)
	if err != nil {
		return nil, err
	}
	return identity.Restore([]byte(p.Identity), p.SignatureKey, a.wire.Deps())
}

// Session reopens a group the profile belongs to.
func (a *App) Session(name, groupHex string) (*group.Session, error) {
	groupID, err := ParseGroupID(groupHex)
	if err != nil {
		return nil, err
	}
	c, err := a.Client(name)
	if err != nil {
		return nil, err
	}
	return c.Session(groupID)
}

// TrackGroup records that the profile is a member of groupID.
func (a *App) TrackGroup(name string, groupID domain.GroupID) error {
	p, err := a.profile(name)
	if err != nil {
		return err
	}
	p.Groups = lo.Uniq(append(p.Groups, groupID.String()))
	return a.wire.Profiles.SaveProfile(p)
}

// Groups lists the group ids recorded for the profile.
func (a *App) Groups(name string) ([]string, error) {
	p, err := a.profile(name)
	if err != nil {
		return nil, err
	}
	return p.Groups, nil
}

func (a *App) profile(name string) (domain.Profile, error) {
	p, ok, err := a.wire.Profiles.LoadProfile(name)
	if err != nil {
		return domain.Profile{}, err
	}
	if !ok {
		return domain.Profile{}, fmt.Errorf("%w: %s", ErrNoProfile, name)
	}
	return p, nil
}

// ParseGroupID decodes a hex group id.
func ParseGroupID(s string) (domain.GroupID, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) == 0 {
		return nil, fmt.Errorf("invalid group id %q: want non-empty hex", s)
	}
	return domain.GroupID(b), nil
}
