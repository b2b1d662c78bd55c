package group

import (
	"github.com/samber/lo"

	"mlsbridge/internal/domain"
	"mlsbridge/internal/mlserr"
)

// Members lists the current members in leaf order.
func (s *Session) Members() ([]domain.Member, error) {
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	members, err := s.engine.Members(state)
	if err != nil {
		return nil, mlserr.Translate(err, mlserr.KindProtocol)
	}
	return members, nil
}

// Info returns a snapshot of the group: id, epoch and members.
func (s *Session) Info() (domain.GroupInfo, error) {
	state, err := s.load()
	if err != nil {
		return domain.GroupInfo{}, err
	}
	epoch, err := s.engine.CurrentEpoch(state)
	if err != nil {
		return domain.GroupInfo{}, mlserr.Translate(err, mlserr.KindProtocol)
	}
	members, err := s.engine.Members(state)
	if err != nil {
		return domain.GroupInfo{}, mlserr.Translate(err, mlserr.KindProtocol)
	}
	return domain.GroupInfo{
		ID:    s.groupID.String(),
		Epoch: uint64(epoch),
		Members: lo.Map(members, func(m domain.Member, _ int) domain.MemberInfo {
			return domain.MemberInfo{
				ID:           m.Credential.Text(),
				Credential:   m.Credential.Identity,
				AddedAtEpoch: uint64(m.AddedAt),
			}
		}),
	}, nil
}
