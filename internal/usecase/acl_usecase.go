package usecase

import (
	"stylefeed/internal/repo/persistent"
	"stylefeed/pkg/logger"
	"stylefeed/pkg/models"
)

type ACLUseCase interface {
	RoleOf(userID, creatorID string) models.MembershipRole
	CanManage(userID, creatorID string) bool
	CanManagePost(userID string, post *models.Post) bool
	Memberships(userID string) ([]*models.Membership, error)
}

type aclUseCase struct {
	membershipRepo persistent.MembershipRepository
	logger         *logger.Logger
}

func NewACLUseCase(membershipRepo persistent.MembershipRepository, logger *logger.Logger) ACLUseCase {
	return &aclUseCase{
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// RoleOf answers with RoleNone on any lookup failure: a permission check must
// never default to permissive because storage was unavailable.
func (uc *aclUseCase) RoleOf(userID, creatorID string) models.MembershipRole {
	if userID == "" || creatorID == "" {
		return models.RoleNone
	}
	role, err := uc.membershipRepo.GetRole(userID, creatorID)
	if err != nil {
		uc.logger.Error("Membership lookup failed for user=%s creator=%s: %v", userID, creatorID, err)
		return models.RoleNone
	}
	return role
}

func (uc *aclUseCase) CanManage(userID, creatorID string) bool {
	return uc.RoleOf(userID, creatorID).IsWriteRole()
}

// CanManagePost delegates to CanManage through the post's author creator. A
// post with no author creator can never be managed.
func (uc *aclUseCase) CanManagePost(userID string, post *models.Post) bool {
	if post == nil || post.AuthorCreatorID == "" {
		return false
	}
	return uc.CanManage(userID, post.AuthorCreatorID)
}

func (uc *aclUseCase) Memberships(userID string) ([]*models.Membership, error) {
	memberships, err := uc.membershipRepo.ListByUser(userID)
	if err != nil {
		uc.logger.Error("Failed to list memberships for user=%s: %v", userID, err)
		return nil, err
	}
	return memberships, nil
}

// PickLandingMembership chooses the single profile a multi-membership user
// lands on after login: highest role priority wins (owner > editor > viewer),
// ties break to the most recently created membership. The order of two
// memberships with identical role and timestamp is implementation-defined.
func PickLandingMembership(memberships []*models.Membership) *models.Membership {
	var best *models.Membership
	for _, m := range memberships {
		if m == nil {
			continue
		}
		if best == nil {
			best = m
			continue
		}
		if m.Role.Priority() > best.Role.Priority() {
			best = m
			continue
		}
		if m.Role.Priority() == best.Role.Priority() && m.CreatedAt.After(best.CreatedAt) {
			best = m
		}
	}
	return best
}
