package auth

import (
	"strings"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
)

// Board roles recognized by the room. Roles map onto default permission sets;
// per-meeting overrides arrive through the token's explicit permission claim.
const (
	RoleChair     = "chair"
	RoleSecretary = "secretary"
	RoleMember    = "member"
	RoleObserver  = "observer"
)

// RolePermissions returns the default permission set for a board role.
func RolePermissions(role string) (domain.PermissionSet, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case RoleChair:
		return domain.NewPermissionSet(
			domain.PermissionStartSession,
			domain.PermissionPauseSession,
			domain.PermissionEndSession,
			domain.PermissionLeaveSession,
			domain.PermissionCastDocument,
			domain.PermissionStopCast,
			domain.PermissionNavigateAgenda,
			domain.PermissionManageVotes,
			domain.PermissionAdmitParticipants,
			domain.PermissionRemoveParticipants,
			domain.PermissionViewMinutes,
		), nil
	case RoleSecretary:
		return domain.NewPermissionSet(
			domain.PermissionLeaveSession,
			domain.PermissionCastDocument,
			domain.PermissionStopCast,
			domain.PermissionNavigateAgenda,
			domain.PermissionAdmitParticipants,
			domain.PermissionTakeMinutes,
			domain.PermissionViewMinutes,
		), nil
	case RoleMember:
		return domain.NewPermissionSet(
			domain.PermissionLeaveSession,
			domain.PermissionCastDocument,
			domain.PermissionViewMinutes,
		), nil
	case RoleObserver:
		return domain.NewPermissionSet(
			domain.PermissionLeaveSession,
		), nil
	default:
		return nil, errors.WithMetadata(errors.CodeAuthInvalidRole,
			"unknown board role", map[string]string{"Role": role})
	}
}
