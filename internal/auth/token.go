package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/domain"
)

// Caller identifies the participant behind an engine action.
type Caller struct {
	UserID        string
	ParticipantID string
	DisplayName   string
	Role          string
	Guest         bool
	Locale        string
	Permissions   domain.PermissionSet
}

// Claims is the room access token payload. The subject is the user ID.
type Claims struct {
	jwt.RegisteredClaims
	MeetingID     string   `json:"meeting_id"`
	ParticipantID string   `json:"participant_id"`
	DisplayName   string   `json:"display_name"`
	Role          string   `json:"role"`
	Guest         bool     `json:"guest,omitempty"`
	Locale        string   `json:"locale,omitempty"`
	Permissions   []string `json:"permissions,omitempty"`
}

// IssueRoomToken signs an HS256 room access token for a roster participant.
// When the permissions claim is empty, parsers fall back to the role default.
func IssueRoomToken(secret []byte, claims Claims, now time.Time, ttl time.Duration) (string, error) {
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(errors.CodeAuthInvalidToken, "sign room token", err)
	}
	return signed, nil
}

// ParseRoomToken validates an HS256 room access token for the given meeting
// and resolves the caller's permission set. An explicit permissions claim
// overrides the role default entirely.
func ParseRoomToken(secret []byte, meetingID, tokenString string) (Caller, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Caller{}, errors.Wrap(errors.CodeAuthInvalidToken, "parse room token", err)
	}

	if strings.TrimSpace(claims.MeetingID) == "" || claims.MeetingID != meetingID {
		return Caller{}, errors.New(errors.CodeAuthInvalidToken, "token is for a different meeting")
	}

	perms, err := callerPermissions(claims)
	if err != nil {
		return Caller{}, err
	}

	return Caller{
		UserID:        claims.Subject,
		ParticipantID: claims.ParticipantID,
		DisplayName:   claims.DisplayName,
		Role:          claims.Role,
		Guest:         claims.Guest,
		Locale:        claims.Locale,
		Permissions:   perms,
	}, nil
}

func callerPermissions(claims Claims) (domain.PermissionSet, error) {
	if len(claims.Permissions) > 0 {
		set := make(domain.PermissionSet, len(claims.Permissions))
		for _, p := range claims.Permissions {
			set[domain.Permission(p)] = true
		}
		return set, nil
	}
	return RolePermissions(claims.Role)
}
