// Package auth is the identity collaborator for the live meeting room.
//
// It parses room access tokens into a Caller carrying the participant's
// identity and static role-permission set. The engine never authenticates;
// it only authorizes against the permission set supplied here.
package auth
