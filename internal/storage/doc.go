// Package storage defines the persistence interfaces for the room's
// collaborator data: meeting metadata, the roster, agenda items, document
// metadata, vote records and minutes.
//
// The live session engine itself is never persisted; stores hold only the
// surrounding board-governance records the engine loads at construction and
// the status updates collaborators write back during a session.
package storage
