// Package models defines the core domain models for the watch-party service.
//
// # Entities
//
//   - Room: a viewing session (title, scheduled start time, host)
//   - Expense: a weighted monetary entry submitted by a room participant
//   - CatalogEntry: watchable content (title, type, duration, tags)
//   - Candidate: a (room, content) pair eligible for voting in that room
//   - Vote: a (room, voter) -> content choice, at most one row per voter per room
//
// # Design Principles
//
//  1. Participants are identified by plain user ID strings (no user accounts).
//  2. Rooms and expenses are immutable once created; votes replace on write.
//  3. Derived values (balances, tallies) live in the calculator package and are
//     never persisted.
//  4. Relationships use ID strings rather than pointers to avoid circular
//     references.
package models
