// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides the building blocks that every aggregate relies on:
//
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid,
//     used as the identity of mission orders, vehicles, assignments and audit
//     entries.
//   - Period: an immutable date range enforcing that the end date is never
//     before the start date. A mission order carries its travel period as a
//     single Period value, which makes the date invariant impossible to break
//     after construction.
//
// All kernel types are value objects: immutable, compared by value, and only
// constructible through factory functions that validate their invariants.
package kernel
