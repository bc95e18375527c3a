// Package models defines the core domain models for Véu & Gravata.
//
// # Ownership
//
// A Wedding is the root entity, owned by the couple's User account. It
// carries the full site configuration built up during onboarding: names,
// date, venue, template and color choices, dress code, banking details and
// the SiteContent block that drives the published page. CustomSection,
// Gift and Guest records hang off a Wedding by ID.
//
// # Design Principles
//
//  1. Flat configuration: SiteContent is a single struct with per-section
//     visibility flags, not a tree. A renderer only needs the merged
//     content and the flags.
//  2. IDs are UUID strings; relationships use ID strings, never pointers,
//     to avoid circular references.
//  3. Timestamps are Unix seconds.
//  4. Enums are typed strings so they survive JSON round-trips unchanged.
package models
