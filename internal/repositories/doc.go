// Package repositories implements SQLite persistence for client-side durable state.
//
// The client keeps a handful of string-keyed slots (the serialized current user being the main one) in the settings table
// created by the embedded migrations in package shared.
//
// Key Implementations:
//   - [SettingsRepository] : Get/Put/Delete of string values by key
package repositories
