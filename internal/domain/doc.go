// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (identities, key material, fingerprints, stored
// records) and contracts (stores and services) only.
package domain
