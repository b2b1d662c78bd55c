// Package domain defines the data models and capability contracts shared by
// the group session adapter: identifiers, credentials, key packages, boundary
// values, the protocol engine, the crypto provider and the storage provider.
// It contains plain types and interfaces only.
package domain
