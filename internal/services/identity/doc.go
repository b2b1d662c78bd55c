// Package identity owns the local member: its credential and signature key
// pair, and the operations that create or enter groups.
//
// A Client is built once per identity with Initialize, or rebuilt after a
// restart with Restore. Group sessions it hands out share its engine and
// storage provider.
package identity
