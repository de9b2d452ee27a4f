package core

// IDGenerator produces opaque unique identifiers for accounts and
// donation events. Identifiers are never reused.
type IDGenerator interface {
	NewID() string
}
