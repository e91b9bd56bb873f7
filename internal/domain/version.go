package domain

import "fmt"

// ProtocolVersion is an opaque, totally ordered wire-protocol version marker.
// Versions compare by numeric id; names are for display only. The zero value
// is Unknown.
type ProtocolVersion struct {
	id   int
	name string
}

// Unknown is the zero ProtocolVersion.
var Unknown = ProtocolVersion{}

// NewVersion constructs a version with the given numeric id and display name.
func NewVersion(id int, name string) ProtocolVersion {
	return ProtocolVersion{id: id, name: name}
}

// ID returns the numeric protocol id.
func (v ProtocolVersion) ID() int { return v.id }

// Name returns the display name of the version.
func (v ProtocolVersion) Name() string { return v.name }

// Known reports whether the version is a real version rather than the zero value.
func (v ProtocolVersion) Known() bool { return v != Unknown }

// HigherThan reports whether v is strictly newer than other.
func (v ProtocolVersion) HigherThan(other ProtocolVersion) bool { return v.id > other.id }

// LowerThan reports whether v is strictly older than other.
func (v ProtocolVersion) LowerThan(other ProtocolVersion) bool { return v.id < other.id }

// Equals reports whether v and other mark the same version.
func (v ProtocolVersion) Equals(other ProtocolVersion) bool { return v.id == other.id }

// String renders the version for logs and CLI output.
func (v ProtocolVersion) String() string {
	if v.name == "" {
		return fmt.Sprintf("v%d", v.id)
	}
	return fmt.Sprintf("%s (%d)", v.name, v.id)
}
