package domain

// ProtocolID is the stable identity of a protocol step, usable as a map key.
type ProtocolID string

// String returns the string form of the identifier.
func (id ProtocolID) String() string { return string(id) }

// DataKey identifies a class of shared mapping data registered with the
// data-fill registry.
type DataKey string

// String returns the string form of the data key.
func (k DataKey) String() string { return string(k) }

// MappingData is a lazily loadable set of version-mapping tables owned by a
// protocol step. Load is blocking and may fail; Unload releases the tables so
// they can be reloaded later.
type MappingData interface {
	IsLoaded() bool
	Load() error
	Unload()
}

// Protocol is a single version-bridging translation step. IsRegistered reports
// whether the step has been activated into the translation chain; steps that
// were never activated keep their mapping data unloaded.
type Protocol interface {
	ID() ProtocolID
	ClientVersion() ProtocolVersion
	ServerVersion() ProtocolVersion
	MappingData() MappingData
	IsRegistered() bool
}
