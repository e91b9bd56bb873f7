package intent

import (
	"fmt"

	"viaduct/internal/domain"
)

type kind int

const (
	kindAll kind = iota
	kindFromServerVersion
	kindUpToClientVersion
	kindForServerVersion
	kindForClientVersion
)

// Intent decides whether a protocol step should be loaded. The zero value is
// All. Each strategy carries at most one threshold version; the closed set of
// strategies keeps every tie-break rule independently testable.
type Intent struct {
	kind    kind
	version domain.ProtocolVersion
}

// All loads every protocol step. With All the finalize sweep has nothing left
// to do, since every step's data initializes through the normal path.
func All() Intent {
	return Intent{kind: kindAll}
}

// FromServerVersion loads upgrade-direction steps for servers newer than min.
func FromServerVersion(min domain.ProtocolVersion) Intent {
	return Intent{kind: kindFromServerVersion, version: min}
}

// UpToClientVersion loads upgrade-direction steps for clients up to max.
func UpToClientVersion(max domain.ProtocolVersion) Intent {
	return Intent{kind: kindUpToClientVersion, version: max}
}

// ForServerVersion loads the steps needed to reach the fixed server version v
// from either direction.
func ForServerVersion(v domain.ProtocolVersion) Intent {
	return Intent{kind: kindForServerVersion, version: v}
}

// ForClientVersion loads the steps needed to serve the fixed client version v
// from either direction. Note this is not a mirror image of ForServerVersion:
// the fixed version is compared against a different side per direction.
func ForClientVersion(v domain.ProtocolVersion) Intent {
	return Intent{kind: kindForClientVersion, version: v}
}

// ShouldBeLoaded reports whether the step bridging client to server should be
// activated into the translation chain.
func (i Intent) ShouldBeLoaded(_ domain.Protocol, client, server domain.ProtocolVersion) bool {
	switch i.kind {
	case kindAll:
		return true
	case kindFromServerVersion:
		return client.HigherThan(server) && client.HigherThan(i.version)
	case kindUpToClientVersion:
		return client.HigherThan(server) && server.LowerThan(i.version)
	case kindForServerVersion:
		if client.HigherThan(server) {
			return i.version.LowerThan(client)
		}
		return i.version.HigherThan(client)
	case kindForClientVersion:
		if client.LowerThan(server) {
			return i.version.HigherThan(client)
		}
		return i.version.LowerThan(server)
	}
	return false
}

// Parse resolves a strategy name from configuration. All strategies except
// "all" require a threshold version.
func Parse(strategy string, threshold domain.ProtocolVersion) (Intent, error) {
	switch strategy {
	case "", "all":
		return All(), nil
	}
	if !threshold.Known() {
		return Intent{}, fmt.Errorf("intent strategy %q requires a version", strategy)
	}
	switch strategy {
	case "from-server":
		return FromServerVersion(threshold), nil
	case "up-to-client":
		return UpToClientVersion(threshold), nil
	case "for-server":
		return ForServerVersion(threshold), nil
	case "for-client":
		return ForClientVersion(threshold), nil
	default:
		return Intent{}, fmt.Errorf("unknown intent strategy %q", strategy)
	}
}
