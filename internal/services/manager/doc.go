// Package manager assembles translation chains. It owns the known protocol
// steps, the configured loading intent, and the shared-data registry, and
// drives the boot sequence: activate the steps the intent selects, drain their
// fill actions, sweep leftover intents, then clear the registry.
package manager
