// Package protocol provides the base implementation of a version-bridging
// translation step. Concrete steps are assembled from a version pair, mapping
// data, and the fill actions and intents they declare against the shared-data
// registry.
package protocol
