// Package intent implements the loading-intention predicate deciding which
// protocol steps join a translation chain for a given client/server version
// pair. Evaluation is pure: the chain builder may re-evaluate an intent any
// number of times with identical results.
package intent
