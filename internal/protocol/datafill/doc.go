// Package datafill resolves mapping data shared between protocol steps.
//
// The registration, intention, and loading processes are as follows:
//
//  1. A step registers a data key with a run-once fill action while the engine
//     assembles its translation chain.
//  2. Every step that consumes the data under a key, including steps that do
//     not own it, registers an intent for that key.
//  3. As a step is activated into the chain, its fill actions run through
//     InitializeFromProtocol.
//  4. At the end, InitializeRequired sweeps the outstanding intents whose
//     owning step never joined the chain, loading and releasing their mapping
//     data around the fill.
package datafill
