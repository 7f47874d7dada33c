// Package param provides named parameter buffers with shared-ownership
// gradient accumulation, and a store for checkpointing them by name.
//
// A Parameter is a single owned float32 buffer. Several usage sites may
// hold the same *Parameter (weight tying); gradient contributions from
// every site accumulate into the one shared gradient buffer rather than
// overwriting each other:
//
//	embed := param.New("embed", weights)
//	store.Register("embed", embed)
//	store.Tie("output.weight", "embed") // second reference site
//
//	// Both sites route their contributions into the same buffer.
//	embed.AccumulateGrad(gradFromEmbedding)
//	embed.AccumulateGrad(gradFromOutput)
//
// The store persists unique buffers through the .segf container, recording
// ties in metadata so aliases survive a save/load round trip.
package param
