// Package serialization provides the native .segf container format for
// persisting trained vocabularies and named parameter buffers.
//
//	Format Structure:
//	  [4 bytes:  Magic "SEGF"]
//	  [4 bytes:  Version (uint32 LE)]
//	  [4 bytes:  Flags (uint32 LE)]
//	  [32 bytes: SHA-256 checksum of everything after the fixed prefix]
//	  [8 bytes:  Header Size (uint64 LE)]
//	  [Header: JSON metadata describing named sections]
//	  [Data area: section payloads packed contiguously, starting on a
//	   64-byte boundary]
//
// Sections are opaque byte payloads addressed by name; the header records
// each section's kind ("json" or "f32"), offset and size within the data
// area. Readers verify
// the checksum and reject overlapping or out-of-bounds sections before
// handing any payload to the caller.
//
// Example usage:
//
//	w := serialization.NewWriter()
//	w.Add("vocab", serialization.KindJSON, vocabJSON)
//	if err := w.Save("model.segf"); err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := serialization.Open("model.segf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vocabJSON, ok := r.Section("vocab")
package serialization
