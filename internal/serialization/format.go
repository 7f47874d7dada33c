package serialization

import (
	"time"
)

// Format constants.
const (
	MagicBytes      = "SEGF"
	FormatVersion   = 1
	DataAlignment   = 64 // Data area starts on a 64-byte boundary
	ChecksumSize    = 32 // SHA-256
	FixedPrefixSize = 4 + 4 + 4 + ChecksumSize + 8

	MaxHeaderSize  = 16 * 1024 * 1024
	MaxSections    = 4096
	MaxSectionName = 256
)

// Section kinds.
const (
	KindJSON    = "json" // JSON-encoded payload
	KindFloat32 = "f32"  // little-endian float32 buffer
)

// Flags for the .segf format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
)

// Header is the JSON header of a .segf file.
type Header struct {
	FormatVersion int               `json:"format_version"` // Version of the .segf format
	SegVersion    string            `json:"seg_version"`    // Version of seg that created this file
	CreatedAt     time.Time         `json:"created_at"`     // When the file was created
	Sections      []SectionMeta     `json:"sections"`       // Section metadata
	Metadata      map[string]string `json:"metadata"`       // Custom metadata
}

// SectionMeta describes one named payload in a .segf file.
type SectionMeta struct {
	Name   string `json:"name"`   // Section name (e.g., "vocab", "param.embed")
	Kind   string `json:"kind"`   // Payload kind ("json", "f32")
	Offset int64  `json:"offset"` // Offset in the data section
	Size   int64  `json:"size"`   // Size in bytes
}
