package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Reader reads a .segf file.
type Reader struct {
	header Header
	flags  uint32
	data   []byte // section payload area
}

// ReaderOptions configures Open.
type ReaderOptions struct {
	SkipChecksumValidation bool // Skip checksum validation (faster but less safe)
}

// Open reads and validates a .segf file with default options.
func Open(path string) (*Reader, error) {
	return OpenWithOptions(path, ReaderOptions{})
}

// OpenWithOptions reads and validates a .segf file. The whole file is
// loaded into memory; .segf payloads are vocabularies and parameter
// buffers, not multi-gigabyte model weights.
func OpenWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	r := &Reader{}
	if err := r.parse(raw, opts); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return r, nil
}

func (r *Reader) parse(raw []byte, opts ReaderOptions) error {
	if len(raw) < FixedPrefixSize {
		return ErrInvalidMagic
	}
	if string(raw[:4]) != MagicBytes {
		return ErrInvalidMagic
	}
	version := binary.LittleEndian.Uint32(raw[4:8])
	if version != FormatVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}
	r.flags = binary.LittleEndian.Uint32(raw[8:12])

	var stored [ChecksumSize]byte
	copy(stored[:], raw[12:12+ChecksumSize])

	headerSize := binary.LittleEndian.Uint64(raw[12+ChecksumSize : FixedPrefixSize])
	if headerSize > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	body := raw[FixedPrefixSize:]
	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(body), stored); err != nil {
			return err
		}
	}

	if uint64(len(body)) < headerSize {
		return &ValidationError{Type: "truncated_header", Details: "header size exceeds file size"}
	}
	if err := json.Unmarshal(body[:headerSize], &r.header); err != nil {
		return fmt.Errorf("failed to parse header JSON: %w", err)
	}

	dataStart := int64(FixedPrefixSize) + int64(headerSize)
	dataStart += (DataAlignment - dataStart%DataAlignment) % DataAlignment
	if dataStart > int64(len(raw)) {
		return &ValidationError{Type: "truncated_file", Details: "data section missing"}
	}
	r.data = raw[dataStart:]

	return r.validateSections()
}

// validateSections rejects malformed section tables: negative offsets,
// payloads extending past the data section, and overlapping payloads.
func (r *Reader) validateSections() error {
	if len(r.header.Sections) > MaxSections {
		return ErrTooManySections
	}

	seen := make(map[string]bool, len(r.header.Sections))
	for _, s := range r.header.Sections {
		if s.Name == "" || len(s.Name) > MaxSectionName {
			return &ValidationError{Type: "invalid_name", Section: s.Name, Details: "empty or oversized section name"}
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, s.Name)
		}
		seen[s.Name] = true
		if s.Offset < 0 || s.Size < 0 {
			return &ValidationError{Type: "negative_offset", Section: s.Name, Details: ErrNegativeOffset.Error()}
		}
		if s.Offset+s.Size > int64(len(r.data)) {
			return &ValidationError{Type: "out_of_bounds", Section: s.Name, Details: ErrOutOfBounds.Error()}
		}
	}

	ordered := make([]SectionMeta, len(r.header.Sections))
	copy(ordered, r.header.Sections)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Offset < ordered[j].Offset })
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if prev.Offset+prev.Size > cur.Offset {
			return &ValidationError{
				Type:     "offset_overlap",
				Section:  prev.Name,
				Section2: cur.Name,
				Details:  ErrOffsetOverlap.Error(),
			}
		}
	}
	return nil
}

// Header returns the parsed file header.
func (r *Reader) Header() Header {
	return r.header
}

// Metadata returns the value of a header metadata entry.
func (r *Reader) Metadata(key string) (string, bool) {
	v, ok := r.header.Metadata[key]
	return v, ok
}

// Section returns the payload of the named section.
func (r *Reader) Section(name string) ([]byte, bool) {
	for _, s := range r.header.Sections {
		if s.Name == name {
			return r.data[s.Offset : s.Offset+s.Size], true
		}
	}
	return nil, false
}

// Sections returns metadata for all sections, in file order.
func (r *Reader) Sections() []SectionMeta {
	out := make([]SectionMeta, len(r.header.Sections))
	copy(out, r.header.Sections)
	return out
}
