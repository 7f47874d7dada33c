package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const segVersion = "0.2.0" // Current seg version

// Writer assembles a .segf file from named sections.
type Writer struct {
	sections []SectionMeta
	payloads map[string][]byte
	metadata map[string]string
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{
		payloads: make(map[string][]byte),
		metadata: make(map[string]string),
	}
}

// Add registers a named section payload. Section names must be non-empty,
// unique, free of control characters, and at most MaxSectionName bytes.
func (w *Writer) Add(name, kind string, data []byte) error {
	if name == "" {
		return ErrInvalidSectionName
	}
	if len(name) > MaxSectionName {
		return ErrSectionNameTooLong
	}
	if strings.ContainsFunc(name, func(r rune) bool { return r < 0x20 }) {
		return ErrInvalidSectionName
	}
	if _, exists := w.payloads[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSection, name)
	}
	if len(w.sections) >= MaxSections {
		return ErrTooManySections
	}

	w.sections = append(w.sections, SectionMeta{Name: name, Kind: kind})
	w.payloads[name] = data
	return nil
}

// SetMetadata attaches a free-form metadata entry to the header.
func (w *Writer) SetMetadata(key, value string) {
	w.metadata[key] = value
}

// Save writes the .segf file to path.
func (w *Writer) Save(path string) error {
	data, err := w.encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// encode assembles the complete file image in memory. Vocabularies and
// parameter checkpoints are small, so buffering the whole file keeps the
// checksum computation in one pass.
func (w *Writer) encode() ([]byte, error) {
	header := Header{
		FormatVersion: FormatVersion,
		SegVersion:    segVersion,
		CreatedAt:     time.Now().UTC(),
		Sections:      make([]SectionMeta, len(w.sections)),
		Metadata:      w.metadata,
	}

	var offset int64
	for i, meta := range w.sections {
		meta.Offset = offset
		meta.Size = int64(len(w.payloads[meta.Name]))
		header.Sections[i] = meta
		offset += meta.Size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}

	// Body: JSON header, padding to the alignment boundary, payloads.
	var body bytes.Buffer
	body.Write(headerJSON)
	pos := int64(FixedPrefixSize + len(headerJSON))
	if pad := (DataAlignment - pos%DataAlignment) % DataAlignment; pad > 0 {
		body.Write(make([]byte, pad))
	}
	for _, meta := range header.Sections {
		body.Write(w.payloads[meta.Name])
	}

	checksum := ComputeChecksum(body.Bytes())

	var out bytes.Buffer
	out.Grow(FixedPrefixSize + body.Len())
	out.WriteString(MagicBytes)
	if err := binary.Write(&out, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return nil, fmt.Errorf("failed to write version: %w", err)
	}
	var flags uint32
	if len(w.metadata) > 0 {
		flags |= FlagHasMetadata
	}
	if err := binary.Write(&out, binary.LittleEndian, flags); err != nil {
		return nil, fmt.Errorf("failed to write flags: %w", err)
	}
	out.Write(checksum[:])
	if err := binary.Write(&out, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return nil, fmt.Errorf("failed to write header size: %w", err)
	}
	out.Write(body.Bytes())

	return out.Bytes(), nil
}
