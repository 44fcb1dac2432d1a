// Package snapshot persists a grid to a single binary file.
//
// Format: 4-byte magic "GOLS", one version byte, big-endian uint32 cols and
// rows, then cols*rows cell bytes (0 or 1). The magic and version let a
// mismatched or truncated file be rejected instead of mis-indexed.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"golife/internal/core"
)

const (
	magic   = "GOLS"
	version = 1

	headerLen = len(magic) + 1 + 8
)

var (
	// ErrNotFound is returned by Load when no save file exists.
	ErrNotFound = errors.New("no saved game state")
	// ErrCorrupt is returned when a save file cannot be parsed into a
	// consistent grid.
	ErrCorrupt = errors.New("corrupt game state")
)

// Encode serializes the grid into the snapshot wire format.
func Encode(g *core.Grid) []byte {
	buf := make([]byte, 0, headerLen+g.Cols*g.Rows)
	buf = append(buf, magic...)
	buf = append(buf, version)
	buf = binary.BigEndian.AppendUint32(buf, uint32(g.Cols))
	buf = binary.BigEndian.AppendUint32(buf, uint32(g.Rows))
	buf = append(buf, g.Cells()...)
	return buf
}

// Decode parses a snapshot blob back into a grid.
func Decode(data []byte) (*core.Grid, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(data))
	}
	if !bytes.Equal(data[:len(magic)], []byte(magic)) {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	if v := data[len(magic)]; v != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, v)
	}
	cols := int(binary.BigEndian.Uint32(data[len(magic)+1:]))
	rows := int(binary.BigEndian.Uint32(data[len(magic)+5:]))
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrCorrupt, cols, rows)
	}
	body := data[headerLen:]
	if len(body) != cols*rows {
		return nil, fmt.Errorf("%w: %d cell bytes for a %dx%d grid", ErrCorrupt, len(body), cols, rows)
	}
	g, err := core.NewGrid(cols, rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	cells := g.Cells()
	for i, b := range body {
		if b > 1 {
			return nil, fmt.Errorf("%w: cell %d has value %d", ErrCorrupt, i, b)
		}
		cells[i] = b
	}
	return g, nil
}

// Store reads and writes snapshots at a fixed path.
type Store struct {
	Path string
}

// Save writes the entire grid to the store's path, replacing any previous
// snapshot.
func (s Store) Save(g *core.Grid) error {
	if err := os.WriteFile(s.Path, Encode(g), 0o644); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	return nil
}

// Load reads the snapshot back. The returned grid is freshly allocated; on
// any error the caller's current grid is untouched.
func (s Store) Load() (*core.Grid, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrNotFound, s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("load game state: %w", err)
	}
	return Decode(data)
}
