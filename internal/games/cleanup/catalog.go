package cleanup

import (
	"fmt"

	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/core"
)

// Archetype is the kind of digital waste an item represents.
type Archetype string

const (
	ArchetypeEmail Archetype = "email"
	ArchetypeVideo Archetype = "video"
	ArchetypeAI    Archetype = "ai"
	ArchetypeFile  Archetype = "file"
)

// Bin is a classification target.
type Bin string

const (
	BinDelete  Bin = "delete"
	BinArchive Bin = "archive"
	BinRecycle Bin = "recycle"
)

// Bins lists every bin in display order.
var Bins = []Bin{BinDelete, BinArchive, BinRecycle}

// Valid reports whether a is a known archetype.
func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeEmail, ArchetypeVideo, ArchetypeAI, ArchetypeFile:
		return true
	}
	return false
}

// Label returns the short on-screen tag for the archetype.
func (a Archetype) Label() string {
	switch a {
	case ArchetypeEmail:
		return "[mail]"
	case ArchetypeVideo:
		return "[video]"
	case ArchetypeAI:
		return "[ai]"
	case ArchetypeFile:
		return "[file]"
	default:
		return "[?]"
	}
}

// Color returns the display color for the archetype.
func (a Archetype) Color() core.Color {
	switch a {
	case ArchetypeEmail:
		return core.ColorRed
	case ArchetypeVideo:
		return core.ColorBlue
	case ArchetypeAI:
		return core.ColorMagenta
	case ArchetypeFile:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// Valid reports whether b is a known bin.
func (b Bin) Valid() bool {
	switch b {
	case BinDelete, BinArchive, BinRecycle:
		return true
	}
	return false
}

// Color returns the display color for the bin.
func (b Bin) Color() core.Color {
	switch b {
	case BinDelete:
		return core.ColorRed
	case BinArchive:
		return core.ColorBlue
	case BinRecycle:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// BinForAction maps a bin input action to its bin.
func BinForAction(a core.Action) (Bin, bool) {
	switch a {
	case core.ActionBinDelete:
		return BinDelete, true
	case core.ActionBinArchive:
		return BinArchive, true
	case core.ActionBinRecycle:
		return BinRecycle, true
	}
	return "", false
}

// CatalogEntry is the ground truth for one spawned item.
type CatalogEntry struct {
	Archetype Archetype
	Bin       Bin
}

// Catalog is the ordered list of items spawned each round.
type Catalog []CatalogEntry

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() Catalog {
	c, err := CatalogFromConfig(config.DefaultCleanupConfig().Catalog)
	if err != nil {
		panic(err)
	}
	return c
}

// CatalogFromConfig converts and validates configured catalog entries.
func CatalogFromConfig(entries []config.CatalogEntry) (Catalog, error) {
	c := make(Catalog, 0, len(entries))
	for _, e := range entries {
		c = append(c, CatalogEntry{Archetype: Archetype(e.Archetype), Bin: Bin(e.Bin)})
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the catalog is non-empty, uses known names and
// sends at least one archetype to every bin.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("cleanup: catalog is empty")
	}

	covered := make(map[Bin]bool, len(Bins))
	for i, e := range c {
		if !e.Archetype.Valid() {
			return fmt.Errorf("cleanup: catalog entry %d has unknown archetype %q", i, e.Archetype)
		}
		if !e.Bin.Valid() {
			return fmt.Errorf("cleanup: catalog entry %d has unknown bin %q", i, e.Bin)
		}
		covered[e.Bin] = true
	}

	for _, b := range Bins {
		if !covered[b] {
			return fmt.Errorf("cleanup: no catalog entry belongs in the %s bin", b)
		}
	}
	return nil
}
