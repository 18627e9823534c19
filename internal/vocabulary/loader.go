package vocabulary

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/compression"
	"golang.org/x/image/colornames"
)

//go:embed data/*.json
var bundled embed.FS

// BundledFS returns the vocabularies compiled into the binary.
func BundledFS() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// record mirrors one element of a resource file. Pointers distinguish an
// absent field from a zero value.
type record struct {
	Name        string      `json:"name"`
	Hex         string      `json:"hex"`
	RGB         *colour.RGB `json:"rgb"`
	Family      string      `json:"family"`
	CIName      string      `json:"ci_name"`
	Description string      `json:"description"`
}

// Loader reads vocabulary resources from a filesystem. Parsed entries are
// cached per resource, so aliases sharing a resource share one entry slice.
// A Loader is not safe for concurrent use.
type Loader struct {
	fsys    fs.FS
	maxSize int64
	logger  hclog.Logger
	parsed  map[string][]Entry
}

// NewLoader creates a loader over fsys. A nil fsys uses BundledFS and a nil
// logger discards output.
func NewLoader(fsys fs.FS, logger hclog.Logger) *Loader {
	if fsys == nil {
		fsys = BundledFS()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{
		fsys:    fsys,
		maxSize: compression.DefaultMaxSize,
		logger:  logger,
		parsed:  make(map[string][]Entry),
	}
}

// Invalidate forgets every parsed resource.
func (l *Loader) Invalidate() {
	clear(l.parsed)
}

// Load reads and validates the resource behind def.
func (l *Loader) Load(def Definition) (*Vocabulary, error) {
	if entries, ok := l.parsed[def.Resource]; ok {
		return &Vocabulary{key: def.Key, resource: def.Resource, entries: entries}, nil
	}

	var (
		entries []Entry
		err     error
	)
	if def.IsBuiltin() {
		entries, err = l.builtin(def)
	} else {
		entries, err = l.read(def)
	}
	if err != nil {
		return nil, err
	}

	l.parsed[def.Resource] = entries
	return &Vocabulary{key: def.Key, resource: def.Resource, entries: entries}, nil
}

func (l *Loader) read(def Definition) ([]Entry, error) {
	res, err := compression.ReadResource(l.fsys, def.Resource, l.maxSize)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s for vocabulary %q", ErrResourceNotFound, def.Resource, def.Key)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceParse, def.Resource, err)
	}

	entries, err := decode(res.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceParse, res.Path, err)
	}

	l.logger.Debug("loaded vocabulary", "key", def.Key, "resource", res.Path, "format", res.Format, "entries", len(entries))
	for _, e := range entries {
		if e.Hex != e.RGB.Hex() {
			l.logger.Warn("vocabulary entry hex disagrees with rgb", "key", def.Key, "name", e.Name, "hex", e.Hex, "rgb", e.RGB.Hex())
		}
	}
	return entries, nil
}

// decode parses a resource body into entries. Hex strings are normalised to
// upper case and missing families default to UnknownFamily.
func decode(data []byte) ([]Entry, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(records))
	for i, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("entry %d: missing name", i)
		}
		if r.RGB == nil {
			return nil, fmt.Errorf("entry %d (%s): missing rgb", i, r.Name)
		}
		if r.Hex == "" {
			return nil, fmt.Errorf("entry %d (%s): missing hex", i, r.Name)
		}
		hex, err := colour.ParseHex(r.Hex)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, r.Name, err)
		}
		family := r.Family
		if family == "" {
			family = UnknownFamily
		}
		entries = append(entries, Entry{
			Name:        r.Name,
			Hex:         hex.Hex(),
			RGB:         *r.RGB,
			Family:      family,
			CIName:      r.CIName,
			Description: r.Description,
		})
	}
	return entries, nil
}

// builtin generates vocabularies that ship as Go tables rather than files.
func (l *Loader) builtin(def Definition) ([]Entry, error) {
	switch strings.TrimPrefix(def.Resource, builtinPrefix) {
	case "css":
		entries := make([]Entry, 0, len(colornames.Names))
		for _, name := range colornames.Names {
			c := colour.ToRGB(colornames.Map[name])
			entries = append(entries, Entry{
				Name:   name,
				Hex:    c.Hex(),
				RGB:    c,
				Family: cssFamily(c),
			})
		}
		l.logger.Debug("generated vocabulary", "key", def.Key, "resource", def.Resource, "entries", len(entries))
		return entries, nil
	default:
		return nil, fmt.Errorf("%w: unknown builtin %s for vocabulary %q", ErrResourceNotFound, def.Resource, def.Key)
	}
}

// cssFamily assigns a coarse hue family to a named CSS colour.
func cssFamily(c colour.RGB) string {
	hsv := colour.RGBToHSV(c)
	switch {
	case hsv.S < 10 || hsv.V < 10:
		return "Neutral"
	case hsv.H < 15 || hsv.H >= 345:
		return "Red"
	case hsv.H < 45:
		return "Orange"
	case hsv.H < 70:
		return "Yellow"
	case hsv.H < 165:
		return "Green"
	case hsv.H < 255:
		return "Blue"
	case hsv.H < 290:
		return "Violet"
	default:
		return "Pink"
	}
}
