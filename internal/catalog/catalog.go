// Package catalog provides the static line/station catalog. The data is
// compiled into the binary; stations are immutable once loaded and always
// handed out by reference order-preserving from the catalog file.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ibs-relief/relimap-cli/internal/models"
)

//go:embed data.yaml
var rawCatalog []byte

// catalogFile is the on-disk shape of the embedded catalog.
type catalogFile struct {
	Lines    []models.Line    `yaml:"lines" validate:"required,min=1,dive"`
	Stations []models.Station `yaml:"stations" validate:"required,min=1,dive"`
}

// Catalog holds the loaded lines and stations with lookup indexes.
type Catalog struct {
	lines    []models.Line
	stations []models.Station
	lineIdx  map[string]int
	stopIdx  map[string]int
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(rawCatalog)
}

// Parse parses and validates catalog data.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c := &Catalog{
		lines:    f.Lines,
		stations: f.Stations,
		lineIdx:  make(map[string]int, len(f.Lines)),
		stopIdx:  make(map[string]int, len(f.Stations)),
	}

	for i, l := range c.lines {
		if _, dup := c.lineIdx[l.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate line id %q", l.ID)
		}
		c.lineIdx[l.ID] = i
	}
	for i, s := range c.stations {
		if _, dup := c.stopIdx[s.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate station id %q", s.ID)
		}
		if _, ok := c.lineIdx[s.LineID]; !ok {
			return nil, fmt.Errorf("invalid catalog: station %q references unknown line %q", s.ID, s.LineID)
		}
		c.stopIdx[s.ID] = i
	}

	return c, nil
}

// Lines returns all lines in catalog order.
func (c *Catalog) Lines() []models.Line {
	out := make([]models.Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Stations returns the stations of one line in catalog order.
// An empty lineID returns the full catalog.
func (c *Catalog) Stations(lineID string) []models.Station {
	if lineID == "" {
		out := make([]models.Station, len(c.stations))
		copy(out, c.stations)
		return out
	}
	var out []models.Station
	for _, s := range c.stations {
		if s.LineID == lineID {
			out = append(out, s)
		}
	}
	return out
}

// Station looks up a station by id.
func (c *Catalog) Station(id string) (*models.Station, bool) {
	i, ok := c.stopIdx[id]
	if !ok {
		return nil, false
	}
	return &c.stations[i], true
}

// Line looks up a line by id.
func (c *Catalog) Line(id string) (*models.Line, bool) {
	i, ok := c.lineIdx[id]
	if !ok {
		return nil, false
	}
	return &c.lines[i], true
}

// DefaultLine returns the line used when a station's own line has no
// configuration. The first catalog entry is the designated default.
func (c *Catalog) DefaultLine() *models.Line {
	return &c.lines[0]
}
