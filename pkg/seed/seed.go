package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/arnavshah/shift-board-api/pkg/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// SectorPattern describes the slot every shift gets for one sector
type SectorPattern struct {
	Sector string `yaml:"sector"`
	Role   string `yaml:"role"`
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
}

// Pattern is the sector x shift grid used to generate default slots
type Pattern struct {
	Shifts  []string        `yaml:"shifts"`
	Sectors []SectorPattern `yaml:"sectors"`
}

// Data is the initial content of a board
type Data struct {
	Slots    []models.Slot    `yaml:"slots"`
	Requests []models.Request `yaml:"requests"`
	Pattern  Pattern          `yaml:"pattern"`
}

// Default returns the embedded seed data
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// Load reads seed data from path, or the embedded default when path is empty
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML seed data and checks request statuses
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	for i, r := range d.Requests {
		if r.ID == "" {
			return nil, fmt.Errorf("seed request %d has no id", i)
		}
		if r.Status == "" {
			d.Requests[i].Status = models.StatusPending
			continue
		}
		if !r.Status.Valid() {
			return nil, fmt.Errorf("seed request %s has unknown status %q", r.ID, r.Status)
		}
	}
	return &d, nil
}

// Slots expands the pattern into slots, sector-major. IDs are left empty so
// the slot store assigns them.
func (p Pattern) Slots() []models.Slot {
	out := make([]models.Slot, 0, len(p.Sectors)*len(p.Shifts))
	for _, sec := range p.Sectors {
		for _, sh := range p.Shifts {
			out = append(out, models.Slot{
				Sector: sec.Sector,
				Shift:  sh,
				Role:   sec.Role,
				Min:    sec.Min,
				Max:    sec.Max,
			})
		}
	}
	return out
}
