// Package catalog serves the site's built-in demonstration content: the
// sample participants, the dashboard overview figures and the landing page
// feature list.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/FATIELLLLLLL/SITE-WEB-DE-GESTION-D-INSCRIPTION/internal/participants"
)

// StatKind says how a Stat value is displayed.
type StatKind string

const (
	StatNumber  StatKind = "number"
	StatPercent StatKind = "percent"
)

// Stat is one dashboard overview card.
type Stat struct {
	Key   string   `yaml:"key"`
	Value float64  `yaml:"value"`
	Kind  StatKind `yaml:"kind"`
	Icon  string   `yaml:"icon"`
	Tone  string   `yaml:"tone"`
}

// Feature is one landing page feature card. Delay staggers its reveal, in
// milliseconds.
type Feature struct {
	Key   string `yaml:"key"`
	Icon  string `yaml:"icon"`
	Delay int    `yaml:"delay"`
}

// Catalog is the whole demonstration dataset.
type Catalog struct {
	Participants []participants.Participant `yaml:"participants"`
	Stats        []Stat                     `yaml:"stats"`
	Features     []Feature                  `yaml:"features"`
}

//go:embed sample.yaml
var sampleYAML []byte

var sample = mustParse(sampleYAML)

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded sample: %v", err))
	}
	return c
}

// Parse decodes and checks a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[int]struct{}, len(c.Participants))
	for _, p := range c.Participants {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate participant id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	for _, s := range c.Stats {
		switch s.Kind {
		case StatNumber, StatPercent:
		default:
			return nil, fmt.Errorf("stat %q: unknown kind %q", s.Key, s.Kind)
		}
	}
	return &c, nil
}

// Sample returns the embedded catalog. Callers get their own copies of the
// slices.
func Sample() Catalog {
	return Catalog{
		Participants: slices.Clone(sample.Participants),
		Stats:        slices.Clone(sample.Stats),
		Features:     slices.Clone(sample.Features),
	}
}

// Participants returns the sample participants in display order.
func Participants() []participants.Participant {
	return slices.Clone(sample.Participants)
}
