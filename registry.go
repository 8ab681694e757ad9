package syxpack

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnknownManufacturer is the display name of identifiers with no registry entry.
const UnknownManufacturer = "(unknown)"

// Group is the regional block a manufacturer identifier was assigned from.
type Group uint8

const (
	GroupOther Group = iota
	GroupAmerican
	GroupEuropeanOrOther
	GroupJapanese
)

func (g Group) String() string {
	switch g {
	case GroupAmerican:
		return "american"
	case GroupEuropeanOrOther:
		return "european"
	case GroupJapanese:
		return "japanese"
	default:
		return "other"
	}
}

// ParseGroup is the inverse of Group.String.
func ParseGroup(s string) (Group, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "american":
		return GroupAmerican, nil
	case "european", "europeanorother":
		return GroupEuropeanOrOther, nil
	case "japanese":
		return GroupJapanese, nil
	case "other", "":
		return GroupOther, nil
	}
	return GroupOther, fmt.Errorf("unknown manufacturer group %q", s)
}

// Manufacturer is one registry entry.
type Manufacturer struct {
	ID            ManufacturerID
	DisplayName   string
	CanonicalName string
	Group         Group
}

func (m Manufacturer) String() string {
	return m.DisplayName
}

//go:embed manufacturers.yaml
var registryData []byte

type registryFile struct {
	Manufacturers []registryRow `yaml:"manufacturers"`
}

type registryRow struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Canonical string `yaml:"canonical"`
	Group     string `yaml:"group"`
}

type table struct {
	byID   map[ManufacturerID]Manufacturer
	byName map[string]ManufacturerID
	sorted []Manufacturer
}

// Built once during package initialization and only read afterwards.
var registry = mustLoadTable(registryData)

func mustLoadTable(data []byte) *table {
	t, err := loadTable(data)
	if err != nil {
		panic(err)
	}
	return t
}

func loadTable(data []byte) (*table, error) {
	var f registryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing manufacturer table: %w", err)
	}

	t := &table{
		byID:   make(map[ManufacturerID]Manufacturer, len(f.Manufacturers)),
		byName: make(map[string]ManufacturerID, 2*len(f.Manufacturers)),
	}

	for i, row := range f.Manufacturers {
		id, err := parseHexID(row.ID)
		if err != nil {
			return nil, fmt.Errorf("manufacturer table row %d: %w", i+1, err)
		}
		if _, dup := t.byID[id]; dup {
			return nil, fmt.Errorf("manufacturer table row %d: duplicate id %s", i+1, id)
		}
		if row.Name == "" {
			return nil, fmt.Errorf("manufacturer table row %d: missing name", i+1)
		}
		group, err := ParseGroup(row.Group)
		if err != nil {
			return nil, fmt.Errorf("manufacturer table row %d: %w", i+1, err)
		}

		m := Manufacturer{
			ID:            id,
			DisplayName:   row.Name,
			CanonicalName: row.Canonical,
			Group:         group,
		}
		if m.CanonicalName == "" {
			m.CanonicalName = m.DisplayName
		}
		t.byID[id] = m

		for _, name := range []string{m.DisplayName, m.CanonicalName} {
			key := nameKey(name)
			if other, ok := t.byName[key]; ok && other != id {
				return nil, fmt.Errorf("manufacturer table row %d: name %q already used by %s", i+1, name, other)
			}
			t.byName[key] = id
		}
		t.sorted = append(t.sorted, m)
	}

	sort.Slice(t.sorted, func(i, j int) bool {
		return bytes.Compare(t.sorted[i].ID.Bytes(), t.sorted[j].ID.Bytes()) < 0
	})
	return t, nil
}

// parseHexID reads "43" or "00 20 29" style identifiers.
func parseHexID(s string) (ManufacturerID, error) {
	fields := strings.Fields(s)
	raw := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return ManufacturerID{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
		}
		raw = append(raw, byte(v))
	}

	id, n, err := ParseManufacturerID(raw)
	if err != nil {
		return ManufacturerID{}, err
	}
	if n != len(raw) {
		return ManufacturerID{}, fmt.Errorf("%w: %q has %d trailing bytes", ErrInvalidIdentifier, s, len(raw)-n)
	}
	return id, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the registry entry for id.
func Lookup(id ManufacturerID) (Manufacturer, bool) {
	m, ok := registry.byID[id]
	return m, ok
}

// ManufacturerName returns the display name of id, or UnknownManufacturer.
// Unregistered identifiers are valid wire data, so this never fails.
func ManufacturerName(id ManufacturerID) string {
	if m, ok := registry.byID[id]; ok {
		return m.DisplayName
	}
	return UnknownManufacturer
}

// LookupName finds the identifier registered under a display or canonical
// name. Matching ignores case and surrounding space.
func LookupName(name string) (ManufacturerID, error) {
	if id, ok := registry.byName[nameKey(name)]; ok {
		return id, nil
	}
	return ManufacturerID{}, fmt.Errorf("%w: %q", ErrManufacturerNotFound, name)
}

// Manufacturers returns every registry entry ordered by identifier bytes.
func Manufacturers() []Manufacturer {
	out := make([]Manufacturer, len(registry.sorted))
	copy(out, registry.sorted)
	return out
}
