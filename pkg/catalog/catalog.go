package catalog

import (
	"fmt"
	"sort"
	"strings"

	"cropcal/entities"
)

// ActivityTemplate is one catalog-authored task, offset in days from sowing.
type ActivityTemplate struct {
	Name        string `json:"name"`
	Day         int    `json:"day"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Source      string `json:"source"`
}

type CropTemplate struct {
	Name             string                     `json:"name"`
	ScientificName   string                     `json:"scientificName"`
	DurationDays     int                        `json:"durationDays"`
	Varieties        map[string][]string        `json:"recommendedVarieties,omitempty"`
	SowingSeasons    map[string]string          `json:"sowingSeasons,omitempty"`
	Description      string                     `json:"description"`
	Activities       []ActivityTemplate         `json:"activities"`
	Optimal          entities.OptimalConditions `json:"optimalConditions"`
	DataSource       string                     `json:"dataSource"`
	LastUpdated      string                     `json:"lastUpdated"`
	ValidationStatus string                     `json:"validationStatus"`
}

// UnknownCropError is returned when a crop name has no catalog entry. The
// message enumerates the valid names so callers can surface them directly.
type UnknownCropError struct {
	Crop      string
	Available []string
}

func (e *UnknownCropError) Error() string {
	return fmt.Sprintf("unknown crop: %s. Available crops: %s", e.Crop, strings.Join(e.Available, ", "))
}

// Catalog is the read-only crop lifecycle table. It is built once at startup
// and injected; nothing mutates it afterwards.
type Catalog struct {
	crops map[string]CropTemplate
}

// New returns a catalog seeded with the built-in crop data.
func New() *Catalog {
	c := &Catalog{crops: map[string]CropTemplate{}}
	for _, t := range builtinCrops() {
		c.crops[t.Name] = t
	}
	return c
}

func (c *Catalog) Get(name string) (CropTemplate, error) {
	t, ok := c.crops[name]
	if !ok {
		return CropTemplate{}, &UnknownCropError{Crop: name, Available: c.Crops()}
	}
	return t, nil
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.crops[name]
	return ok
}

// Crops lists the available crop names, sorted.
func (c *Catalog) Crops() []string {
	out := make([]string, 0, len(c.crops))
	for name := range c.crops {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) put(t CropTemplate) { c.crops[t.Name] = t }
