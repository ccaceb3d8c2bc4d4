package evaluate

// LevelInfo is the catalog entry for one risk level.
type LevelInfo struct {
	Level          RiskLevel `yaml:"level" json:"level"`
	Confidence     float64   `yaml:"confidence" json:"confidence"`
	Description    string    `yaml:"description" json:"description"`
	Recommendation string    `yaml:"recommendation" json:"recommendation"`
}

// Catalog is the read-only reference data describing each risk level.
type Catalog struct {
	levels  []LevelInfo
	byLevel map[RiskLevel]LevelInfo
}

func newCatalog(levels []LevelInfo) *Catalog {
	c := &Catalog{
		levels:  make([]LevelInfo, len(levels)),
		byLevel: make(map[RiskLevel]LevelInfo, len(levels)),
	}
	copy(c.levels, levels)
	for _, l := range levels {
		c.byLevel[l.Level] = l
	}
	return c
}

// Lookup returns the entry for level.
func (c *Catalog) Lookup(level RiskLevel) (LevelInfo, bool) {
	info, ok := c.byLevel[level]
	return info, ok
}

// Levels returns a copy of all entries in document order.
func (c *Catalog) Levels() []LevelInfo {
	out := make([]LevelInfo, len(c.levels))
	copy(out, c.levels)
	return out
}

// Levels returns the built-in risk level catalog.
func Levels() []LevelInfo {
	return Default().Catalog().Levels()
}

// LookupLevel returns the built-in catalog entry for level.
func LookupLevel(level RiskLevel) (LevelInfo, bool) {
	return Default().Catalog().Lookup(level)
}
