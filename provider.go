package ephemeris

// TableProvider hands term tables to the evaluator components. It is
// constructed once at startup with fully parsed tables, is immutable
// afterwards, and is shared by reference: the evaluators never copy or
// mutate the tables, so arbitrarily many concurrent evaluations may read
// them without locking. This engine never parses a serialized table format;
// loaders live outside the core.
type TableProvider struct {
	lunar     map[Family]*TermTable
	planetary map[Body]*PlanetTable
	outer     map[Body]*OuterFitRecord
}

// NewTableProvider builds a provider from parsed tables. Nil entries are
// skipped; a table's own Family/Body field decides where it is filed.
func NewTableProvider(lunar []*TermTable, planetary []*PlanetTable, outer []*OuterFitRecord) *TableProvider {
	p := &TableProvider{
		lunar:     make(map[Family]*TermTable, len(lunar)),
		planetary: make(map[Body]*PlanetTable, len(planetary)),
		outer:     make(map[Body]*OuterFitRecord, len(outer)),
	}
	for _, t := range lunar {
		if t != nil {
			p.lunar[t.Family] = t
		}
	}
	for _, t := range planetary {
		if t != nil {
			p.planetary[t.Body] = t
		}
	}
	for _, r := range outer {
		if r != nil {
			p.outer[r.Body] = r
		}
	}
	return p
}

// Lunar returns the term table of one lunar family, or nil when the family
// was not loaded.
func (p *TableProvider) Lunar(f Family) *TermTable { return p.lunar[f] }

// Planetary returns the series table of one body, or nil.
func (p *TableProvider) Planetary(b Body) *PlanetTable { return p.planetary[b] }

// OuterFit returns the restricted-range fit record of one body, or nil.
func (p *TableProvider) OuterFit(b Body) *OuterFitRecord { return p.outer[b] }
