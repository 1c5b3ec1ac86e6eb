package typechart

// Entry is a multiplier against, or from, one type.
type Entry struct {
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier"`
}

// Table is a list of entries in chart type order.
type Table []Entry

// Defense returns multipliers every attacking type of the chart has
// against a defender with the given types.
func (c *Chart) Defense(defender ...string) Table {
	res := make(Table, 0, len(c.Types))
	for _, att := range c.Types {
		res = append(res, Entry{Type: att, Multiplier: c.Against(att, defender...)})
	}
	return res
}

// Offense returns multipliers of an attacking type against every
// single type of the chart.
func (c *Chart) Offense(attacker string) Table {
	res := make(Table, 0, len(c.Types))
	for _, def := range c.Types {
		res = append(res, Entry{Type: def, Multiplier: c.Effectiveness(attacker, def)})
	}
	return res
}

// Get returns multiplier for a type, or Neutral if the type is absent.
func (t Table) Get(name string) float64 {
	for _, v := range t {
		if v.Type == name {
			return v.Multiplier
		}
	}
	return Neutral
}

// Groups splits a table by multiplier.
type Groups struct {
	Quad    []string `json:"quad,omitempty"`
	Double  []string `json:"double,omitempty"`
	Neutral []string `json:"neutral,omitempty"`
	Half    []string `json:"half,omitempty"`
	Quarter []string `json:"quarter,omitempty"`
	Zero    []string `json:"zero,omitempty"`
}

// Groups sorts entries into multiplier groups keeping table order.
func (t Table) Groups() Groups {
	var res Groups
	for _, v := range t {
		switch {
		case v.Multiplier == 0:
			res.Zero = append(res.Zero, v.Type)
		case v.Multiplier <= 0.25:
			res.Quarter = append(res.Quarter, v.Type)
		case v.Multiplier <= 0.5:
			res.Half = append(res.Half, v.Type)
		case v.Multiplier < 2:
			res.Neutral = append(res.Neutral, v.Type)
		case v.Multiplier < 4:
			res.Double = append(res.Double, v.Type)
		default:
			res.Quad = append(res.Quad, v.Type)
		}
	}
	return res
}
