package entity

// Trend is the "DNA" of a named fashion trend as stored in the graph.
// Garments and Vibes keep the order of the graph relationships.
type Trend struct {
	Name     string
	Garments []string
	Vibes    []string
}

// Labels returns garments followed by vibes.
func (t Trend) Labels() []string {
	labels := make([]string, 0, len(t.Garments)+len(t.Vibes))
	labels = append(labels, t.Garments...)
	labels = append(labels, t.Vibes...)
	return labels
}

func (t Trend) IsEmpty() bool {
	return len(t.Garments) == 0 && len(t.Vibes) == 0
}

func (t Trend) Clone() Trend {
	return Trend{
		Name:     t.Name,
		Garments: append([]string(nil), t.Garments...),
		Vibes:    append([]string(nil), t.Vibes...),
	}
}

type TrendSummary struct {
	Name  string
	Vibes []string
}
