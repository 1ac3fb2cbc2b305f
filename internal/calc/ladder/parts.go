package ladder

// Parts — ведомость деталей. Нулевые позиции остаются в структуре,
// рендер их просто не показывает.
type Parts struct {
	Treads       int `json:"treads"`
	Risers       int `json:"risers"`
	Stringers    int `json:"stringers"`
	Balusters    int `json:"balusters"`
	Handrails    int `json:"handrails"`
	Landings     int `json:"landings"`
	WinderTreads int `json:"winder_treads"`
}

func (c *Calculator) CalcParts(steps, ladderType int) Parts {
	if ladderType != TypeStraight && ladderType != TypeUShaped && ladderType != TypeLShaped {
		ladderType = TypeStraight
	}
	p := Parts{
		Treads:    steps,
		Risers:    steps,
		Stringers: 1,
		Balusters: steps + 2,
		Handrails: 2,
	}
	if ladderType == TypeStraight {
		p.Stringers = 2
	}
	if ladderType == TypeUShaped || ladderType == TypeLShaped {
		p.Landings = 1
		p.WinderTreads = 2
	}
	return p
}
