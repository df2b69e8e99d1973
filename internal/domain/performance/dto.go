package performance

type KPI struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Value  float64 `json:"value"`
	Trend  int     `json:"trend"`
	Target float64 `json:"target"`
	Unit   string  `json:"unit,omitempty"`
}

type Chart struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Type  string          `json:"type"`
	Data  []TimelinePoint `json:"data"`
}

// StatsResponse is one period's dashboard payload. A period with no snapshot
// yields empty KPI/chart lists, not an error.
type StatsResponse struct {
	PeriodStart string  `json:"period_start"`
	KPIs        []KPI   `json:"kpis"`
	Charts      []Chart `json:"charts"`
}

type GoalResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Metric       string  `json:"metric"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
}

type ComparisonMetric struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	UserValue      float64 `json:"user_value"`
	TeamAverage    float64 `json:"team_average"`
	Unit           string  `json:"unit,omitempty"`
	HigherIsBetter bool    `json:"higher_is_better"`
	Position       float64 `json:"position"`
	Zone           string  `json:"zone"`
}

type TeamComparisonResponse struct {
	Metrics []ComparisonMetric `json:"metrics"`
}
