package citylist

// ListState is everything the city list screen renders from. Methods return
// a new value and never modify the receiver.
type ListState struct {
	Loading bool
	Failed  bool
	Query   string
	Records []CityRecord
	Visible []CityRecord
}

func NewListState() ListState {
	return ListState{Loading: true}
}

// WithResult ends loading. A failed load leaves the list empty.
func (s ListState) WithResult(res Result) ListState {
	s.Loading = false
	if res.Err != nil {
		s.Failed = true
		s.Records = nil
	} else {
		s.Failed = false
		s.Records = res.Records
	}
	s.Visible = Filter(s.Records, s.Query)
	return s
}

func (s ListState) WithQuery(q string) ListState {
	s.Query = q
	s.Visible = Filter(s.Records, q)
	return s
}
