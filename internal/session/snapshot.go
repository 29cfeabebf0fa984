package session

// LabelState is a copy of one label at a point in time.
type LabelState struct {
	Text string
	X, Y float64
}

// Snapshot is a copy of the animated state after a frame.
type Snapshot struct {
	Frame  int
	Time   float64
	Scales []float64
	Labels []LabelState
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:  s.Frames(),
		Time:   s.Time(),
		Scales: s.Chart.Scales(),
		Labels: make([]LabelState, len(s.Chart.Labels)),
	}
	for i, l := range s.Chart.Labels {
		snap.Labels[i] = LabelState{Text: l.Text, X: l.X, Y: l.Y}
	}
	return snap
}
