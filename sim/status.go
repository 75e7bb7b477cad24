package sim

import "github.com/edwinsyarief/tiltboard/ecs"

// Status is a read-only view of one instance.
type Status struct {
	Index      int
	BallHeight float64
	// TiltX and TiltZ are the X and Z components of the board rotation.
	TiltX, TiltZ float64
	Resets       uint64
}

// Snapshot appends the status of every instance to dst. It must not run
// concurrently with App.Update.
func Snapshot(w *ecs.World, dst []Status) []Status {
	s, _ := ecs.GetResource[State](w.Resources())
	if s == nil {
		return dst
	}
	for t := range s.Instances {
		st := Status{Index: t, Resets: s.Instances[t].Resets}
		if ball, ok := s.ball(w, t); ok {
			st.BallHeight = s.transforms.Get(ball).Position.Y()
		}
		if board, ok := s.board(w, t); ok {
			rot := s.transforms.Get(board).Rotation.V
			st.TiltX, st.TiltZ = rot.X(), rot.Z()
		}
		dst = append(dst, st)
	}
	return dst
}
