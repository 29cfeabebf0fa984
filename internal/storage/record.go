package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/san-kum/bars3d/internal/anim"
	"github.com/san-kum/bars3d/internal/session"
)

var errDone = errors.New("recording complete")

// Record ticks s n times and captures every frame. With a positive interval
// frames are paced in real time through anim.Loop; otherwise they run back
// to back. Cancelling ctx stops early and returns what was captured.
func Record(ctx context.Context, s *session.Session, n int, interval time.Duration) (*Recording, error) {
	cfg := s.Config()
	rec := &Recording{
		Meta: RunMetadata{
			Variant:   string(s.Variant()),
			Timestamp: time.Now(),
			Seed:      cfg.Seed,
			Step:      cfg.Step,
		},
		Frames: make([]Frame, 0, max(n, 0)),
	}
	for _, b := range s.Chart.Bars {
		rec.Meta.Bars = append(rec.Meta.Bars, b.Mesh.Name)
		rec.Meta.Heights = append(rec.Meta.Heights, b.Height)
	}

	tick := func() error {
		if len(rec.Frames) >= n {
			return errDone
		}
		if err := s.Tick(); err != nil {
			return err
		}
		snap := s.Snapshot()
		rec.Frames = append(rec.Frames, Frame{Frame: snap.Frame, Time: snap.Time, Scales: snap.Scales})
		if len(rec.Frames) >= n {
			return errDone
		}
		return nil
	}

	var err error
	if interval > 0 {
		err = anim.Loop(ctx, interval, tick)
	} else {
		for err == nil {
			if err = ctx.Err(); err == nil {
				err = tick()
			}
		}
	}
	rec.Meta.Frames = len(rec.Frames)
	switch {
	case errors.Is(err, errDone):
		return rec, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return rec, err
	}
	return nil, err
}

// WriteJSON encodes the full recording, frames included, to w.
func WriteJSON(w io.Writer, rec *Recording) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
