package host

import (
	"context"
	"errors"
	"io"

	"pkt.systems/pslog"
)

// Recorder persists events as they are dispatched
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

type decoded struct {
	ev  Event
	err error
}

// Run reads events from r and applies them to the bar in arrival order.
// Each render request writes one line, terminated by a newline, to w.
//
// Malformed lines and rejected events are logged and skipped. Run returns
// nil at end of input, ctx.Err() when cancelled, and the first write error.
// rec may be nil.
func Run(ctx context.Context, bar *Bar, r io.Reader, w io.Writer, rec Recorder) error {
	logger := pslog.Ctx(ctx)

	// Reads block, so decoding runs on its own goroutine; events are still
	// applied one at a time by this one.
	events := make(chan decoded)
	go func() {
		defer close(events)
		dec := NewDecoder(r)
		for {
			ev, err := dec.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case events <- decoded{ev: ev, err: err}:
			case <-ctx.Done():
				return
			}
			var decodeErr *DecodeError
			if err != nil && !errors.As(err, &decodeErr) {
				return
			}
		}
	}()

	renders := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-events:
			if !ok {
				logger.Debug("input closed", "renders", renders)
				return nil
			}
			if d.err != nil {
				var decodeErr *DecodeError
				if !errors.As(d.err, &decodeErr) {
					return d.err
				}
				logger.Warn("skipping malformed event", "line", decodeErr.Line, "error", decodeErr.Err)
				continue
			}

			if rec != nil {
				if err := rec.Record(ctx, d.ev); err != nil {
					logger.Warn("failed to record event", "type", d.ev.Type, "error", err)
				}
			}

			if err := Dispatch(ctx, bar, d.ev, w); err != nil {
				return err
			}
			if d.ev.Type == EventRender {
				renders++
			}
		}
	}
}

// Dispatch applies one event. Render requests write a line to w; rejected
// state events are logged and ignored. Only write errors are returned.
func Dispatch(ctx context.Context, bar *Bar, ev Event, w io.Writer) error {
	if ev.Type == EventRender {
		if err := bar.Render(w, ev.Cols); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	changed, err := bar.Update(ev)
	if err != nil {
		pslog.Ctx(ctx).Warn("ignoring event", "type", ev.Type, "error", err)
		return nil
	}
	pslog.Ctx(ctx).Trace("applied event", "type", ev.Type, "changed", changed)
	return nil
}
