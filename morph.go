package svgenius

import (
	"context"
	"errors"
	"fmt"
)

// Morph holds two paths prepared for blending: normalized to cubics,
// equalized to the same anchor count and scaled into a common frame.
type Morph struct {
	From, To Path

	e       *Engine
	viewBox ViewBox
	err     error
}

// NewMorph prepares a morph from a to b.
func NewMorph(a, b string) (*Morph, error) {
	return std.NewMorph(a, b)
}

// NewMorph runs a and b through the morph pipeline: cubic normalization,
// anchor equalization, a second normalization for the inserted anchors,
// and scale normalization. The stages always run in that order. A stage
// that fails keeps the best paths computed so far; its error is returned
// with the morph, which is usable either way. If the prepared paths still
// do not line up, frames cut from one to the other.
func (e *Engine) NewMorph(a, b string) (*Morph, error) {
	var errs []error
	pa, err := Parse(a)
	if err != nil {
		errs = append(errs, fmt.Errorf("from: %w", err))
	}
	pb, err := Parse(b)
	if err != nil {
		errs = append(errs, fmt.Errorf("to: %w", err))
	}

	paths := []Path{pa.ToCubic(), pb.ToCubic()}

	target := max(len(paths[0].Anchors()), len(paths[1].Anchors()))
	for i, p := range paths {
		q, err := e.equalizeTo(p, target)
		if err != nil {
			e.log.Debug("equalize failed, keeping cubic path", "path", i, "err", err)
			errs = append(errs, fmt.Errorf("path %d: %w", i, err))
			continue
		}
		if q.Commands != nil {
			paths[i] = q.ToCubic()
		}
	}

	scaled, _, vb, err := e.normalizeScale(paths)
	if err != nil {
		e.log.Debug("scale normalization incomplete", "err", err)
		errs = append(errs, err)
	}

	m := &Morph{From: scaled[0], To: scaled[1], e: e, viewBox: vb}
	if err := aligned(m.From, m.To); err != nil {
		e.log.Debug("morph paths do not line up", "err", err)
		m.err = err
		errs = append(errs, err)
	}
	return m, errors.Join(errs...)
}

// Err returns the structural mismatch that makes frames cut instead of
// blend, if any.
func (m *Morph) Err() error {
	return m.err
}

// ViewBox returns the padded viewport around both prepared paths.
func (m *Morph) ViewBox() ViewBox {
	return m.viewBox
}

// Frame returns the path data at t.
func (m *Morph) Frame(t float64) (string, error) {
	q, err := m.e.interpolate(m.From, m.To, t)
	if err != nil {
		return m.e.format(cut(m.From, m.To, t)), err
	}
	return m.e.format(q), nil
}

// Frames samples n evenly spaced frames, from the start path to the end
// path inclusive. It stops early when ctx is done.
func (m *Morph) Frames(ctx context.Context, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%d frames: %w", n, ErrIndexOutOfRange)
	}
	frames := make([]string, 0, n)
	for i := range n {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		f, err := m.Frame(t)
		if err != nil && !errors.Is(err, ErrStructuralMismatch) {
			return frames, err
		}
		frames = append(frames, f)
	}
	return frames, m.err
}
