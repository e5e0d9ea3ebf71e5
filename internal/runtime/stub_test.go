package runtime

import (
	"github.com/quakeforge/logictree/pkg/ports"
)

// opCall records one Modify invocation for assertions.
type opCall struct {
	op     string
	params map[string]any
}

type fakeMFD struct {
	calls []opCall
}

func (m *fakeMFD) Modify(op string, params map[string]any) error {
	m.calls = append(m.calls, opCall{op: op, params: params})
	return nil
}

// fakeSource implements ports.Source and records every mutation, so tests can
// assert both dispatch targets and copy isolation.
type fakeSource struct {
	id      string
	trt     string
	kind    ports.SourceKind
	mfd     *fakeMFD
	scaling float64
	multi   bool
	calls   []opCall
}

func newFakeSource(id, trt string, kind ports.SourceKind) *fakeSource {
	return &fakeSource{id: id, trt: trt, kind: kind, mfd: &fakeMFD{}}
}

func (s *fakeSource) SourceID() string            { return s.id }
func (s *fakeSource) TectonicRegionType() string  { return s.trt }
func (s *fakeSource) Kind() ports.SourceKind      { return s.kind }
func (s *fakeSource) SetScalingRate(rate float64) { s.scaling = rate }
func (s *fakeSource) MultiSurface() bool          { return s.multi }

func (s *fakeSource) MFD() ports.MFD {
	if s.mfd == nil {
		return nil
	}
	return s.mfd
}

func (s *fakeSource) Clone() ports.Source {
	c := *s
	c.calls = append([]opCall(nil), s.calls...)
	if s.mfd != nil {
		mfd := &fakeMFD{calls: append([]opCall(nil), s.mfd.calls...)}
		c.mfd = mfd
	}
	return &c
}

func (s *fakeSource) Modify(op string, params map[string]any) error {
	s.calls = append(s.calls, opCall{op: op, params: params})
	return nil
}
