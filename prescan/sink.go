package prescan

// SelfClosingFunc receives a self-closing hint for an unrecognized tag.
// The name is lowercased ASCII and only valid for the duration of the call;
// implementations must copy it if they need to retain it.
type SelfClosingFunc func(name []byte, selfClosing bool)

// BooleanFunc receives one boolean attribute occurrence: the attribute's
// index in the boolean attribute table and whether it appeared without a
// value (true boolean usage) or with one.
type BooleanFunc func(index int, boolean bool)

// BooleanHint is one collected boolean attribute occurrence.
type BooleanHint struct {
	Index   int
	Boolean bool
}

// hintSink abstracts the two hint delivery modes. Both drivers are written
// against it; the callback and collector variants below are the only
// implementations.
type hintSink interface {
	selfClosingTag(name []byte, selfClosing bool)
	booleanAttr(index int, boolean bool)
	// wantSelfClosing and wantBoolean let the drivers skip name lowering
	// and dictionary lookups when nobody is listening.
	wantSelfClosing() bool
	wantBoolean() bool
}

// callbackSink forwards hints to caller-supplied functions. Either may be
// nil.
type callbackSink struct {
	selfClosing SelfClosingFunc
	boolean     BooleanFunc
}

func (s *callbackSink) selfClosingTag(name []byte, selfClosing bool) {
	if s.selfClosing != nil {
		s.selfClosing(name, selfClosing)
	}
}

func (s *callbackSink) booleanAttr(index int, boolean bool) {
	if s.boolean != nil {
		s.boolean(index, boolean)
	}
}

func (s *callbackSink) wantSelfClosing() bool { return s.selfClosing != nil }
func (s *callbackSink) wantBoolean() bool     { return s.boolean != nil }

// collectorSink appends boolean hints to a growable buffer handed to the
// caller when the scan returns. Self-closing hints are still delivered by
// callback only.
type collectorSink struct {
	selfClosing SelfClosingFunc
	hints       []BooleanHint
}

func (s *collectorSink) selfClosingTag(name []byte, selfClosing bool) {
	if s.selfClosing != nil {
		s.selfClosing(name, selfClosing)
	}
}

func (s *collectorSink) booleanAttr(index int, boolean bool) {
	s.hints = append(s.hints, BooleanHint{Index: index, Boolean: boolean})
}

func (s *collectorSink) wantSelfClosing() bool { return s.selfClosing != nil }
func (s *collectorSink) wantBoolean() bool     { return true }
