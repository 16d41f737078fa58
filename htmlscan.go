// Package htmlscan decides, in one pass over a byte buffer, whether an HTML
// document is simple enough for a permissive lightweight parser or must be
// escalated to the conformant HTML5 parser, and parses it accordingly.
//
// The decision itself is made by the prescan subpackage; this package adds
// the parser selection on top and collects the scanner's hints into a
// Verdict. The lightweight parser works from the bytes alone and does not
// consume the hints.
package htmlscan

import (
	"bytes"

	"golang.org/x/net/html"

	"github.com/dpotapov/go-htmlscan/prescan"
)

// SelfClosingHint is one self-closing hint captured during a scan: the
// lowercased name of an unrecognized tag and whether it explicitly
// self-closed.
type SelfClosingHint struct {
	Name        string
	SelfClosing bool
}

// Verdict is the outcome of a decision scan together with all hints
// gathered along the way.
type Verdict struct {
	// Fallback reports whether the input needs the conformant parser.
	Fallback bool
	// Reason explains the first violation when Fallback is true, and is
	// prescan.ReasonNone otherwise.
	Reason prescan.Reason
	// Booleans holds the boolean attribute occurrences in document order.
	Booleans []prescan.BooleanHint
	// SelfClosing holds the self-closing hints for unrecognized tags in
	// document order.
	SelfClosing []SelfClosingHint
}

// BooleanAttr is a boolean hint resolved to its attribute table name.
type BooleanAttr struct {
	Name    string
	Boolean bool
}

// BooleanAttrs resolves the verdict's boolean hints to attribute names, in
// document order.
func (v Verdict) BooleanAttrs() []BooleanAttr {
	out := make([]BooleanAttr, 0, len(v.Booleans))
	for _, h := range v.Booleans {
		out = append(out, BooleanAttr{Name: prescan.BooleanAttrName(h.Index), Boolean: h.Boolean})
	}
	return out
}

// Scan runs the decision scanner over buf and collects every hint. On a
// fallback verdict the hint slices hold whatever was gathered before the
// violation.
func Scan(buf []byte) Verdict {
	var v Verdict
	v.Fallback, v.Reason, v.Booleans = prescan.ShouldFallbackCollect(buf, func(name []byte, selfClosing bool) {
		v.SelfClosing = append(v.SelfClosing, SelfClosingHint{Name: string(name), SelfClosing: selfClosing})
	})
	return v
}

// Parse parses buf into a document tree. Inputs the scanner accepts go
// through the lightweight parser; everything else is handed to the
// conformant golang.org/x/net/html parser.
func Parse(buf []byte) (*html.Node, error) {
	n, _, err := ParseWithVerdict(buf)
	return n, err
}

// ParseWithVerdict is Parse exposing the scan verdict alongside the tree,
// so callers can tell which path produced it and reuse the hints.
func ParseWithVerdict(buf []byte) (*html.Node, Verdict, error) {
	v := Scan(buf)
	if v.Fallback {
		doc, err := html.Parse(bytes.NewReader(buf))
		return doc, v, err
	}
	doc, err := parseLight(buf)
	if err != nil {
		// The scanner accepted the input, so the lightweight parser is
		// expected to as well; if it disagrees, escalate rather than fail.
		doc, err = html.Parse(bytes.NewReader(buf))
		return doc, v, err
	}
	return doc, v, nil
}
