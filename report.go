package htmlscan

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/dpotapov/go-htmlscan/prescan"
)

// FileVerdict pairs a scanned file with its verdict, for batch reporting.
type FileVerdict struct {
	Path    string
	Verdict Verdict
}

// WriteXMLReport writes a batch scan report as indented XML. The layout is
// stable: one <file> element per input in the order given, holding first
// all <boolean-attr> children, then all <self-closing> children, each group
// in document order.
func WriteXMLReport(w io.Writer, results []FileVerdict) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("scan-report")
	root.CreateAttr("files", strconv.Itoa(len(results)))

	for _, fr := range results {
		file := root.CreateElement("file")
		file.CreateAttr("path", fr.Path)
		file.CreateAttr("fallback", strconv.FormatBool(fr.Verdict.Fallback))
		if fr.Verdict.Fallback {
			file.CreateAttr("reason", fr.Verdict.Reason.String())
			file.CreateAttr("reason-code", strconv.Itoa(int(fr.Verdict.Reason)))
		}
		for _, b := range fr.Verdict.Booleans {
			e := file.CreateElement("boolean-attr")
			e.CreateAttr("name", prescan.BooleanAttrName(b.Index))
			e.CreateAttr("index", strconv.Itoa(b.Index))
			e.CreateAttr("boolean", strconv.FormatBool(b.Boolean))
		}
		for _, sc := range fr.Verdict.SelfClosing {
			e := file.CreateElement("self-closing")
			e.CreateAttr("name", sc.Name)
			e.CreateAttr("self-closing", strconv.FormatBool(sc.SelfClosing))
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
