package htmlscan

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	a "golang.org/x/net/html/atom"
)

// lightParser builds a Node tree directly from the token stream, without
// the HTML5 tree-construction algorithm. There is no goal to parse the way
// a browser does: the scanner has already established that the input has no
// misnesting the fast path cannot represent, so the tree mirrors the source
// as written. Self-closing and void tags become leaves, end tags pop to the
// nearest matching open element, stray end tags are ignored.
type lightParser struct {
	tokenizer *html.Tokenizer
	// tok is the most recently read token.
	tok html.Token
	// doc is the document root node.
	doc *html.Node
	// oe is the stack of open elements.
	oe []*html.Node
}

func (p *lightParser) top() *html.Node {
	if n := len(p.oe); n > 0 {
		return p.oe[n-1]
	}
	return p.doc
}

func (p *lightParser) addChild(n *html.Node) {
	p.top().AppendChild(n)
	if n.Type == html.ElementNode {
		p.oe = append(p.oe, n)
	}
}

func (p *lightParser) addText(text string) {
	if text == "" {
		return
	}
	t := p.top()
	if n := t.LastChild; n != nil && n.Type == html.TextNode {
		n.Data += text
		return
	}
	t.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (p *lightParser) addElement() {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: p.tok.DataAtom,
		Data:     p.tok.Data,
		Attr:     p.tok.Attr,
	}
	p.addChild(n)
}

// popElement pops the stack of open elements. It must not be called with an
// empty stack.
func (p *lightParser) popElement() *html.Node {
	n := p.oe[len(p.oe)-1]
	p.oe = p.oe[:len(p.oe)-1]
	return n
}

// closeElement pops through the nearest open element matching the end tag,
// ignoring the tag if no such element is open. Comparison is by atom for
// known tags and by name for custom ones, as in the tokenizer itself.
func (p *lightParser) closeElement(tagAtom a.Atom, tagName string) {
	for i := len(p.oe) - 1; i >= 0; i-- {
		if p.oe[i].DataAtom == tagAtom && (tagAtom != 0 || p.oe[i].Data == tagName) {
			p.oe = p.oe[:i]
			return
		}
	}
}

// voidElements cannot have children; their start tags are leaves.
var voidElements = map[a.Atom]bool{
	a.Area: true, a.Base: true, a.Br: true, a.Col: true, a.Embed: true,
	a.Hr: true, a.Img: true, a.Input: true, a.Link: true, a.Meta: true,
	a.Param: true, a.Source: true, a.Track: true, a.Wbr: true,
}

func (p *lightParser) parse() error {
	for {
		p.tokenizer.Next()
		p.tok = p.tokenizer.Token()
		switch p.tok.Type {
		case html.ErrorToken:
			err := p.tokenizer.Err()
			if err == io.EOF {
				return nil
			}
			return err
		case html.TextToken:
			p.addText(p.tok.Data)
		case html.StartTagToken:
			p.addElement()
			if voidElements[p.tok.DataAtom] {
				p.popElement()
			}
		case html.SelfClosingTagToken:
			p.addElement()
			p.popElement()
		case html.EndTagToken:
			p.closeElement(p.tok.DataAtom, p.tok.Data)
		case html.CommentToken:
			p.addChild(&html.Node{Type: html.CommentNode, Data: p.tok.Data})
		case html.DoctypeToken:
			p.addChild(&html.Node{Type: html.DoctypeNode, Data: p.tok.Data})
		}
	}
}

// parseLight parses a scanner-approved buffer into a source-faithful tree.
func parseLight(buf []byte) (*html.Node, error) {
	p := &lightParser{
		tokenizer: html.NewTokenizer(bytes.NewReader(buf)),
		doc:       &html.Node{Type: html.DocumentNode},
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.doc, nil
}
