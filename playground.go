package htmlscan

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dpotapov/go-htmlscan/prescan"
)

// wsUpgrader is a Gorilla WebSocket instance, used to respond HTTP requests
// with WebSocket.
var wsUpgrader = websocket.Upgrader{}

// defaultMaxInputBytes caps playground input; the scanner itself runs to
// completion on whatever it is given, so bounded work is imposed here.
const defaultMaxInputBytes = 4 << 20

// PlaygroundHandler serves a live view of scan verdicts. A plain POST scans
// the request body and answers with a JSON verdict; a WebSocket upgrade
// scans every received text frame and streams a verdict frame back for
// each, so an editor can show fast-path/fallback as you type.
type PlaygroundHandler struct {
	// Logger configures logging for internal events.
	Logger *slog.Logger

	// MaxInputBytes limits the size of a single document. Zero means the
	// default of 4 MiB.
	MaxInputBytes int64

	// init is used to initialize the handler only once.
	init sync.Once

	// logger is a private logger instance that is used to log internal events.
	logger *slog.Logger
}

// verdictPayload is the wire form of a Verdict.
type verdictPayload struct {
	Fallback    bool                 `json:"fallback"`
	Reason      string               `json:"reason"`
	ReasonCode  int                  `json:"reason_code"`
	Booleans    []booleanPayload     `json:"booleans"`
	SelfClosing []selfClosingPayload `json:"self_closing"`
}

type booleanPayload struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Boolean bool   `json:"boolean"`
}

type selfClosingPayload struct {
	Name        string `json:"name"`
	SelfClosing bool   `json:"self_closing"`
}

func newVerdictPayload(v Verdict) verdictPayload {
	p := verdictPayload{
		Fallback:    v.Fallback,
		Reason:      v.Reason.String(),
		ReasonCode:  int(v.Reason),
		Booleans:    []booleanPayload{},
		SelfClosing: []selfClosingPayload{},
	}
	for _, b := range v.Booleans {
		p.Booleans = append(p.Booleans, booleanPayload{
			Index:   b.Index,
			Name:    prescan.BooleanAttrName(b.Index),
			Boolean: b.Boolean,
		})
	}
	for _, sc := range v.SelfClosing {
		p.SelfClosing = append(p.SelfClosing, selfClosingPayload{Name: sc.Name, SelfClosing: sc.SelfClosing})
	}
	return p
}

// ServeHTTP implements the http.Handler interface.
func (h *PlaygroundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.init.Do(func() {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		if h.Logger != nil {
			h.logger = h.Logger
		}
	})

	if err := h.handleRequest(w, r); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		h.logger.Error("Serve scan request", "url", r.URL.Redacted(), "error", err)
	}
}

func (h *PlaygroundHandler) maxInputBytes() int64 {
	if h.MaxInputBytes > 0 {
		return h.MaxInputBytes
	}
	return defaultMaxInputBytes
}

func (h *PlaygroundHandler) handleRequest(w http.ResponseWriter, r *http.Request) error {
	if websocket.IsWebSocketUpgrade(r) {
		ws, err := wsUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return err
		}
		defer ws.Close()
		return h.serveWebSocket(ws)
	}

	switch r.Method {
	case http.MethodPost:
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxInputBytes()))
		if err != nil {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return nil
		}
		w.Header().Set("Content-Type", "application/json")
		return json.NewEncoder(w).Encode(newVerdictPayload(Scan(body)))
	case http.MethodGet:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, err := io.WriteString(w, playgroundPage)
		return err
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return nil
	}
}

// serveWebSocket scans every text frame and writes a verdict frame back.
// Stops when the connection is closed.
func (h *PlaygroundHandler) serveWebSocket(ws *websocket.Conn) error {
	ws.SetReadLimit(h.maxInputBytes())
	for {
		mt, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read websocket message: %w", err)
		}
		if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
			continue
		}
		if err := ws.WriteJSON(newVerdictPayload(Scan(data))); err != nil {
			return fmt.Errorf("write websocket message: %w", err)
		}
	}
}

const playgroundPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>htmlscan playground</title>
</head>
<body>
<h1>htmlscan playground</h1>
<textarea id="in" rows="16" cols="80">&lt;p&gt;hello&lt;/p&gt;</textarea>
<pre id="out"></pre>
<script>
var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + location.pathname);
var input = document.getElementById("in");
var out = document.getElementById("out");
ws.onmessage = function (ev) { out.textContent = ev.data; };
ws.onopen = function () { ws.send(input.value); };
input.addEventListener("input", function () {
	if (ws.readyState === WebSocket.OPEN) { ws.send(input.value); }
});
</script>
</body>
</html>
`
