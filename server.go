package igate

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"golang.org/x/net/websocket"
)

// Server serves the connectivity status: GET /status returns the latest
// snapshot as JSON, /ws streams status msgs over a websocket.
type Server struct {
	http.Server
	status *Status
	mux    *http.ServeMux
	user   string
	passwd string
}

func NewServer(addr string, status *Status) *Server {
	s := &Server{status: status, mux: http.NewServeMux()}
	s.Addr = addr
	s.Handler = s.mux
	s.HandleFunc("/status", s.serveStatus)
	s.HandleFunc("/ws", s.serveWebSocket)
	return s
}

// BasicAuth turns on basic authentication for every handler.  An empty user
// turns it off.
func (s *Server) BasicAuth(user, passwd string) {
	s.user, s.passwd = user, passwd
}

func (s *Server) HandleFunc(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, s.basicAuth(handler))
}

func (s *Server) serveStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.status.Snapshot())
}

func (s *Server) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	ws := newWebSocket(r.RemoteAddr, s.status.Bus())
	serv := websocket.Server{Handler: websocket.Handler(ws.serve)}
	serv.ServeHTTP(w, r)
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(writer http.ResponseWriter, r *http.Request) {

		// skip basic authentication if no user
		if s.user == "" {
			next.ServeHTTP(writer, r)
			return
		}

		ruser, rpasswd, ok := r.BasicAuth()

		if ok {
			userHash := sha256.Sum256([]byte(s.user))
			passHash := sha256.Sum256([]byte(s.passwd))
			ruserHash := sha256.Sum256([]byte(ruser))
			rpassHash := sha256.Sum256([]byte(rpasswd))

			userMatch := (subtle.ConstantTimeCompare(userHash[:], ruserHash[:]) == 1)
			passMatch := (subtle.ConstantTimeCompare(passHash[:], rpassHash[:]) == 1)

			if userMatch && passMatch {
				next.ServeHTTP(writer, r)
				return
			}
		}

		writer.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
		http.Error(writer, "Unauthorized", http.StatusUnauthorized)
	})
}
