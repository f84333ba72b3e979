package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// upgrader configures the WebSocket handshake, delegating origin checks
// to the server's configuration.
func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.cfg.OriginAllowed(origin)
			if !allowed {
				logrus.WithFields(logrus.Fields{
					"function": "upgrader.CheckOrigin",
					"origin":   origin,
				}).Warn("websocket connection rejected: origin not allowed")
			}
			return allowed
		},
	}
}

// streamProgress upgrades the connection and pushes job snapshots to the
// client on every state change until the client disconnects; the
// connection stays open after the job finishes.
func (s *Server) streamProgress(w http.ResponseWriter, r *http.Request, job *Job) {
	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "streamProgress",
			"error":    err,
		}).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sub := &wsSubscriber{conn: conn}
	job.subscribe(sub)
	defer job.unsubscribe(sub)

	if err := sub.send(job.snapshot()); err != nil {
		return
	}

	// Block until the client disconnects; progress is pushed
	// asynchronously from job.broadcast as the job's manager updates it.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
