/*
Package handler provides the WebSocket endpoint that streams consultation
messages to the client as they are appended.
*/
package handler

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"sangini/internal/pkg/auth/jwt"
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/limiter"
	"sangini/internal/pkg/logx"
	"sangini/internal/pkg/resp"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 50 * time.Second
)

// HandleConsultSocket upgrades the connection and streams the transcript:
// first a replay of the messages so far, then live messages as they land.
// The token is passed as a query parameter since browsers cannot set headers
// on WebSocket requests.
func HandleConsultSocket(upgrader websocket.Upgrader, rateLimiter *limiter.IPRateLimiter, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if ip == "" {
			ip = "unknown_ip"
		}

		if !rateLimiter.GetLimiter(ip).Allow() {
			logx.Warn("WebSocket connection rejected: Rate limit exceeded.", "ip", ip)
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		payload, err := jwt.ParseToken(r.URL.Query().Get("token"), deps.Config.JWTSecret)
		if err != nil {
			logx.Warn("WebSocket connection rejected: Invalid token.", "ip", ip)
			resp.RespondErrorData(w, r, errs.NewError(errs.ErrUnauthorized), map[string]string{
				"redirect": jwt.SignInRedirect,
			})
			return
		}

		sessionID := chi.URLParam(r, "id")
		sess := deps.Consults.Get(sessionID)
		if sess == nil || sess.UserID != payload.ID {
			logx.Info("WebSocket connection rejected: Session not found.", "session_id", sessionID)
			resp.RespondError(w, r, errs.NewError(errs.ErrConsultNotFound))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		logx.Info("WebSocket connection established.",
			"session_id", sessionID,
			"user_id", payload.ID,
		)

		stream, cancel := sess.Subscribe()
		defer cancel()

		// Replay the transcript before streaming live messages. Messages
		// appended between the snapshot and the subscription are deduplicated
		// by id on the client.
		for _, msg := range sess.Messages() {
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(msg); err != nil {
				conn.Close()
				return
			}
		}

		// Reader goroutine: the client never sends data frames here, but the
		// read pump is needed to notice the peer closing.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		pingTicker := time.NewTicker(wsPingPeriod)
		defer pingTicker.Stop()
		defer conn.Close()

		for {
			select {
			case msg, ok := <-stream:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(msg); err != nil {
					return
				}

			case <-pingTicker.C:
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}

			case <-done:
				return
			}
		}
	}
}
