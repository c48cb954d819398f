package game

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Shivani2173/signal-project/metrics"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the router's allowlist middleware.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type GameHandler struct {
	lobby Lobby
}

func NewGameHandler(lobby Lobby) *GameHandler {
	return &GameHandler{lobby: lobby}
}

// JoinGameHandler upgrades the connection and forwards a join request to the
// lobby. Missing fields fail before the upgrade; a full room fails after it,
// with an error packet so the client can show the reason.
func (h *GameHandler) JoinGameHandler(ctx *gin.Context) {
	roomId := ctx.Param("roomid")
	username := ctx.Query("username")

	if roomId == "" || username == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Room ID and Username are required."})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err, "ip", ctx.ClientIP())
		return
	}
	metrics.ConnectionsOpened.Inc()

	socketConn := NewWebsocketConnection(conn)
	p := NewPlayer(uuid.NewString(), username, &socketConn)

	jreq := NewRoomJoinRequest(roomId, p)
	h.lobby.ForwardPlayerJoinRequestToRoom(ctx.Request.Context(), jreq)

	select {
	case err := <-jreq.errChan:
		if err != nil {
			socketConn.Write(makePacketError(err.Error()))
			socketConn.Close(err.Error())
			return
		}
	case <-time.After(5 * time.Second):
		socketConn.Close("join timed out")
		return
	}

	go p.WritePump()
	p.ReadPump(ctx.Request.Context())
}
