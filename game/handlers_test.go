package game

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func joinRouter(lobby Lobby) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/join/:roomid", NewGameHandler(lobby).JoinGameHandler)
	return r
}

func TestJoinGameHandler_MissingUsername(t *testing.T) {
	router := joinRouter(&MockLobby{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/join/room1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Room ID and Username are required."}`, w.Body.String())
}

func TestJoinGameHandler_PlainHTTPIsRejected(t *testing.T) {
	// Not a websocket handshake, so the upgrade fails before any join
	// request reaches the lobby.
	lobby := &MockLobby{}
	router := joinRouter(lobby)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/join/room1?username=alice", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	lobby.AssertNotCalled(t, "ForwardPlayerJoinRequestToRoom", mock.Anything, mock.Anything)
}
