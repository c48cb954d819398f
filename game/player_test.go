package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayer_SendAfterReleaseFails(t *testing.T) {
	session := &MockNetworkSession{}
	session.On("Close", "").Once()

	p := NewPlayer("p1", "alice", session)
	p.CancelAndRelease()
	p.CancelAndRelease() // idempotent, socket closed once

	assert.ErrorIs(t, p.Send([]byte("x")), errConnectionGone)
	assert.ErrorIs(t, p.Ping(), errConnectionGone)
	session.AssertExpectations(t)
}

func TestPlayer_SendDropsWhenBufferFull(t *testing.T) {
	p := NewPlayer("p1", "alice", &MockNetworkSession{})

	for i := 0; i < cap(p.outbox); i++ {
		require.NoError(t, p.Send([]byte("x")))
	}
	assert.ErrorIs(t, p.Send([]byte("one too many")), errSendBufferFull)
}

func TestPlayer_ReadPumpForwardsAndRemoves(t *testing.T) {
	session := &MockNetworkSession{}
	session.On("Read").Return([]byte(`{"type":"SUBMIT_VOTE","decision":"TRUST"}`), nil).Once()
	session.On("Read").Return([]byte(`{not json`), nil).Once()
	session.On("Read").Return([]byte(nil), errors.New("peer went away")).Once()

	p := NewPlayer("p1", "alice", session)

	room := &MockRoom{}
	room.On("Send", mock.Anything, ClientEventEnvelope{
		Packet: ClientPacket{Type: PACKET_SUBMIT_VOTE, Decision: "TRUST"},
		From:   "p1",
	}).Once()
	room.On("RemoveMe", mock.Anything, p).Once()
	p.SetRoom(room)

	p.ReadPump(context.Background())

	room.AssertExpectations(t)
	session.AssertExpectations(t)
}

func TestPlayer_WritePump(t *testing.T) {
	session := &MockNetworkSession{}
	wrote := make(chan []byte, 1)
	session.On("Write", []byte("hello")).Run(func(args mock.Arguments) {
		wrote <- args.Get(0).([]byte)
	}).Return(nil).Once()
	pinged := make(chan struct{}, 1)
	session.On("Ping").Run(func(mock.Arguments) {
		pinged <- struct{}{}
	}).Return(nil).Once()
	session.On("Close", "").Once()

	p := NewPlayer("p1", "alice", session)
	go p.WritePump()

	require.NoError(t, p.Send([]byte("hello")))
	assert.Equal(t, []byte("hello"), <-wrote)

	require.NoError(t, p.Ping())
	<-pinged

	p.CancelAndRelease()
	session.AssertExpectations(t)
}
