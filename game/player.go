package game

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"golang.org/x/time/rate"
)

var errConnectionGone = errors.New("connection gone")
var errSendBufferFull = errors.New("send buffer full")

type player struct {
	id       string
	username string
	limiter  *rate.Limiter
	socket   NetworkSession
	outbox   chan []byte
	pingChan chan struct{}
	room     Room

	done      chan struct{}
	closeOnce sync.Once
}

func NewPlayer(id, username string, socket NetworkSession) *player {
	return &player{
		id:       id,
		username: username,
		limiter:  rate.NewLimiter(1, 5),
		socket:   socket,
		outbox:   make(chan []byte, 256),
		pingChan: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (p *player) Id() string {
	return p.id
}

func (p *player) Username() string {
	return p.username
}

// SetRoom is called by the room actor while the join handler is still
// blocked on the join result, so ReadPump always sees it.
func (p *player) SetRoom(r Room) {
	p.room = r
}

// Send enqueues for WritePump. It never blocks the room: a full buffer means
// the connection is too slow and the packet is dropped.
func (p *player) Send(data []byte) error {
	select {
	case <-p.done:
		return errConnectionGone
	default:
	}
	select {
	case p.outbox <- data:
		return nil
	default:
		return errSendBufferFull
	}
}

func (p *player) Ping() error {
	select {
	case <-p.done:
		return errConnectionGone
	case p.pingChan <- struct{}{}:
	default:
	}
	return nil
}

func (p *player) CancelAndRelease() {
	p.closeOnce.Do(func() {
		close(p.done)
		p.socket.Close("")
	})
}

// ReadPump decodes inbound packets and forwards them to the room, tagged
// with this player's identity. Runs on the connection's handler goroutine
// until the socket dies.
func (p *player) ReadPump(ctx context.Context) {
	defer func() {
		if p.room != nil {
			p.room.RemoveMe(ctx, p)
		}
	}()

	for {
		data, err := p.socket.Read()
		if err != nil {
			return
		}

		if !p.limiter.Allow() {
			continue
		}

		var packet ClientPacket
		if err := json.Unmarshal(data, &packet); err != nil {
			continue
		}

		p.room.Send(ctx, ClientEventEnvelope{Packet: packet, From: p.id})
	}
}

func (p *player) WritePump() {
	for {
		select {
		case <-p.done:
			return
		case data := <-p.outbox:
			if err := p.socket.Write(data); err != nil {
				return
			}
		case <-p.pingChan:
			if err := p.socket.Ping(); err != nil {
				return
			}
		}
	}
}
