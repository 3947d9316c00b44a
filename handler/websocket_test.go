package handler

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

type fakeSubscription struct {
	ch     chan *redis.Message
	closed bool
}

func (f *fakeSubscription) Channel(opts ...redis.ChannelOption) <-chan *redis.Message {
	return f.ch
}

func (f *fakeSubscription) Close() error {
	if !f.closed {
		f.closed = true
		close(f.ch)
	}
	return nil
}

func TestRoomSharesOneSubscription(t *testing.T) {
	orig := newRoomSubscription
	defer func() { newRoomSubscription = orig }()

	subs := make(map[string]*fakeSubscription)
	opened := 0
	newRoomSubscription = func(room string) roomSubscription {
		opened++
		s := &fakeSubscription{ch: make(chan *redis.Message)}
		subs[room] = s
		return s
	}

	room := "order:PED-TESTE1"
	a, b := &websocket.Conn{}, &websocket.Conn{}

	joinRoom(room, a)
	joinRoom(room, b)
	if opened != 1 {
		t.Fatalf("duas conexões na mesma sala abriram %d assinaturas, want 1", opened)
	}

	leaveRoom(room, a)
	if subs[room].closed {
		t.Fatal("assinatura fechada com conexão ainda na sala")
	}

	leaveRoom(room, b)
	if !subs[room].closed {
		t.Fatal("última saída deveria fechar a assinatura")
	}

	wsMu.Lock()
	_, alive := wsRooms[room]
	wsMu.Unlock()
	if alive {
		t.Fatal("sala vazia deveria ser descartada")
	}
}

func TestLeaveUnknownRoomIsNoop(t *testing.T) {
	leaveRoom("order:PED-NUNCA1", &websocket.Conn{})
}
