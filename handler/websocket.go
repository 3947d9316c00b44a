package handler

import (
	"cardapio_digital/config"
	"cardapio_digital/database"
	"cardapio_digital/model"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var redisClient = redis.NewClient(&redis.Options{
	Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
})

// PublishOrder envia o pedido atualizado para quem acompanha em tempo
// real: a tela do cliente (canal do pedido) e o painel da cozinha
// (canal do estabelecimento)
func PublishOrder(order *model.Order) {
	payload, err := json.Marshal(order)
	if err != nil {
		log.Printf("publish order %s: %v", order.PublicCode, err)
		return
	}

	ctx := context.Background()
	redisClient.Publish(ctx, fmt.Sprintf("order:%s", order.PublicCode), payload)
	redisClient.Publish(ctx, fmt.Sprintf("business:%d:orders", order.BusinessId), payload)
}

type roomSubscription interface {
	Channel(opts ...redis.ChannelOption) <-chan *redis.Message
	Close() error
}

var newRoomSubscription = func(room string) roomSubscription {
	return redisClient.Subscribe(context.Background(), room)
}

// wsRoom compartilha uma única assinatura Redis entre todas as
// conexões da sala; cada mensagem chega uma vez por conexão
type wsRoom struct {
	conns map[*websocket.Conn]bool
	sub   roomSubscription
}

var (
	wsRooms = make(map[string]*wsRoom)
	wsMu    sync.Mutex
)

// joinRoom registra a conexão; a primeira entrada abre a assinatura
// e dispara a goroutine de repasse da sala
func joinRoom(room string, c *websocket.Conn) {
	wsMu.Lock()
	defer wsMu.Unlock()

	r, ok := wsRooms[room]
	if !ok {
		r = &wsRoom{
			conns: make(map[*websocket.Conn]bool),
			sub:   newRoomSubscription(room),
		}
		wsRooms[room] = r
		go fanOut(room, r.sub)
	}
	r.conns[c] = true
}

// leaveRoom tira a conexão; a última saída fecha a assinatura, o que
// encerra o canal e derruba a goroutine de repasse
func leaveRoom(room string, c *websocket.Conn) {
	wsMu.Lock()
	defer wsMu.Unlock()

	r, ok := wsRooms[room]
	if !ok {
		return
	}
	delete(r.conns, c)
	if len(r.conns) == 0 {
		r.sub.Close()
		delete(wsRooms, room)
	}
}

func fanOut(room string, sub roomSubscription) {
	for msg := range sub.Channel() {
		payload := []byte(msg.Payload)

		wsMu.Lock()
		r := wsRooms[room]
		if r == nil {
			wsMu.Unlock()
			continue
		}
		for conn := range r.conns {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(r.conns, conn)
			}
		}
		wsMu.Unlock()
	}
}

// OrderWebsocket acompanha um pedido pelo código público
func OrderWebsocket(c *websocket.Conn) {
	code := c.Params("publicCode")
	serveRoom(c, fmt.Sprintf("order:%s", code), func() any {
		var order model.Order
		if err := database.DB.Where("public_code = ?", code).First(&order).Error; err != nil {
			return nil
		}
		return &order
	})
}

// KitchenWebsocket acompanha todos os pedidos de um estabelecimento
func KitchenWebsocket(c *websocket.Conn) {
	businessId := c.Params("businessId")
	serveRoom(c, fmt.Sprintf("business:%s:orders", businessId), nil)
}

// serveRoom mantém a conexão na sala até o cliente desconectar.
// initial, quando presente, é enviado logo após conectar.
func serveRoom(c *websocket.Conn, room string, initial func() any) {
	joinRoom(room, c)
	defer func() {
		leaveRoom(room, c)
		c.Close()
	}()

	if initial != nil {
		if snapshot := initial(); snapshot != nil {
			c.WriteJSON(snapshot)
		}
	}

	// clientes não mandam nada; o loop de leitura existe para
	// perceber a desconexão na hora, não quando um write falhar
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
