package helper

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// CartAddon é um adicional escolhido numa linha do carrinho
type CartAddon struct {
	AddonId  uint    `json:"addonId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CartLine é uma linha do carrinho. LineId é independente do produto:
// o mesmo produto com adicionais diferentes convive em linhas separadas.
type CartLine struct {
	LineId    string      `json:"lineId"`
	ProductId uint        `json:"productId"`
	Name      string      `json:"name"`
	UnitPrice float64     `json:"unitPrice"` // preço no momento da adição (promo se houver)
	Quantity  int         `json:"quantity"`
	Addons    []CartAddon `json:"addons,omitempty"`
}

// FinalPrice é o preço unitário da linha já com os adicionais
func (l CartLine) FinalPrice() float64 {
	price := l.UnitPrice
	for _, a := range l.Addons {
		price += a.Price * float64(a.Quantity)
	}
	return price
}

// Cart é mutado por requisições concorrentes da mesma sessão
// (duas abas do cliente); todo acesso a Lines passa pelo mutex.
type Cart struct {
	mu    sync.Mutex
	Lines []CartLine `json:"lines"`
}

// sameAddonSet compara os conjuntos de adicionais estruturalmente,
// ignorando a ordem de escolha
func sameAddonSet(a, b []CartAddon) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]CartAddon(nil), a...)
	bs := append([]CartAddon(nil), b...)
	sort.Slice(as, func(i, j int) bool { return as[i].AddonId < as[j].AddonId })
	sort.Slice(bs, func(i, j int) bool { return bs[i].AddonId < bs[j].AddonId })
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// AddItem soma à linha existente quando produto e adicionais coincidem;
// caso contrário cria uma linha nova com id próprio. Retorna o line id.
func (c *Cart) AddItem(productId uint, name string, unitPrice float64, quantity int, addons []CartAddon) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductId == productId && sameAddonSet(c.Lines[i].Addons, addons) {
			c.Lines[i].Quantity += quantity
			return c.Lines[i].LineId
		}
	}
	line := CartLine{
		LineId:    uuid.NewString(),
		ProductId: productId,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Addons:    addons,
	}
	c.Lines = append(c.Lines, line)
	return line.LineId
}

// RemoveItem tira uma unidade da linha; a linha some quando zera.
// Linha inexistente é no-op.
func (c *Cart) RemoveItem(lineId string) {
	c.AdjustQuantity(lineId, -1)
}

// AdjustQuantity aplica um delta à quantidade da linha, removendo a
// linha quando chega a zero. Linha inexistente é no-op.
func (c *Cart) AdjustQuantity(lineId string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.Lines {
		if c.Lines[i].LineId != lineId {
			continue
		}
		c.Lines[i].Quantity += delta
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// Subtotal é derivado, nunca armazenado
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

func (c *Cart) subtotalLocked() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.FinalPrice() * float64(l.Quantity)
	}
	return total
}

// Snapshot devolve uma cópia desacoplada das linhas junto com o
// subtotal, consistentes entre si. É o que os handlers serializam:
// o carrinho vivo nunca sai de trás do mutex.
func (c *Cart) Snapshot() ([]CartLine, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]CartLine, len(c.Lines))
	for i, l := range c.Lines {
		l.Addons = append([]CartAddon(nil), l.Addons...)
		lines[i] = l
	}
	return lines, c.subtotalLocked()
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Lines) == 0
}

// CartStore mantém os carrinhos ativos por sessão, em memória.
// Carrinho é descartável: não sobrevive ao restart do servidor.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*Cart)}
}

// Carts é o registro global de carrinhos de sessão
var Carts = NewCartStore()

func (s *CartStore) Get(sessionId string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionId]
	if !ok {
		cart = &Cart{}
		s.carts[sessionId] = cart
	}
	return cart
}

func (s *CartStore) Clear(sessionId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionId)
}
