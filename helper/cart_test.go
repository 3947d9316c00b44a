package helper

import (
	"math"
	"sync"
	"testing"
)

func TestAddItemMergesSameAddonSet(t *testing.T) {
	cart := &Cart{}

	addonsA := []CartAddon{
		{AddonId: 1, Name: "Borda de catupiry", Quantity: 1, Price: 8},
		{AddonId: 2, Name: "Bacon extra", Quantity: 1, Price: 5},
	}
	// mesmos adicionais em ordem diferente
	addonsB := []CartAddon{
		{AddonId: 2, Name: "Bacon extra", Quantity: 1, Price: 5},
		{AddonId: 1, Name: "Borda de catupiry", Quantity: 1, Price: 8},
	}

	first := cart.AddItem(10, "Pizza Calabresa", 45, 1, addonsA)
	second := cart.AddItem(10, "Pizza Calabresa", 45, 2, addonsB)

	if first != second {
		t.Errorf("mesma combinação deveria reutilizar a linha: %q != %q", first, second)
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", cart.Lines[0].Quantity)
	}
}

func TestAddItemDifferentAddonsCreateSeparateLines(t *testing.T) {
	cart := &Cart{}

	cart.AddItem(10, "Pizza Calabresa", 45, 1, []CartAddon{{AddonId: 1, Name: "Borda", Quantity: 1, Price: 8}})
	cart.AddItem(10, "Pizza Calabresa", 45, 1, nil)
	cart.AddItem(10, "Pizza Calabresa", 45, 1, []CartAddon{{AddonId: 1, Name: "Borda", Quantity: 2, Price: 8}})

	if len(cart.Lines) != 3 {
		t.Errorf("len(Lines) = %d, want 3 (adicionais diferentes, linhas diferentes)", len(cart.Lines))
	}
}

func TestRemoveItemDropsLineAtZero(t *testing.T) {
	cart := &Cart{}
	lineId := cart.AddItem(10, "Coca-Cola 2L", 12, 2, nil)

	cart.RemoveItem(lineId)
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 1 {
		t.Fatalf("após remover uma unidade: lines=%d qty=%d", len(cart.Lines), cart.Lines[0].Quantity)
	}

	cart.RemoveItem(lineId)
	if !cart.IsEmpty() {
		t.Error("linha deveria sumir ao zerar a quantidade")
	}
}

func TestAdjustQuantityUnknownLineIsNoop(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(10, "Coca-Cola 2L", 12, 1, nil)

	cart.AdjustQuantity("nao-existe", 5)
	cart.RemoveItem("nao-existe")

	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 1 {
		t.Errorf("linha inexistente não deveria alterar o carrinho: lines=%d", len(cart.Lines))
	}
}

func TestSubtotalIncludesAddons(t *testing.T) {
	cart := &Cart{}
	// (45 + 8) * 2 = 106
	cart.AddItem(10, "Pizza Calabresa", 45, 2, []CartAddon{{AddonId: 1, Name: "Borda", Quantity: 1, Price: 8}})
	// 12 * 1
	cart.AddItem(20, "Coca-Cola 2L", 12, 1, nil)

	if got := cart.Subtotal(); math.Abs(got-118) > 1e-9 {
		t.Errorf("Subtotal() = %v, want 118", got)
	}
}

func TestCartStoreIsolatesSessions(t *testing.T) {
	store := NewCartStore()

	a := store.Get("sessao-a")
	a.AddItem(10, "Pizza", 45, 1, nil)

	b := store.Get("sessao-b")
	if !b.IsEmpty() {
		t.Error("sessões diferentes não podem compartilhar carrinho")
	}

	if store.Get("sessao-a") != a {
		t.Error("mesma sessão deveria devolver o mesmo carrinho")
	}

	store.Clear("sessao-a")
	if !store.Get("sessao-a").IsEmpty() {
		t.Error("Clear deveria descartar o carrinho da sessão")
	}
}

func TestCartConcurrentAddsMergeIntoOneLine(t *testing.T) {
	cart := NewCartStore().Get("sessao")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cart.AddItem(10, "Pizza Calabresa", 10, 1, nil)
			cart.Subtotal()
		}()
	}
	wg.Wait()

	lines, subtotal := cart.Snapshot()
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1 (adições concorrentes da mesma combinação)", len(lines))
	}
	if lines[0].Quantity != 50 {
		t.Errorf("Quantity = %d, want 50", lines[0].Quantity)
	}
	if math.Abs(subtotal-500) > 1e-9 {
		t.Errorf("subtotal = %v, want 500", subtotal)
	}
}

func TestSnapshotIsDecoupledFromLiveCart(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(10, "Pizza Calabresa", 45, 1, []CartAddon{{AddonId: 1, Name: "Borda", Quantity: 1, Price: 8}})

	lines, _ := cart.Snapshot()
	lines[0].Quantity = 99
	lines[0].Addons[0].Price = 0

	fresh, subtotal := cart.Snapshot()
	if fresh[0].Quantity != 1 || fresh[0].Addons[0].Price != 8 {
		t.Error("mexer na cópia não pode vazar para o carrinho vivo")
	}
	if math.Abs(subtotal-53) > 1e-9 {
		t.Errorf("subtotal = %v, want 53", subtotal)
	}
}
