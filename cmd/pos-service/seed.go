package main

import (
	"log"

	"github.com/Jaomarks/eternapdv/internal/menu"
	"github.com/Jaomarks/eternapdv/internal/order"
)

type seedOrder struct {
	customer string
	cpf      string
	table    *int
	address  *string
	delivery bool
	status   order.Status
	items    []order.CreateOrderItem
}

func tableOf(n int) *int      { return &n }
func addrOf(s string) *string { return &s }

// seedDemoOrders loads the sample orders so displays have something to show
// on a fresh run: one in preparo, one pendente and two prontos.
func seedDemoOrders(store *order.Store, catalog *menu.Catalog) {
	seeds := []seedOrder{
		{
			customer: "João Silva", cpf: "123.456.789-00", table: tableOf(5), status: order.StatusPreparing,
			items: []order.CreateOrderItem{
				{MenuItemID: "1", Quantity: 2, Notes: "Sem cebola"},
				{MenuItemID: "6", Quantity: 2, Notes: "Coca-Cola"},
			},
		},
		{
			customer: "Maria Oliveira", cpf: "987.654.321-00", delivery: true,
			address: addrOf("Rua das Flores, 123"), status: order.StatusPending,
			items: []order.CreateOrderItem{
				{MenuItemID: "2", Quantity: 1},
				{MenuItemID: "5", Quantity: 1, Notes: "Bem passada"},
			},
		},
		{
			customer: "Carlos Pereira", table: tableOf(8), status: order.StatusReady,
			items: []order.CreateOrderItem{
				{MenuItemID: "3", Quantity: 3},
				{MenuItemID: "7", Quantity: 3, Notes: "2 de laranja, 1 de limão"},
			},
		},
		{
			customer: "Ana Souza", cpf: "111.222.333-44", table: tableOf(3), status: order.StatusReady,
			items: []order.CreateOrderItem{
				{MenuItemID: "1", Quantity: 1},
				{MenuItemID: "4", Quantity: 1},
			},
		},
	}

	for _, sd := range seeds {
		var lines []order.CreateLine
		for _, it := range sd.items {
			mi, ok := catalog.Get(it.MenuItemID)
			if !ok {
				log.Printf("[seed] menu item %q não existe, pulando", it.MenuItemID)
				continue
			}
			lines = append(lines, order.CreateLine{
				MenuItemID: mi.ID, Name: mi.Name, Price: mi.Price,
				Quantity: it.Quantity, Notes: it.Notes,
			})
		}
		o, err := store.CreateOrder(order.CreateRequest{
			Lines:           lines,
			CustomerName:    sd.customer,
			CustomerCPF:     sd.cpf,
			IsDelivery:      sd.delivery,
			TableNumber:     sd.table,
			DeliveryAddress: sd.address,
		})
		if err != nil {
			log.Printf("[seed] pedido de %s rejeitado: %v", sd.customer, err)
			continue
		}
		// Walk the lifecycle up to the target status.
		for _, st := range []order.Status{order.StatusPreparing, order.StatusReady, order.StatusDelivered} {
			if o.Status == sd.status {
				break
			}
			if o, err = store.UpdateStatus(o.ID, st); err != nil {
				log.Printf("[seed] transição do pedido %d falhou: %v", o.ID, err)
				break
			}
		}
	}
	log.Printf("[seed] %d pedidos de exemplo carregados", len(seeds))
}
