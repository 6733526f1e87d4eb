package menu

import "github.com/shopspring/decimal"

func preco(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Default is the house menu of the lanchonete.
func Default() *Catalog {
	return NewCatalog([]Item{
		{ID: "1", Name: "X-Burger", Description: "Hambúrguer com queijo, alface, tomate e molho especial", Price: preco("18.90"), Category: "Hambúrgueres", Available: true},
		{ID: "2", Name: "X-Bacon", Description: "Hambúrguer com queijo, bacon, alface, tomate e molho especial", Price: preco("22.90"), Category: "Hambúrgueres", Available: true},
		{ID: "3", Name: "X-Salada", Description: "Hambúrguer com queijo, alface, tomate, cebola e molho especial", Price: preco("19.90"), Category: "Hambúrgueres", Available: true},
		{ID: "4", Name: "Batata Frita P", Description: "Porção pequena de batatas fritas crocantes", Price: preco("8.90"), Category: "Acompanhamentos", Available: true},
		{ID: "5", Name: "Batata Frita G", Description: "Porção grande de batatas fritas crocantes", Price: preco("14.90"), Category: "Acompanhamentos", Available: true},
		{ID: "6", Name: "Refrigerante Lata", Description: "Lata 350ml (Coca-Cola, Guaraná, Sprite)", Price: preco("5.90"), Category: "Bebidas", Available: true},
		{ID: "7", Name: "Suco Natural", Description: "Copo 300ml (Laranja, Limão, Abacaxi)", Price: preco("7.90"), Category: "Bebidas", Available: true},
		{ID: "8", Name: "Milk Shake", Description: "Copo 400ml (Chocolate, Morango, Baunilha)", Price: preco("12.90"), Category: "Bebidas", Available: true},
	})
}
