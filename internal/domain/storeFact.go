// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// StoreFact representa os fatos consolidados de uma loja em um período de
// referência. Produzido externamente pela view materializada; somente leitura.
type StoreFact struct {
	StoreID          string  `json:"store_id"`
	StoreName        string  `json:"store_name"`
	Segment          string  `json:"segment"`
	SalesValue       float64 `json:"sales_value"`
	SalesUnits       float64 `json:"sales_units"`
	InventoryInitial float64 `json:"inventory_initial"`
	InventoryFinal   float64 `json:"inventory_final"`
	DaysInventory    float64 `json:"days_inventory"`
	WeeklySalesValue float64 `json:"weekly_sales_value"`
	WeeklySalesUnits float64 `json:"weekly_sales_units"`
}

// SkuFact representa os fatos de um SKU em uma loja específica. Uma linha por
// combinação (loja, sku).
type SkuFact struct {
	StoreID            string  `json:"store_id"`
	Sku                string  `json:"sku"`
	ProductName        string  `json:"product_name"`
	Category           string  `json:"category"`
	DailyAvgSalesUnits float64 `json:"daily_avg_sales_units"`
	FinalInventory     float64 `json:"final_inventory"`
	UnitPrice          float64 `json:"unit_price"`
}
