package server

// Server groups the per-resource HTTP servers behind one router.
type Server struct {
	CatalogServer
	CalculatorServer
	TradeServer
	InventoryServer
	AlertServer
}

func NewServer(
	catalogServer CatalogServer,
	calculatorServer CalculatorServer,
	tradeServer TradeServer,
	inventoryServer InventoryServer,
	alertServer AlertServer,
) Server {
	return Server{
		CatalogServer:    catalogServer,
		CalculatorServer: calculatorServer,
		TradeServer:      tradeServer,
		InventoryServer:  inventoryServer,
		AlertServer:      alertServer,
	}
}
