package api

import "PedGuard/internal/api/handler"

// HandlersGroup bundles every initialized handler for the router.
type HandlersGroup struct {
	AuthHandler             *handler.AuthHandler
	UserHandler             *handler.UserHandler
	AccidentHandler         *handler.AccidentHandler
	SuggestionHandler       *handler.SuggestionHandler
	SuggestionActionHandler *handler.SuggestionActionHandler
	DistrictHandler         *handler.DistrictHandler
	MapHandler              *handler.MapHandler
	KpiHandler              *handler.KpiHandler
	DashboardHandler        *handler.DashboardHandler
	AlertHandler            *handler.AlertHandler
	InvestmentHandler       *handler.InvestmentHandler
}
