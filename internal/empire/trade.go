package empire

import (
	"fmt"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// TradeRoute moves a fixed amount of one resource between two owned
// planets each turn, as long as the source can cover it.
type TradeRoute struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	Resource string  `json:"resource"`
	Amount   float64 `json:"amount"`
	ShipID   string  `json:"ship_id"`
}

// CreateTradeRoute assigns an idle freighter to a recurring transfer
// between two owned planets.
func (e *Empire) CreateTradeRoute(from, to int, resource string, amount float64) bool {
	if from < 0 || to < 0 || from >= len(e.Colonies) || to >= len(e.Colonies) {
		e.Core.AddAlert("Invalid planet selection", sim.SeverityWarning)
		return false
	}
	if _, ok := e.Colonies[from].Resources.Get(resource); !ok {
		e.Core.AddAlert("Invalid planet selection", sim.SeverityWarning)
		return false
	}

	var freighter *Ship
	for _, s := range e.Ships {
		if s.Kind == catalog.ShipFreighter && !s.Traveling {
			freighter = s
			break
		}
	}
	if freighter == nil {
		e.Core.AddAlert("No available freighter for trade route", sim.SeverityWarning)
		return false
	}

	e.TradeRoutes = append(e.TradeRoutes, TradeRoute{
		From:     from,
		To:       to,
		Resource: resource,
		Amount:   amount,
		ShipID:   freighter.ID,
	})

	e.Core.AddAlert(fmt.Sprintf("Trade route established: %s transport", resource), sim.SeveritySuccess)
	return true
}

// processTradeRoutes executes every route once. A route whose source
// cannot cover the full amount simply skips the turn.
func (e *Empire) processTradeRoutes() {
	for _, route := range e.TradeRoutes {
		if route.From >= len(e.Colonies) || route.To >= len(e.Colonies) {
			continue
		}
		from := e.Colonies[route.From]
		to := e.Colonies[route.To]

		available, ok := from.Resources.Get(route.Resource)
		if !ok || available < route.Amount {
			continue
		}
		from.Resources.Add(route.Resource, -route.Amount)
		to.Resources.Add(route.Resource, route.Amount)
	}
}
