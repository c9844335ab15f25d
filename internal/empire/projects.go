package empire

import (
	"fmt"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// MegaProjectOrder is a mega-project under construction.
type MegaProjectOrder struct {
	Kind           string `json:"kind"`
	CompletionTurn int    `json:"completion_turn"`
}

// Prestige awarded when a mega-project completes. Further effects are an
// extension point.
const megaProjectPrestige = 5000

// StartMegaProject pays the full cost upfront and enqueues construction.
func (e *Empire) StartMegaProject(kind string) bool {
	project, ok := catalog.MegaProjectByKey(kind)
	if !ok {
		return false
	}

	if len(e.Colonies) < project.MinPlanets {
		e.Core.AddAlert(fmt.Sprintf("Need %d planets for this mega-project", project.MinPlanets), sim.SeverityWarning)
		return false
	}

	res := &e.Core.Resources
	if res.Credits < project.Cost.Credits || res.Metals < project.Cost.Metals || res.RareResources < project.Cost.RareResources {
		e.Core.AddAlert("Insufficient resources for mega-project", sim.SeverityWarning)
		return false
	}

	res.Credits -= project.Cost.Credits
	res.Metals -= project.Cost.Metals
	res.RareResources -= project.Cost.RareResources

	e.Projects = append(e.Projects, MegaProjectOrder{
		Kind:           kind,
		CompletionTurn: e.Core.Turn + project.BuildTime,
	})

	e.Core.AddAlert(fmt.Sprintf("Mega-project started: %s!", project.Name), sim.SeveritySuccess)
	return true
}

// processMegaProjects completes and removes finished projects.
func (e *Empire) processMegaProjects() {
	remaining := e.Projects[:0]
	for _, p := range e.Projects {
		if e.Core.Turn < p.CompletionTurn {
			remaining = append(remaining, p)
			continue
		}
		project, _ := catalog.MegaProjectByKey(p.Kind)
		e.Core.AddAlert(fmt.Sprintf("MEGA-PROJECT COMPLETED: %s!", project.Name), sim.SeveritySuccess)
		e.Core.Resources.Prestige += megaProjectPrestige
	}
	e.Projects = remaining
}
