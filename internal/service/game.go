package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goblue0808/Genesis-Frontier/internal/empire"
	"github.com/goblue0808/Genesis-Frontier/internal/model"
	"github.com/goblue0808/Genesis-Frontier/internal/repository"
)

// GameService owns the live empire registry: one simulation per player,
// loaded from its save on first touch, caught up on elapsed wall-clock
// time, and written back after every command. All entry points serialize
// on one mutex; command resolution is pure in-memory work, so contention
// is the database write, not the simulation.
type GameService struct {
	saveRepo   *repository.GameSaveRepository
	playerRepo *repository.PlayerRepository
	hub        *WSHub

	mu      sync.Mutex
	empires map[string]*empire.Empire

	// now is swappable so tests control idle conversion.
	now func() time.Time
}

func NewGameService(saveRepo *repository.GameSaveRepository, playerRepo *repository.PlayerRepository, hub *WSHub) *GameService {
	return &GameService{
		saveRepo:   saveRepo,
		playerRepo: playerRepo,
		hub:        hub,
		empires:    make(map[string]*empire.Empire),
		now:        time.Now,
	}
}

// State loads (and catches up) the player's empire and returns the view.
func (s *GameService) State(ctx context.Context, playerID, username string) (*model.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.loadLocked(ctx, playerID, username)
	if err != nil {
		return nil, err
	}
	return stateView(e), nil
}

// AdvanceTurn resolves one turn on demand, on top of whatever turns the
// elapsed time already accrued.
func (s *GameService) AdvanceTurn(ctx context.Context, playerID, username string) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSTurnResolved, func(e *empire.Empire) bool {
		e.AdvanceTurn()
		return true
	})
}

// ResetPlanet abandons the home planet and starts over on the next type.
func (s *GameService) ResetPlanet(ctx context.Context, playerID, username string) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		e.ResetHomePlanet()
		return true
	})
}

func (s *GameService) ChangePlanetType(ctx context.Context, playerID, username string) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		e.ChangeHomePlanetType()
		return true
	})
}

func (s *GameService) PurchaseFacility(ctx context.Context, playerID, username, kind string) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		return e.Core.PurchaseFacility(kind)
	})
}

func (s *GameService) BuildShip(ctx context.Context, playerID, username, kind string) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		return e.BuildShip(kind)
	})
}

func (s *GameService) Explore(ctx context.Context, playerID, username string, req *model.ExploreRequest) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		return e.ExploreSystem(req.ShipID, req.SystemID)
	})
}

func (s *GameService) Colonize(ctx context.Context, playerID, username string, req *model.ColonizeRequest) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		return e.ColonizePlanet(req.ShipID, req.SystemID, req.PlanetID)
	})
}

func (s *GameService) ProposeTreaty(ctx context.Context, playerID, username string, req *model.TreatyRequest) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		return e.ProposeTreaty(req.OpponentID, req.Treaty)
	})
}

func (s *GameService) CreateTradeRoute(ctx context.Context, playerID, username string, req *model.TradeRouteRequest) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		return e.CreateTradeRoute(req.From, req.To, req.Resource, req.Amount)
	})
}

func (s *GameService) SendSpy(ctx context.Context, playerID, username string, req *model.SpyRequest) (*model.CommandResult, error) {
	var intel *empire.SpyIntel
	result, err := s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		var ok bool
		intel, ok = e.SendSpy(req.TargetID)
		return ok
	})
	if err != nil {
		return nil, err
	}
	result.Intel = intel
	return result, nil
}

func (s *GameService) LaunchInvasion(ctx context.Context, playerID, username string, req *model.InvadeRequest) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		return e.LaunchInvasion(req.TargetID, req.SystemID, req.PlanetID)
	})
}

func (s *GameService) BuildDefense(ctx context.Context, playerID, username string, req *model.DefenseRequest) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		return e.BuildDefense(req.Planet, req.Kind)
	})
}

func (s *GameService) StartMegaProject(ctx context.Context, playerID, username, kind string) (*model.CommandResult, error) {
	return s.command(ctx, playerID, username, model.WSStateChanged, func(e *empire.Empire) bool {
		return e.StartMegaProject(kind)
	})
}

// Unload drops a player's empire from memory after persisting it, e.g. on
// logout. The next touch reloads from the save.
func (s *GameService) Unload(ctx context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.empires[playerID]
	if !ok {
		return nil
	}
	if err := s.persist(ctx, e); err != nil {
		return err
	}
	delete(s.empires, playerID)
	return nil
}

// command runs one mutation under the lock: load, catch up, apply,
// persist, notify.
func (s *GameService) command(ctx context.Context, playerID, username, eventType string, fn func(e *empire.Empire) bool) (*model.CommandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.loadLocked(ctx, playerID, username)
	if err != nil {
		return nil, err
	}

	ok := fn(e)

	if err := s.persist(ctx, e); err != nil {
		return nil, err
	}

	view := stateView(e)
	s.hub.SendToPlayer(playerID, model.NewWSEvent(eventType, view))

	return &model.CommandResult{OK: ok, State: view}, nil
}

// loadLocked returns the player's live empire, reading the save on first
// touch. Elapsed wall-clock time is converted to turns on every call, so
// live sessions and returning players run through the same catch-up path.
func (s *GameService) loadLocked(ctx context.Context, playerID, username string) (*empire.Empire, error) {
	now := s.now()

	if e, ok := s.empires[playerID]; ok {
		if e.CatchUp(now) > 0 {
			if err := s.persist(ctx, e); err != nil {
				return nil, err
			}
			s.hub.SendToPlayer(playerID, model.NewWSEvent(model.WSTurnResolved, stateView(e)))
		}
		return e, nil
	}

	e, fresh, err := s.loadFromSave(ctx, playerID, username, now)
	if err != nil {
		return nil, err
	}

	e.CatchUp(now)
	s.empires[playerID] = e

	if fresh {
		if err := s.persist(ctx, e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (s *GameService) loadFromSave(ctx context.Context, playerID, username string, now time.Time) (*empire.Empire, bool, error) {
	state, seed, err := s.saveRepo.Load(ctx, playerID)
	switch {
	case err == nil:
		var snap empire.Snapshot
		if jsonErr := json.Unmarshal(state, &snap); jsonErr != nil {
			// Undecodable save: same degradation as a corrupt blob.
			return s.freshEmpire(playerID, username, seed, now), true, nil
		}
		e := empire.Restore(&snap)
		if e.PlayerName == "" {
			e.PlayerName = username
		}
		return e, false, nil

	case errors.Is(err, repository.ErrNoSave):
		return s.freshEmpire(playerID, username, 0, now), true, nil

	case errors.Is(err, repository.ErrCorruptSave):
		// The blob is unreadable but the seed column survives; the player
		// at least gets the same galaxy back. Drop the dead row so it is
		// not re-read if the rebuild is interrupted before its first write.
		_ = s.saveRepo.Delete(ctx, playerID)
		return s.freshEmpire(playerID, username, seed, now), true, nil

	default:
		return nil, false, fmt.Errorf("load save: %w", err)
	}
}

func (s *GameService) freshEmpire(playerID, username string, seed int64, now time.Time) *empire.Empire {
	if seed == 0 {
		seed = now.UnixNano()
	}
	e := empire.New(playerID, username, seed)
	e.LastUpdate = now
	return e
}

func (s *GameService) persist(ctx context.Context, e *empire.Empire) error {
	data, err := json.Marshal(e.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.saveRepo.Save(ctx, e.PlayerID, e.Seed, data); err != nil {
		return fmt.Errorf("store save: %w", err)
	}
	// Leaderboard mirror; losing it is not worth failing the command.
	_ = s.playerRepo.UpdatePrestige(ctx, e.PlayerID, e.Core.Resources.Prestige)
	return nil
}

func stateView(e *empire.Empire) *model.GameState {
	return &model.GameState{
		Turn:       e.Core.Turn,
		Stage:      e.Core.ComputeStage(),
		StageName:  e.Core.StageName(),
		Collapsed:  e.Core.Collapsed,
		PlanetType: e.Core.PlanetType,
		PlanetName: e.Core.PlanetName,

		Planet:     e.Core.Planet,
		Resources:  e.Core.Resources,
		Facilities: e.Core.Facilities,
		Alerts:     e.Core.Alerts,

		PrestigeRank: e.PrestigeRank(),

		Galaxy:       e.Galaxy,
		Colonies:     e.Colonies,
		Ships:        e.Ships,
		Shipyard:     e.Shipyard,
		Relations:    e.Relations,
		TradeRoutes:  e.TradeRoutes,
		Alliances:    e.Alliances,
		Wars:         e.Wars,
		Projects:     e.Projects,
		Technologies: e.Technologies,
	}
}
