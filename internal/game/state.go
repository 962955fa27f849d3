// Package game holds the authoritative record of one match: board
// occupancy, selection, the side to act and the action the hovered cell
// would trigger.
package game

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

// PendingAction is the interpretation of the hovered cell given the current selection
type PendingAction string

const (
	PendingNone              PendingAction = "none"
	PendingSelect            PendingAction = "select"
	PendingMove              PendingAction = "move"
	PendingAttack            PendingAction = "attack"
	PendingRejectedSelection PendingAction = "rejected-selection"
	PendingTooFarToAttack    PendingAction = "rejected-too-far-to-attack"
	PendingTooFarToMove      PendingAction = "rejected-too-far-to-move"
)

// Rejected reports whether clicking would be refused
func (p PendingAction) Rejected() bool {
	switch p {
	case PendingRejectedSelection, PendingTooFarToAttack, PendingTooFarToMove:
		return true
	default:
		return false
	}
}

// Phase is the coarse lifecycle of a match
type Phase string

const (
	PhaseInProgress Phase = "in-progress"
	PhaseGameOver   Phase = "game-over"
)

// State is owned by the turn controller for the duration of one match
type State struct {
	ID         string
	Board      *entities.Board
	ActiveSide entities.Side
	Selected   *entities.PlacedUnit
	Pending    PendingAction
	Phase      Phase
	Winner     entities.Side
	Turn       int
	Theme      entities.Theme
}

// New creates an empty state for a size×size board
func New(id string, size int, theme entities.Theme) *State {
	s := &State{Board: entities.NewBoard(size), Theme: theme}
	s.Reset(id)
	return s
}

// Reset clears the board and hands the first turn to the player
func (s *State) Reset(id string) {
	s.ID = id
	s.Board.Clear()
	s.ActiveSide = entities.SidePlayer
	s.Selected = nil
	s.Pending = PendingNone
	s.Phase = PhaseInProgress
	s.Winner = ""
	s.Turn = 1
}

// Over reports whether the match has ended
func (s *State) Over() bool {
	return s.Phase == PhaseGameOver
}

// PlayerToAct reports whether clicks are currently accepted
func (s *State) PlayerToAct() bool {
	return s.Phase == PhaseInProgress && s.ActiveSide == entities.SidePlayer
}

// Select makes p the selected unit. Units of the inactive side are refused.
func (s *State) Select(p *entities.PlacedUnit) bool {
	if p == nil || p.Side() != s.ActiveSide || !s.Board.Contains(p) {
		return false
	}
	s.Selected = p
	return true
}

// Deselect clears the selection
func (s *State) Deselect() {
	s.Selected = nil
}

// ClearTransient drops the selection and hover interpretation
func (s *State) ClearTransient() {
	s.Selected = nil
	s.Pending = PendingNone
}

// Remove takes a unit off the board and drops any reference to it
func (s *State) Remove(p *entities.PlacedUnit) bool {
	if !s.Board.Remove(p) {
		return false
	}
	if s.Selected == p {
		s.Selected = nil
	}
	return true
}

// CheckGameOver ends the match when a side has no units left. A side with
// no units loses; the opponent of the side to act wins a mutual wipe.
func (s *State) CheckGameOver() bool {
	if s.Over() {
		return true
	}

	players := s.Board.Count(entities.SidePlayer)
	computers := s.Board.Count(entities.SideComputer)
	switch {
	case players > 0 && computers > 0:
		return false
	case players > 0:
		s.Winner = entities.SidePlayer
	case computers > 0:
		s.Winner = entities.SideComputer
	default:
		s.Winner = s.ActiveSide.Opponent()
	}

	s.Phase = PhaseGameOver
	s.ClearTransient()
	return true
}

// PassTurn hands the move to the other side. Turn counts full rounds and
// advances when control returns to the player.
func (s *State) PassTurn() {
	s.ClearTransient()
	s.ActiveSide = s.ActiveSide.Opponent()
	if s.ActiveSide == entities.SidePlayer {
		s.Turn++
	}
}

// UnitByID finds a placed unit by its unit ID
func (s *State) UnitByID(id string) *entities.PlacedUnit {
	for _, p := range s.Board.Units() {
		if p.Unit.ID == id {
			return p
		}
	}
	return nil
}

// Snapshot returns a deep copy that shares nothing with s
func (s *State) Snapshot() *State {
	c := *s
	c.Board = s.Board.Clone()
	c.Selected = nil
	if s.Selected != nil {
		c.Selected = c.Board.At(s.Selected.Position)
	}
	return &c
}
