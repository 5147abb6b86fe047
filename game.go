// SPDX-License-Identifier: Apache-2.0
// Copyright 2020,2021 Marcus Soll
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package snake implements the rules of the classic grid snake game.
//
// A Game is a pure state machine: the caller changes the direction with
// ChangeDirection and advances it one tick with Move, then reads the public
// state for drawing. A Game is not safe for concurrent use.
package snake

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

const (
	// InitialLength is the number of segments the snake starts with.
	InitialLength = 3
	// MaxPending is the number of direction changes the buffered policy keeps between two ticks.
	MaxPending = 2
)

// ErrGridTooSmall is returned by NewGame if the initial snake does not fit the grid.
var ErrGridTooSmall = errors.New("grid too small for the initial snake")

// Policy decides how ChangeDirection treats new directions.
type Policy uint8

const (
	// PolicyBuffered queues up to MaxPending validated direction changes, one applied per tick.
	PolicyBuffered Policy = iota
	// PolicyImmediate overwrites the direction without any validation.
	PolicyImmediate
)

func (p Policy) String() string {
	switch p {
	case PolicyBuffered:
		return "buffered"
	case PolicyImmediate:
		return "immediate"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParsePolicy returns the policy named by s.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "buffered", "":
		return PolicyBuffered, nil
	case "immediate":
		return PolicyImmediate, nil
	}
	return 0, fmt.Errorf("unknown policy %q", s)
}

// EndReason tells why a game is over.
type EndReason uint8

const (
	// ReasonNone is reported while the game is running.
	ReasonNone EndReason = iota
	// ReasonWall is reported when the head left the grid.
	ReasonWall
	// ReasonSelf is reported when the head ran into the body.
	ReasonSelf
)

func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWall:
		return "wall-collision"
	case ReasonSelf:
		return "self-collision"
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

// Option configures a Game in NewGame.
type Option func(*Game)

// WithPolicy sets the direction change policy. The default is PolicyBuffered.
func WithPolicy(p Policy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

// WithSource sets the random source used for food placement.
func WithSource(src rand.Source) Option {
	return func(g *Game) {
		if src != nil {
			g.rng = rand.New(src)
		}
	}
}

// WithSeed uses a deterministic source seeded with seed for food placement.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewSource(seed))
}

// Game holds the complete state of a running game.
type Game struct {
	rows  int
	cols  int
	cells []GridValue // row-major

	body     body
	dir      Direction
	pending  [MaxPending]Direction
	npending int
	policy   Policy

	food    Position
	hasFood bool

	score  int
	ticks  int
	over   bool
	reason EndReason
	last   GridValue

	rng *rand.Rand

	// scratch space for FreeSpace, not copied
	freeCountingSlice []bool
}

// NewGame returns a game on a rows x cols grid. The snake starts in the middle row
// at columns 1 to InitialLength heading right, and one food is placed at random.
func NewGame(rows, cols int, opts ...Option) (*Game, error) {
	if rows < 1 || cols < InitialLength+1 {
		return nil, fmt.Errorf("%w: %d x %d", ErrGridTooSmall, rows, cols)
	}

	g := &Game{
		rows:   rows,
		cols:   cols,
		cells:  make([]GridValue, rows*cols),
		body:   newBody(rows * cols),
		dir:    DirectionRight,
		policy: PolicyBuffered,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	g.addSnake()
	g.addFood()
	return g, nil
}

func (g *Game) addSnake() {
	r := g.rows / 2
	for c := 1; c <= InitialLength; c++ {
		g.addHead(Position{Row: r, Col: c})
	}
}

func (g *Game) emptyPositions() []Position {
	empty := make([]Position, 0, len(g.cells)-g.body.Len())
	for i, v := range g.cells {
		if v == Empty {
			empty = append(empty, Position{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return empty
}

// addFood places food on a random empty cell. A full grid gets no food.
func (g *Game) addFood() {
	empty := g.emptyPositions()
	if len(empty) == 0 {
		g.hasFood = false
		return
	}
	pos := empty[g.rng.Intn(len(empty))]
	g.set(pos, Food)
	g.food = pos
	g.hasFood = true
}

func (g *Game) addHead(pos Position) {
	g.body.PushFront(pos)
	g.set(pos, Snake)
}

func (g *Game) removeTail() {
	tail := g.body.PopBack()
	g.set(tail, Empty)
}

func (g *Game) set(pos Position, v GridValue) {
	g.cells[pos.Row*g.cols+pos.Col] = v
}

func (g *Game) outsideGrid(pos Position) bool {
	return pos.Row < 0 || pos.Col < 0 || pos.Row >= g.rows || pos.Col >= g.cols
}

// lastDirection is the direction a new change has to be checked against.
func (g *Game) lastDirection() Direction {
	if g.npending == 0 {
		return g.dir
	}
	return g.pending[g.npending-1]
}

func (g *Game) canChangeDirection(d Direction) bool {
	if g.npending == MaxPending {
		return false
	}
	last := g.lastDirection()
	return d != last && d != last.Opposite()
}

// ChangeDirection requests the snake to head into d and reports whether the
// request was taken.
//
// With PolicyImmediate the direction is replaced right away, even by its
// opposite. With PolicyBuffered the change is queued if fewer than MaxPending
// changes are waiting and d is neither the last requested direction nor its
// opposite; anything else is dropped.
func (g *Game) ChangeDirection(d Direction) bool {
	if g.over || !d.Valid() {
		return false
	}
	if g.policy == PolicyImmediate {
		g.dir = d
		return true
	}
	if !g.canChangeDirection(d) {
		return false
	}
	g.pending[g.npending] = d
	g.npending++
	return true
}

// WillHit classifies what the head would run into at pos. The current tail
// counts as Empty since it moves away in the same tick.
func (g *Game) WillHit(pos Position) GridValue {
	if g.outsideGrid(pos) {
		return Outside
	}
	if pos == g.Tail() {
		return Empty
	}
	return g.cells[pos.Row*g.cols+pos.Col]
}

// Move advances the game by one tick and returns what the head ran into.
// Running into Outside or Snake ends the game without touching the board.
// Once the game is over Move does nothing and returns the value that ended it.
func (g *Game) Move() GridValue {
	if g.over {
		return g.last
	}

	if g.npending > 0 {
		g.dir = g.pending[0]
		copy(g.pending[:], g.pending[1:g.npending])
		g.npending--
	}
	g.ticks++

	newHead := g.Head().Translate(g.dir)
	hit := g.WillHit(newHead)
	g.last = hit

	switch hit {
	case Outside:
		g.over = true
		g.reason = ReasonWall
	case Snake:
		g.over = true
		g.reason = ReasonSelf
	case Empty:
		g.removeTail()
		g.addHead(newHead)
	case Food:
		g.addHead(newHead)
		g.hasFood = false
		g.score++
		g.addFood()
	}
	return hit
}

// Rows returns the number of rows of the grid.
func (g *Game) Rows() int { return g.rows }

// Cols returns the number of columns of the grid.
func (g *Game) Cols() int { return g.cols }

// Dir returns the direction the snake moved in last (or will move in next if nothing is queued).
func (g *Game) Dir() Direction { return g.dir }

// Policy returns the direction change policy.
func (g *Game) Policy() Policy { return g.policy }

// Score returns the amount of food eaten.
func (g *Game) Score() int { return g.score }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.over }

// Reason returns why the game ended, or ReasonNone while it is running.
func (g *Game) Reason() EndReason { return g.reason }

// Ticks returns the number of ticks played.
func (g *Game) Ticks() int { return g.ticks }

// Len returns the length of the snake.
func (g *Game) Len() int { return g.body.Len() }

// Head returns the position of the head.
func (g *Game) Head() Position { return g.body.Front() }

// Tail returns the position of the tail.
func (g *Game) Tail() Position { return g.body.Back() }

// Body returns the positions of all segments, head first.
func (g *Game) Body() []Position { return g.body.Slice() }

// Food returns the position of the food, if there is any.
func (g *Game) Food() (Position, bool) { return g.food, g.hasFood }

// Pending returns the queued direction changes in the order they will be applied.
func (g *Game) Pending() []Direction {
	p := make([]Direction, g.npending)
	copy(p, g.pending[:g.npending])
	return p
}

// Cell returns the stored value at pos, or Outside if pos is off the grid.
func (g *Game) Cell(pos Position) GridValue {
	if g.outsideGrid(pos) {
		return Outside
	}
	return g.cells[pos.Row*g.cols+pos.Col]
}

// Grid returns a copy of the grid, indexed [row][col].
func (g *Game) Grid() [][]GridValue {
	flat := make([]GridValue, len(g.cells))
	copy(flat, g.cells)
	grid := make([][]GridValue, g.rows)
	for r := range grid {
		grid[r] = flat[r*g.cols : (r+1)*g.cols]
	}
	return grid
}
