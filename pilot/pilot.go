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

// Package pilot contains autopilots which steer a snake.Game from its public state.
package pilot

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"msoll.eu/user/msoll/snake"
)

// ErrUnknownPilot is returned by Get for names that are not registered.
var ErrUnknownPilot = errors.New("unknown pilot")

// The Pilot interface provides the interface for different pilots.
//
// Next returns the direction to request before the next tick. It must not change
// the game; pilots that need to look ahead play on g.Copy.
// Next and the other methods are called from a single goroutine.
type Pilot interface {
	Next(ctx context.Context, g *snake.Game) snake.Direction
	Name() string
}

// Explainer is implemented by pilots that can tell why they chose the last direction.
type Explainer interface {
	Explain() string
}

var pilots = map[string]func() Pilot{
	"random":     func() Pilot { return new(Random) },
	"greedy":     func() Pilot { return new(Greedy) },
	"montecarlo": func() Pilot { return new(MonteCarlo) },
}

// Get returns a new pilot registered under name.
func Get(name string) (Pilot, error) {
	f, ok := pilots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPilot, name)
	}
	return f(), nil
}

// Names returns the names of all registered pilots in sorted order.
func Names() []string {
	names := make([]string, 0, len(pilots))
	for k := range pilots {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// safeDirections returns all directions the snake can move in next tick without the game ending.
func safeDirections(g *snake.Game) []snake.Direction {
	safe := make([]snake.Direction, 0, len(snake.Directions))
	for _, d := range snake.Directions {
		switch g.WillHit(g.Head().Translate(d)) {
		case snake.Empty, snake.Food:
			safe = append(safe, d)
		}
	}
	return safe
}

// lookahead plays d on a copy of g and returns what the head hit and the size of
// the largest free area next to the new head.
func lookahead(g *snake.Game, d snake.Direction, cutoff int) (snake.GridValue, int) {
	c := g.Copy(nil)
	c.ChangeDirection(d)
	hit := c.Move()
	if c.GameOver() {
		return hit, 0
	}
	space := 0
	for _, n := range snake.Directions {
		if s := c.FreeSpace(c.Head().Translate(n), cutoff); s > space {
			space = s
		}
	}
	return hit, space
}
