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

package snake

import "golang.org/x/exp/rand"

// Copy returns a deep copy of the game which can be played without side effects
// on g. The copy places food with src; if src is nil a source derived from the
// current tick is used, so copies of the same state behave the same.
func (g *Game) Copy(src rand.Source) *Game {
	if src == nil {
		src = rand.NewSource(uint64(g.ticks)<<32 | uint64(g.score))
	}
	ng := *g
	ng.cells = make([]GridValue, len(g.cells))
	copy(ng.cells, g.cells)
	ng.body = g.body.clone()
	ng.rng = rand.New(src)
	ng.freeCountingSlice = nil
	return &ng
}

// Usage returns the fraction of the grid covered by the snake.
func (g *Game) Usage() float64 {
	return float64(g.body.Len()) / float64(g.rows*g.cols)
}

// enterable reports whether the head could move onto pos in the next tick.
func (g *Game) enterable(pos Position) bool {
	v := g.WillHit(pos)
	return v == Empty || v == Food
}

// FreeSpace counts the cells connected to from (including from itself) that the
// head could enter. The search stops once more than cutoff cells are found;
// cutoff -1 means no cutoff.
// Not concurrent safe.
func (g *Game) FreeSpace(from Position, cutoff int) int {
	if g.freeCountingSlice == nil {
		g.freeCountingSlice = make([]bool, len(g.cells))
	} else {
		for i := range g.freeCountingSlice {
			g.freeCountingSlice[i] = false
		}
	}
	return g.freeSpaceInternal(from, cutoff, 0)
}

func (g *Game) freeSpaceInternal(pos Position, cutoff, current int) int {
	if cutoff != -1 && current > cutoff {
		return current
	}
	if g.outsideGrid(pos) {
		return current
	}

	cell := pos.Row*g.cols + pos.Col
	if g.freeCountingSlice[cell] {
		return current
	}
	g.freeCountingSlice[cell] = true

	if !g.enterable(pos) {
		return current
	}
	current++

	for _, d := range Directions {
		current = g.freeSpaceInternal(pos.Translate(d), cutoff, current)
	}
	return current
}
