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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCopyIsIndependent(t *testing.T) {
	g, err := NewGame(6, 6, WithSeed(5))
	require.NoError(t, err)
	body, grid := g.Body(), g.Grid()
	g.ChangeDirection(DirectionUp)

	c := g.Copy(nil)
	assert.Equal(t, []Direction{DirectionUp}, c.Pending())
	for i := 0; i < 10 && !c.GameOver(); i++ {
		c.Move()
	}
	c.ChangeDirection(DirectionLeft)

	assert.Equal(t, body, g.Body())
	assert.Equal(t, grid, g.Grid())
	assert.Equal(t, 0, g.Ticks())
	assert.Equal(t, []Direction{DirectionUp}, g.Pending())
	assert.False(t, g.GameOver())
}

func TestCopyDeterministic(t *testing.T) {
	g, err := NewGame(6, 6, WithSeed(5))
	require.NoError(t, err)

	a, b := g.Copy(nil), g.Copy(nil)
	for i := 0; i < 20; i++ {
		a.Move()
		b.Move()
	}
	assert.Equal(t, a.Grid(), b.Grid())

	c := g.Copy(rand.NewSource(99))
	requireConsistent(t, c)
}

func TestFreeSpace(t *testing.T) {
	g, err := NewGame(5, 5, WithSeed(1))
	require.NoError(t, err)

	// 25 cells minus head and middle segment; the tail can be entered
	assert.Equal(t, 23, g.FreeSpace(Position{Row: 0, Col: 0}, -1))
	assert.Equal(t, 6, g.FreeSpace(Position{Row: 0, Col: 0}, 5))
	assert.Equal(t, 0, g.FreeSpace(Position{Row: 2, Col: 2}, -1))
	assert.Equal(t, 0, g.FreeSpace(Position{Row: -1, Col: 0}, -1))
	// repeated calls reuse the scratch space
	assert.Equal(t, 23, g.FreeSpace(Position{Row: 4, Col: 4}, -1))
}

func TestFreeSpaceSplitBoard(t *testing.T) {
	// The snake fills the middle row of a 3x4 grid except column 0; the
	// top and bottom rows connect through column 0 and the tail.
	g, err := NewGame(3, 4, WithSeed(2))
	require.NoError(t, err)
	placeFood(t, g, Position{Row: 0, Col: 3})

	assert.Equal(t, 10, g.FreeSpace(Position{Row: 0, Col: 3}, -1))
}

func TestUsage(t *testing.T) {
	g, err := NewGame(5, 5, WithSeed(1))
	require.NoError(t, err)
	assert.InDelta(t, 3.0/25.0, g.Usage(), 1e-9)
}

func TestPrintGame(t *testing.T) {
	g, err := NewGame(1, 4, WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, "*●●⮞", g.PrintGame(false))
	assert.Equal(t, g.PrintGame(false), g.String())

	coloured := g.PrintGame(true)
	assert.True(t, strings.Contains(coloured, colourFood))
	assert.True(t, strings.Contains(coloured, colourHead))

	g.Move()
	assert.True(t, g.GameOver())
	assert.Equal(t, "*●●×", g.PrintGame(false))
}

func TestPrintGameRows(t *testing.T) {
	g, err := NewGame(3, 5, WithSeed(1))
	require.NoError(t, err)
	placeFood(t, g, Position{Row: 0, Col: 0})

	assert.Equal(t, "*····\n·●●⮞·\n·····", g.String())
}
