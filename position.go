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

import "fmt"

// GridValue is the content of a single cell.
type GridValue int8

const (
	// Empty is a free cell.
	Empty GridValue = iota
	// Snake is a cell occupied by the body.
	Snake
	// Food is a cell holding food.
	Food
	// Outside is returned for positions off the grid. It is never stored.
	Outside
)

func (v GridValue) String() string {
	switch v {
	case Empty:
		return "empty"
	case Snake:
		return "snake"
	case Food:
		return "food"
	case Outside:
		return "outside"
	}
	return fmt.Sprintf("gridvalue(%d)", int8(v))
}

// Position is a cell on the grid. Row 0 is the top row.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Translate returns the position one step in direction d.
func (p Position) Translate(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Distance returns the manhattan distance between p and o.
func (p Position) Distance(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
