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

import "strings"

var (
	colourSnake = "\033[32m"
	colourHead  = "\033[92m"
	colourFood  = "\033[31m"
	colourReset = "\033[0m"
)

func (g *Game) String() string {
	return g.PrintGame(false)
}

// PrintGame returns a string representation of the grid, one line per row.
// With colour set, ANSI escape sequences are added.
func (g *Game) PrintGame(colour bool) string {
	var s strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			pos := Position{Row: r, Col: c}
			if colour {
				switch {
				case pos == g.Head():
					s.WriteString(colourHead)
				case g.Cell(pos) == Snake:
					s.WriteString(colourSnake)
				case g.Cell(pos) == Food:
					s.WriteString(colourFood)
				}
			}
			s.WriteRune(g.RuneAt(pos))
			if colour {
				s.WriteString(colourReset)
			}
		}
		if r < g.rows-1 {
			s.WriteRune('\n')
		}
	}
	return s.String()
}

// RuneAt returns the rune used to draw pos. The head is drawn as an arrow
// pointing in the current direction.
func (g *Game) RuneAt(pos Position) rune {
	switch g.Cell(pos) {
	case Snake:
		if pos != g.Head() {
			return '●'
		}
		if g.over {
			return '×'
		}
		switch g.dir {
		case DirectionUp:
			return '⮝'
		case DirectionRight:
			return '⮞'
		case DirectionDown:
			return '⮟'
		case DirectionLeft:
			return '⮜'
		}
		return '●'
	case Food:
		return '*'
	case Empty:
		return '·'
	}
	return ' '
}
