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

package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell"

	"msoll.eu/user/msoll/snake"
)

type terminalUI struct {
	screen          tcell.Screen
	gameState       TickData
	styles          map[snake.GridValue]tcell.Style
	headStyle       tcell.Style
	ctx             context.Context
	done            context.CancelFunc
	firstGame       chan bool
	newData         chan TickData
	running         chan bool
	input           chan snake.Direction
	positionRunning int
	once            *sync.Once
}

// keyDirections maps the arrow keys to directions.
var keyDirections = map[tcell.Key]snake.Direction{
	tcell.KeyUp:    snake.DirectionUp,
	tcell.KeyDown:  snake.DirectionDown,
	tcell.KeyLeft:  snake.DirectionLeft,
	tcell.KeyRight: snake.DirectionRight,
}

// runeDirections maps WASD and vi keys to directions.
var runeDirections = map[rune]snake.Direction{
	'w': snake.DirectionUp,
	's': snake.DirectionDown,
	'a': snake.DirectionLeft,
	'd': snake.DirectionRight,
	'k': snake.DirectionUp,
	'j': snake.DirectionDown,
	'h': snake.DirectionLeft,
	'l': snake.DirectionRight,
}

func (tui *terminalUI) Initialise() error {
	var err error

	tui.firstGame = make(chan bool, 5)
	tui.newData = make(chan TickData, 5)
	tui.running = make(chan bool, 5)
	tui.input = make(chan snake.Direction, 8)
	tui.ctx, tui.done = context.WithCancel(context.Background())
	tui.once = new(sync.Once)

	tui.screen, err = tcell.NewScreen()
	if err != nil {
		tui.done()
		return fmt.Errorf("terminal ui: %w", err)
	}

	err = tui.screen.Init()
	if err != nil {
		tui.done()
		return fmt.Errorf("terminal ui: %w", err)
	}

	tui.styles = map[snake.GridValue]tcell.Style{
		snake.Empty: tcell.StyleDefault.Foreground(tcell.ColorGray),
		snake.Snake: tcell.StyleDefault.Foreground(tcell.NewRGBColor(24, 178, 24)),
		snake.Food:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(178, 24, 24)),
	}
	tui.headStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 220, 80)).Bold(true)

	tui.drawString(0, 0, "Waiting for game")
	tui.positionRunning = FieldMaxSize + 2 + 30
	tui.drawString(tui.positionRunning, 0, "ready")
	tui.screen.Show()

	go tui.mainLoop()

	return nil
}

func (tui *terminalUI) NewRound(g *snake.Game, tick int) {
	tui.once.Do(func() {
		select {
		case tui.firstGame <- true:
		default:
		}
	})
}

func (tui *terminalUI) NewData(data TickData) {
	select {
	case tui.newData <- data:
	default:
	}
}

func (tui *terminalUI) Finish(g *snake.Game) error {
	select {
	case tui.running <- false:
	default:
	}
	return nil
}

func (tui *terminalUI) Wait() {
	if tui.ctx == nil {
		// never initialised
		return
	}
	<-tui.ctx.Done()
}

func (tui *terminalUI) Input() <-chan snake.Direction {
	return tui.input
}

func (tui *terminalUI) Done() <-chan struct{} {
	return tui.ctx.Done()
}

func (tui *terminalUI) sendInput(d snake.Direction) {
	select {
	case tui.input <- d:
	default:
	}
}

func (tui *terminalUI) drawString(x, y int, v string) {
	for i, r := range []rune(v) {
		tui.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func (tui *terminalUI) drawGameState() {
	gd := tui.gameState
	g := gd.Game

	if g == nil {
		tui.screen.Clear()
		return
	}

	// border
	for c := 0; c <= g.Cols()+1; c++ {
		tui.screen.SetContent(c, 0, '─', nil, tcell.StyleDefault)
		tui.screen.SetContent(c, g.Rows()+1, '─', nil, tcell.StyleDefault)
	}
	for r := 0; r <= g.Rows()+1; r++ {
		tui.screen.SetContent(0, r, '│', nil, tcell.StyleDefault)
		tui.screen.SetContent(g.Cols()+1, r, '│', nil, tcell.StyleDefault)
	}
	tui.screen.SetContent(0, 0, '┌', nil, tcell.StyleDefault)
	tui.screen.SetContent(g.Cols()+1, 0, '┐', nil, tcell.StyleDefault)
	tui.screen.SetContent(0, g.Rows()+1, '└', nil, tcell.StyleDefault)
	tui.screen.SetContent(g.Cols()+1, g.Rows()+1, '┘', nil, tcell.StyleDefault)

	head := g.Head()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			pos := snake.Position{Row: r, Col: c}
			style := tui.styles[g.Cell(pos)]
			if pos == head {
				style = tui.headStyle
			}
			tui.screen.SetContent(c+1, r+1, g.RuneAt(pos), nil, style)
		}
	}

	ss := buildGameOverviewStrings(gd)
	ox := g.Cols() + 3
	for i, s := range ss {
		if i == 0 {
			tui.drawString(ox, i, fmt.Sprintf("%-30s", s))
		} else {
			tui.drawString(ox, i, fmt.Sprintf("%-60s", s))
		}
	}
	tui.screen.Show()
}

func (tui *terminalUI) mainLoop() {
	running := true
	ec := make(chan tcell.Event)
	go func() {
		for {
			e := tui.screen.PollEvent()
			if e == nil {
				// screen finalised
				return
			}
			select {
			case ec <- e:
			case <-tui.ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case e := <-ec:
			switch ev := e.(type) {
			case *tcell.EventResize:
				tui.screen.Sync()
				tui.drawGameState()
			case *tcell.EventKey:
				if d, ok := keyDirections[ev.Key()]; ok {
					tui.sendInput(d)
					continue
				}
				switch ev.Key() {
				case tcell.KeyRune:
					if d, ok := runeDirections[ev.Rune()]; ok {
						tui.sendInput(d)
						continue
					}
					if ev.Rune() != 'q' {
						continue
					}
					fallthrough
				case tcell.KeyEscape, tcell.KeyCtrlC:
					tui.screen.Fini()
					tui.done()
					if running {
						fmt.Println("terminal ui closed")
					}
					return
				}
			}
		case gs, ok := <-tui.newData:
			if ok && gs.Game != nil {
				tui.gameState = gs
				tui.drawGameState()
			}
		case <-tui.running:
			running = false
			tui.drawString(tui.positionRunning, 0, "finished - press q")
			tui.screen.Show()
			tui.running = nil
		case <-tui.firstGame:
			tui.drawString(tui.positionRunning, 0, "running")
			tui.screen.Show()
			tui.firstGame = nil
		}
	}
}
