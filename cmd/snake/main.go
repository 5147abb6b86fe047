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

// snake is a terminal front end for the snake rules engine.
// The snake is steered with the keyboard or by one of the pilots.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"msoll.eu/user/msoll/snake"
	"msoll.eu/user/msoll/snake/pilot"
)

// TickData holds the metadata of a tick.
type TickData struct {
	Session  string
	Game     *snake.Game // copy owned by the receiver
	Tick     int
	Hit      snake.GridValue
	Input    snake.Direction
	HasInput bool
	Accepted bool
	Pilot    string
	Reason   string
	Runtime  time.Duration
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	session := uuid.New().String()

	var UI UI
	switch cfg.UI {
	case "quiet":
		UI = quietUI{}
	case "cmd":
		UI = cmdUI{}
	default:
		UI = new(terminalUI)
	}

	defer func() {
		err := recover()
		if err != nil {
			// Clearly close UI
			if UI != nil {
				UI.Finish(nil)
				UI.Wait()
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()

	if cfg.Print != "" {
		UI = &teeUI{File: cfg.Print, UI: UI}
	}

	if cfg.Result != "" {
		UI = &resultUI{File: cfg.Result, UI: UI}
	}

	opts := []snake.Option{snake.WithPolicy(cfg.Policy)}
	if cfg.Seed != 0 {
		opts = append(opts, snake.WithSeed(cfg.Seed))
	}
	g, err := snake.NewGame(cfg.Rows, cfg.Cols, opts...)
	if err != nil {
		log.Panicln(err)
	}

	var p pilot.Pilot
	if cfg.Pilot != "" {
		p, err = pilot.Get(cfg.Pilot)
		if err != nil {
			log.Panicln(err)
		}
		if mc, ok := p.(*pilot.MonteCarlo); ok {
			mc.Seed = cfg.Seed
		}
	}

	log.Println("session", session, "grid", cfg.Rows, "x", cfg.Cols, "policy", cfg.Policy, "tick", cfg.Tick)

	err = UI.Initialise()
	if err != nil {
		panic(err)
	}

	input, done := inputOf(UI)
	ticker := time.NewTicker(cfg.Tick)
	defer ticker.Stop()
	start := time.Now()

	UI.NewRound(g.Copy(nil), 0)
	UI.NewData(TickData{Session: session, Game: g.Copy(nil), Pilot: pilotName(p)})

mainGame:
	for !g.GameOver() {
		data := TickData{Session: session, Pilot: pilotName(p)}

		select {
		case <-done:
			break mainGame
		case d := <-input:
			steer(g, p, d)
			continue
		case <-ticker.C:
		}

		if p != nil {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Think)
			d := p.Next(ctx, g)
			cancel()
			data.Input, data.HasInput = d, true
			data.Accepted = g.ChangeDirection(d)
			if e, ok := p.(pilot.Explainer); ok {
				data.Reason = e.Explain()
			}
		}

		data.Hit = g.Move()
		data.Tick = g.Ticks()
		data.Game = g.Copy(nil)
		data.Runtime = time.Since(start)
		UI.NewRound(data.Game, data.Tick)
		UI.NewData(data)

		if cfg.MaxTicks > 0 && g.Ticks() >= cfg.MaxTicks {
			break mainGame
		}
	}

	err = UI.Finish(g.Copy(nil))
	UI.Wait()
	if err != nil {
		log.Println("finish:", err)
	}
	log.Println("session", session, "score", g.Score(), "length", g.Len(), "ticks", g.Ticks(), "reason", g.Reason())
}

// steer hands a key press to the game as it arrives, the policy decides what sticks.
// While a pilot drives, key presses are dropped so the pilot sees the queue it fills itself.
func steer(g *snake.Game, p pilot.Pilot, d snake.Direction) bool {
	if p != nil {
		return false
	}
	return g.ChangeDirection(d)
}

func pilotName(p pilot.Pilot) string {
	if p == nil {
		return "keyboard"
	}
	return p.Name()
}
