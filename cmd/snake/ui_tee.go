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
	"fmt"
	"os"

	"msoll.eu/user/msoll/snake"
)

type teeUI struct {
	File string
	UI   UI
	f    *os.File
}

func (t *teeUI) Initialise() error {
	if t.f != nil {
		return fmt.Errorf("transcript %s already open", t.File)
	}
	f, err := os.Create(t.File)
	if err != nil {
		return err
	}
	if t.UI != nil {
		if err := t.UI.Initialise(); err != nil {
			// no transcript without a running game
			f.Close()
			os.Remove(t.File)
			return err
		}
	}
	t.f = f
	return nil
}

func (t *teeUI) NewRound(g *snake.Game, tick int) {
	if t.UI != nil {
		t.UI.NewRound(g, tick)
	}
}

func (t *teeUI) NewData(data TickData) {
	if t.f != nil && data.Game != nil {
		t.f.WriteString("\n")
		t.f.WriteString(data.Game.PrintGame(false))
		t.f.WriteString("\n\n")

		t.f.WriteString(fmt.Sprintf("Tick %d - Session: %s\n", data.Tick, data.Session))

		ss := buildGameOverviewStrings(data)
		for i := range ss {
			t.f.WriteString(ss[i])
			t.f.WriteString("\n")
		}
		t.f.WriteString("\n")
	}

	if t.UI != nil {
		t.UI.NewData(data)
	}
}

func (t *teeUI) Finish(g *snake.Game) error {
	var err error
	if t.f != nil {
		t.f.WriteString("\n")
		t.f.WriteString(buildResultString(g))
		t.f.WriteString("\n")

		err = t.f.Close()
		t.f = nil
	}
	if t.UI != nil {
		newErr := t.UI.Finish(g)
		if newErr != nil && err != nil {
			return fmt.Errorf("two errors: %w, %w", err, newErr)
		} else if newErr != nil {
			err = newErr
		}
	}
	return err
}

func (t *teeUI) Wait() {
	if t.UI == nil {
		return
	}
	t.UI.Wait()
}

func (t *teeUI) Input() <-chan snake.Direction {
	in, _ := inputOf(t.UI)
	return in
}

func (t *teeUI) Done() <-chan struct{} {
	_, done := inputOf(t.UI)
	return done
}
