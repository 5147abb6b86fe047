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

// resultUI writes the outcome of the game into File for scripts.
type resultUI struct {
	File        string
	UI          UI
	initialised bool
}

func (r *resultUI) Initialise() error {
	r.initialised = true
	if r.UI != nil {
		return r.UI.Initialise()
	}
	return nil
}

func (r *resultUI) NewRound(g *snake.Game, tick int) {
	if r.UI != nil {
		r.UI.NewRound(g, tick)
	}
}

func (r *resultUI) NewData(data TickData) {
	if r.UI != nil {
		r.UI.NewData(data)
	}
}

func (r *resultUI) Finish(g *snake.Game) error {
	var err error
	if r.UI != nil {
		err = r.UI.Finish(g)
	}

	if r.initialised {
		f, newErr := os.Create(r.File)
		if newErr != nil {
			return newErr
		}
		defer f.Close()

		if g == nil {
			_, newErr = f.WriteString("aborted\n")
		} else {
			_, newErr = f.WriteString(fmt.Sprintf("score: %d\nlength: %d\nticks: %d\nreason: %s\n", g.Score(), g.Len(), g.Ticks(), g.Reason()))
		}
		if newErr != nil {
			return newErr
		}
	}

	return err
}

func (r *resultUI) Wait() {
	if r.UI != nil {
		r.UI.Wait()
	}
}

func (r *resultUI) Input() <-chan snake.Direction {
	in, _ := inputOf(r.UI)
	return in
}

func (r *resultUI) Done() <-chan struct{} {
	_, done := inputOf(r.UI)
	return done
}
