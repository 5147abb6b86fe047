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
	"strings"

	"msoll.eu/user/msoll/snake"
)

type cmdUI struct {
}

func (c cmdUI) Initialise() error {
	fmt.Printf("Starting game\n")
	return nil
}

func (c cmdUI) NewRound(g *snake.Game, tick int) {
	fmt.Println()
	fmt.Println(g.PrintGame(true))
	fmt.Println()
}

func (c cmdUI) NewData(data TickData) {
	ss := buildGameOverviewStrings(data)
	for i := range ss {
		if strings.TrimSpace(ss[i]) != "" {
			fmt.Println(ss[i])
		}
	}
}

func (c cmdUI) Finish(g *snake.Game) error {
	fmt.Printf("\n%s\n\n", buildResultString(g))
	return nil
}

func (c cmdUI) Wait() {
}

type quietUI struct {
}

func (q quietUI) Initialise() error {
	return nil
}

func (q quietUI) NewRound(g *snake.Game, tick int) {
}

func (q quietUI) NewData(data TickData) {
}

func (q quietUI) Finish(g *snake.Game) error {
	fmt.Println(buildResultString(g))
	return nil
}

func (q quietUI) Wait() {
}
