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
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"msoll.eu/user/msoll/snake"
	"msoll.eu/user/msoll/snake/pilot"
)

// FieldMaxSize contains the maximum size of the field (both rows and cols).
const FieldMaxSize = 80

var errInvalidConfig = errors.New("invalid configuration")

type config struct {
	Rows     int
	Cols     int
	Tick     time.Duration
	Think    time.Duration
	Policy   snake.Policy
	Seed     uint64
	Pilot    string
	UI       string
	Print    string
	Result   string
	MaxTicks int
}

// parseConfig reads the command line. The environment variables SNAKE_ROWS,
// SNAKE_COLS, SNAKE_SEED and SNAKE_PILOT replace the matching flags.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (config, error) {
	var c config

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&c.Rows, "rows", 20, "Number of rows")
	fs.IntVar(&c.Cols, "cols", 40, "Number of columns")
	tickString := fs.String("tick", "150ms", "Duration of a tick. Must be parseable as time.Duration")
	thinkString := fs.String("think", "", "Max computation time of a pilot per tick. Empty string uses half a tick. Must be parseable as time.Duration")
	policy := fs.String("policy", "buffered", "Direction change policy (buffered, immediate)")
	fs.Uint64Var(&c.Seed, "seed", 0, "Seed for food placement. 0 uses the clock")
	fs.StringVar(&c.Pilot, "pilot", "", fmt.Sprintf("Let a pilot play (%s). Empty string reads the keyboard", strings.Join(pilot.Names(), ", ")))
	fs.StringVar(&c.UI, "ui", "terminal", "User interface (terminal, cmd, quiet)")
	fs.StringVar(&c.Print, "print", "", "Prints every tick into file")
	fs.StringVar(&c.Result, "result", "", "Prints the final score into file")
	fs.IntVar(&c.MaxTicks, "max-ticks", 0, "Stop after this many ticks. 0 disables the limit")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	// Replace flags
	{
		var err error
		if env := getenv("SNAKE_ROWS"); env != "" {
			log.Println("Using SNAKE_ROWS from env:", env)
			if c.Rows, err = strconv.Atoi(env); err != nil {
				return c, fmt.Errorf("%w: SNAKE_ROWS: %v", errInvalidConfig, err)
			}
		}
		if env := getenv("SNAKE_COLS"); env != "" {
			log.Println("Using SNAKE_COLS from env:", env)
			if c.Cols, err = strconv.Atoi(env); err != nil {
				return c, fmt.Errorf("%w: SNAKE_COLS: %v", errInvalidConfig, err)
			}
		}
		if env := getenv("SNAKE_SEED"); env != "" {
			log.Println("Using SNAKE_SEED from env:", env)
			if c.Seed, err = strconv.ParseUint(env, 10, 64); err != nil {
				return c, fmt.Errorf("%w: SNAKE_SEED: %v", errInvalidConfig, err)
			}
		}
		if env := getenv("SNAKE_PILOT"); env != "" {
			log.Println("Using SNAKE_PILOT from env:", env)
			c.Pilot = env
		}
	}

	var err error
	c.Tick, err = time.ParseDuration(*tickString)
	if err != nil {
		return c, fmt.Errorf("%w: tick: %v", errInvalidConfig, err)
	}
	if c.Tick < 10*time.Millisecond {
		return c, fmt.Errorf("%w: tick must be at least 10ms (is %s)", errInvalidConfig, c.Tick)
	}

	c.Think = c.Tick / 2
	if *thinkString != "" {
		c.Think, err = time.ParseDuration(*thinkString)
		if err != nil {
			return c, fmt.Errorf("%w: think: %v", errInvalidConfig, err)
		}
		if c.Think <= 0 || c.Think >= c.Tick {
			return c, fmt.Errorf("%w: think must be between 0 and the tick (is %s)", errInvalidConfig, c.Think)
		}
	}

	c.Policy, err = snake.ParsePolicy(*policy)
	if err != nil {
		return c, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}

	if c.Rows < 1 || c.Cols < snake.InitialLength+1 {
		return c, fmt.Errorf("%w: rows must be at least 1 and cols at least %d (is %d x %d)", errInvalidConfig, snake.InitialLength+1, c.Rows, c.Cols)
	}
	if c.Rows > FieldMaxSize || c.Cols > FieldMaxSize {
		return c, fmt.Errorf("%w: rows and cols must be at most %d (is %d x %d)", errInvalidConfig, FieldMaxSize, c.Rows, c.Cols)
	}

	switch c.UI {
	case "terminal":
	case "cmd", "quiet":
		if c.Pilot == "" {
			return c, fmt.Errorf("%w: playing by keyboard needs the terminal ui", errInvalidConfig)
		}
	default:
		return c, fmt.Errorf("%w: unknown ui %q", errInvalidConfig, c.UI)
	}

	if c.Pilot != "" {
		if _, err := pilot.Get(c.Pilot); err != nil {
			return c, fmt.Errorf("%w: %v", errInvalidConfig, err)
		}
	}

	return c, nil
}
