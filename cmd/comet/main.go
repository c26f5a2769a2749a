// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/h-ohsaki/casl/pkg/debugger"
	"github.com/h-ohsaki/casl/pkg/loader"
	"github.com/h-ohsaki/casl/pkg/machine"
)

var quietvar bool

const usage = "comet [-q] [file]"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&quietvar, "q", false, "Suppress the startup banner")
	flag.Parse()
}

func comet() int {
	args := flag.Args()
	if len(args) > 1 {
		log.Println(usage)
		return 1
	}

	m := machine.New(os.Stdin, os.Stdout)
	dbg := debugger.New(m, os.Stdin, os.Stdout)

	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			log.Println(err)
			return 1
		}

		err = loader.Load(file, m, args[0])
		file.Close()

		if err != nil {
			log.Println(err)
			return 1
		}
	}

	// run polls this between steps so a Ctrl-C drops back to the
	// comet> prompt instead of killing the process.
	interrupted := false
	dbg.Interrupted = func() bool {
		i := interrupted
		interrupted = false
		return i
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		for range sig {
			interrupted = true
		}
	}()
	defer signal.Stop(sig)

	if !quietvar {
		fmt.Println("comet -- COMET II emulator and debugger")
	}

	for !dbg.Quit {
		fmt.Print("comet> ")

		if !dbg.Scanner.Scan() {
			break
		}

		dbg.Dispatch(dbg.Scanner.Text())
	}

	if dbg.Exited {
		return 1
	}
	return 0
}

func main() {
	os.Exit(comet())
}
