// levelcheck validates level JSON files without starting the game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/platformer/obj"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: levelcheck <level.json> [...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	exit := 0
	for _, path := range flag.Args() {
		lvl, err := obj.LoadLevel(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
			continue
		}
		w, h := lvl.Bounds()
		goal := "none"
		if lvl.Goal != nil {
			goal = fmt.Sprintf("(%g, %g)", lvl.Goal.X, lvl.Goal.Y)
		}
		fmt.Printf("%s: ok\n", path)
		fmt.Printf("  spawn: (%g, %g)\n", lvl.Player.X, lvl.Player.Y)
		fmt.Printf("  platforms: %d, triangles: %d, spikes: %d, goal: %s\n",
			len(lvl.Platforms), len(lvl.Triangles), len(lvl.Spikes), goal)
		fmt.Printf("  world bounds: %g x %g\n", w, h)
	}
	os.Exit(exit)
}
