package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/forest-stand/internal/config"
	"github.com/appengine-ltd/forest-stand/internal/export"
	"github.com/appengine-ltd/forest-stand/internal/forest"
	"github.com/appengine-ltd/forest-stand/internal/viewer"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		scenePath   string
		csvPath     string
		jsonPath    string
		view        bool

		plotWidth  float64
		plotLength float64
		nTrees     int
		placement  string
		minSpacing float64
		seed       int64

		trunkHeight float64
		trunkRadius float64
		crownShape  string
		crownHeight float64
		crownRadius float64
		lai         float64
		leafRadius  float64
		leafAngles  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&scenePath, "scene", "", "scene file (.json, .yaml or .yml); overrides the plot and tree flags")
	flag.StringVar(&csvPath, "csv", "", "write the stand to a CSV file")
	flag.StringVar(&jsonPath, "json", "", "write the stand to a JSON file")
	flag.BoolVar(&view, "view", false, "open the 3D viewer (cgo builds only)")

	// Defaults mirror the bundled demo scene: a 20x20 plot of 20 randomly
	// placed sphere-crowned trees.
	flag.Float64Var(&plotWidth, "plot-width", 20, "plot width (x)")
	flag.Float64Var(&plotLength, "plot-length", 20, "plot length (y)")
	flag.IntVar(&nTrees, "trees", 20, "number of trees")
	flag.StringVar(&placement, "placement", "random", "placement strategy: uniform or random")
	flag.Float64Var(&minSpacing, "min-spacing", 1.0, "minimum tree spacing for random placement")
	flag.Int64Var(&seed, "seed", 0, "random seed")

	flag.Float64Var(&trunkHeight, "trunk-height", 4.5, "trunk height")
	flag.Float64Var(&trunkRadius, "trunk-radius", 0.18, "trunk radius")
	flag.StringVar(&crownShape, "crown-shape", "sphere", "crown shape: sphere, sphere_w_LH, cylinder or cone")
	flag.Float64Var(&crownHeight, "crown-height", 3.0, "crown height")
	flag.Float64Var(&crownRadius, "crown-radius", 2.0, "crown radius")
	flag.Float64Var(&lai, "lai", 2.5, "leaf area index")
	flag.Float64Var(&leafRadius, "leaf-radius", 0.09, "leaf radius")
	flag.StringVar(&leafAngles, "leaf-angles", "planophile", "leaf angle distribution: uniform, spherical, planophile or erectophile")
	flag.Parse()

	if showVersion {
		fmt.Printf("forest-stand %s (%s) %s\n", version, commit, date)
		return
	}

	cfg, err := buildConfig(scenePath, config.Scene{
		PlotWidth:  plotWidth,
		PlotLength: plotLength,
		Trees:      nTrees,
		Placement:  placement,
		MinSpacing: minSpacing,
		Seed:       seed,
		TreeParams: &forest.TreeParams{
			TrunkHeight: trunkHeight,
			TrunkRadius: trunkRadius,
			CrownShape:  forest.CrownShape(crownShape),
			CrownHeight: crownHeight,
			CrownRadius: crownRadius,
			LAI:         lai,
			LeafRadius:  leafRadius,
			LeafAngles:  forest.LeafAngle(leafAngles),
		},
	})
	if err != nil {
		fatal(err)
	}
	if seedSet() {
		cfg.Seed = seed
	}

	result, err := forest.GenerateStand(cfg)
	if err != nil {
		fatal(err)
	}
	if !result.Complete() {
		fmt.Fprintf(os.Stderr, "warning: only %d of %d trees placed due to spacing constraints\n",
			result.Placed, result.Requested)
	}

	if csvPath != "" {
		if err := export.StandToCSVFile(result.Stand, csvPath); err != nil {
			fatal(err)
		}
	}
	if jsonPath != "" {
		if err := export.StandToJSONFile(result.Stand, jsonPath); err != nil {
			fatal(err)
		}
	}
	if csvPath == "" && jsonPath == "" && !view {
		leaves := 0
		for _, tree := range result.Stand {
			leaves += len(tree.Leaves)
		}
		fmt.Printf("generated %d trees, %d leaves on a %gx%g plot (seed %d)\n",
			result.Placed, leaves, cfg.PlotWidth, cfg.PlotLength, cfg.Seed)
	}

	if view {
		if err := viewer.Show(result.Stand, cfg.PlotWidth, cfg.PlotLength); err != nil {
			fatal(err)
		}
	}
}

// buildConfig prefers a scene file when given, otherwise the flag values.
func buildConfig(scenePath string, flagScene config.Scene) (forest.StandConfig, error) {
	if scenePath == "" {
		return flagScene.StandConfig()
	}
	scene, err := config.Load(scenePath)
	if err != nil {
		return forest.StandConfig{}, err
	}
	return scene.StandConfig()
}

// seedSet reports whether -seed was passed explicitly, so it can override a
// scene file's seed.
func seedSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	return set
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
