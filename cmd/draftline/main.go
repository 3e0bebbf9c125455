package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/draftline/draftline/internal/core/algorithms"
	"github.com/draftline/draftline/internal/core/config"
	"github.com/draftline/draftline/internal/core/drawing"
	"github.com/draftline/draftline/internal/core/geometry"
	"github.com/draftline/draftline/internal/core/observability/log"
	"github.com/draftline/draftline/internal/core/spatial"
	"github.com/draftline/draftline/internal/core/systems"
	"github.com/draftline/draftline/pkg/sequence"
)

var (
	configPath  string
	queryX      float64
	queryY      float64
	queryRadius float64

	rootCmd = &cobra.Command{
		Use:   "draftline",
		Short: "A 2D geometry kernel with a live spatial index",
	}

	queryCmd = &cobra.Command{
		Use:   "query [scene.yaml]",
		Short: "Load a scene and report the entities near a point",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuery,
	}

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run the kernel over a built-in scene",
		RunE:  runDemo,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	queryCmd.Flags().Float64Var(&queryX, "x", 0, "query point x")
	queryCmd.Flags().Float64Var(&queryY, "y", 0, "query point y")
	queryCmd.Flags().Float64Var(&queryRadius, "radius", 10, "query radius")

	rootCmd.AddCommand(queryCmd, demoCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.LoadFile(configPath)
}

func newEngine(cfg *config.Config) (*systems.World, *systems.Scheduler, log.Log) {
	logger := log.New(log.ParseLevel(cfg.LogLevel))

	store := drawing.NewStore()
	space := spatial.NewSpace(withLogger(cfg.SpaceOptions(), logger))
	world := systems.NewWorld(store, space)
	return world, systems.NewScheduler(world, logger), logger
}

func withLogger(opts spatial.Options, logger log.Log) spatial.Options {
	opts.Logger = logger
	return opts
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	scene, err := LoadSceneFile(args[0])
	if err != nil {
		return err
	}

	world, scheduler, _ := newEngine(cfg)
	defer scheduler.Close()

	if err := scene.Populate(world.Drawing); err != nil {
		return err
	}
	if err := scheduler.RunCycle(); err != nil {
		return err
	}

	at := geometry.Pt(queryX, queryY)
	found := world.Space.QueryPoint(at, queryRadius)
	fmt.Printf("%d of %d entities within %g of (%g, %g)\n",
		len(found), world.Drawing.Len(), queryRadius, queryX, queryY)

	// index hits can come back in tree order; report them by entity id
	hits := sequence.From(found).
		Filter(func(item spatial.SpatialEntity) bool {
			_, ok := world.Drawing.Geometry(item.Entity)
			return ok
		}).
		Sort(func(a, b spatial.SpatialEntity) bool { return a.Entity < b.Entity })

	lines := sequence.Map(hits, func(item spatial.SpatialEntity) string {
		g, _ := world.Drawing.Geometry(item.Entity)
		line := fmt.Sprintf("  entity %d: %s", item.Entity, g.Kind())
		if layer, ok := world.Drawing.Layer(item.Entity); ok {
			line += fmt.Sprintf(" (layer %s)", layer.Name)
		}
		closest := algorithms.ClosestPoint(g, at)
		if !closest.IsInfinite() && len(closest.Points()) > 0 {
			nearest := closest.Points()[0]
			line += fmt.Sprintf(", nearest point (%.2f, %.2f)", nearest.X, nearest.Y)
		}
		return line
	})

	for _, line := range lines.Collect() {
		fmt.Println(line)
	}
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	world, scheduler, logger := newEngine(cfg)
	defer scheduler.Close()

	// a 100x100 square with its top-right corner rounded off
	corner, err := algorithms.Fillet(
		geometry.Pt(100, 0), geometry.Pt(100, 100), geometry.Pt(0, 100), 25,
	)
	if err != nil {
		return fmt.Errorf("fillet demo corner: %w", err)
	}

	shapes := []geometry.Geometry{
		geometry.NewLine(geometry.Pt(0, 0), geometry.Pt(100, 0)),
		geometry.NewLine(geometry.Pt(100, 0), corner.Start()),
		corner,
		geometry.NewLine(corner.End(), geometry.Pt(0, 100)),
		geometry.NewLine(geometry.Pt(0, 100), geometry.Pt(0, 0)),
	}
	for _, g := range shapes {
		id := world.Drawing.CreateEntity()
		world.Drawing.SetGeometry(id, g)
		world.Drawing.SetLayer(id, drawing.Layer{Name: "outline"})
	}

	if err := scheduler.CatchUp(); err != nil {
		return err
	}

	logger.Info("demo scene indexed",
		log.Int("entities", world.Drawing.Len()),
		log.Float64("world_width", world.Space.WorldBound().Width()),
	)

	probes := []geometry.Point{
		geometry.Pt(50, 0),
		geometry.Pt(95, 95),
		geometry.Pt(50, 50),
	}
	for _, p := range probes {
		near := world.Space.QueryPoint(p, 10)
		fmt.Printf("near (%g, %g): %d entities\n", p.X, p.Y, len(near))
	}

	// flatten the rounded corner into a polyline and simplify it back down
	points := algorithms.Approximate(corner, cfg.Tolerances.Approximation).Collect()
	simplified := algorithms.Simplify(points, cfg.Tolerances.Simplification)
	fmt.Printf("corner arc (sweep %.2f rad): %d approximation points, %d after simplification\n",
		math.Abs(corner.SweepAngle()), len(points), len(simplified))

	return nil
}
