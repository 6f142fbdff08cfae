package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/photonforge/waveroute/calib"
	"github.com/photonforge/waveroute/geom"
	"github.com/photonforge/waveroute/obstacle"
	"github.com/photonforge/waveroute/route"
)

var (
	dupDX float64
	dupDY float64
)

var routeCmd = &cobra.Command{
	Use:   "route <job_file>",
	Short: "Route every request in a YAML job file",
	Long: `Load a routing job from a YAML file and route each request in order.

The job file carries an optional config section (engine defaults apply
to omitted fields) and a list of requests:

  config:
    bend_radius_min: 25
    clearance_margin: 5
    loop_height_max: 100
    length_tolerance: 1e-3
  requests:
    - id: arm-left
      start: {x: 0, y: 0, heading: 0, width: 0.5}
      end:   {x: 300, y: 0, heading: 0, width: 0.5}
      target_length: 475
      obstacles:
        - owner: mmi_block
          rect: {min: {x: 90, y: -20}, max: {x: 110, y: 20}}`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)
	routeCmd.Flags().Float64Var(&dupDX, "dup-dx", 0, "duplicate routed paths shifted by this X offset")
	routeCmd.Flags().Float64Var(&dupDY, "dup-dy", 0, "duplicate routed paths shifted by this Y offset")
}

// jobFile is the YAML shape of a routing job.
type jobFile struct {
	Config   *configYAML   `yaml:"config"`
	Requests []requestYAML `yaml:"requests"`
}

type configYAML struct {
	BendRadiusMin   *float64 `yaml:"bend_radius_min"`
	ClearanceMargin *float64 `yaml:"clearance_margin"`
	LoopHeightMax   *float64 `yaml:"loop_height_max"`
	LengthTolerance *float64 `yaml:"length_tolerance"`
	PoseEpsilon     *float64 `yaml:"pose_epsilon"`
	ChordError      *float64 `yaml:"chord_error"`
	DetourSteps     *int     `yaml:"detour_steps"`
}

type poseYAML struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
	Width   float64 `yaml:"width"`
}

type obstacleYAML struct {
	Owner   string      `yaml:"owner"`
	Rect    *rectYAML   `yaml:"rect"`
	Polygon []pointYAML `yaml:"polygon"`
}

type rectYAML struct {
	Min pointYAML `yaml:"min"`
	Max pointYAML `yaml:"max"`
}

type pointYAML struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type requestYAML struct {
	ID            string         `yaml:"id"`
	Start         poseYAML       `yaml:"start"`
	End           poseYAML       `yaml:"end"`
	TargetLength  float64        `yaml:"target_length"`
	LoopHeightMax float64        `yaml:"loop_height_max"`
	Obstacles     []obstacleYAML `yaml:"obstacles"`
}

func runRoute(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading job file: %w", err)
	}

	var job jobFile
	if err := yaml.Unmarshal(data, &job); err != nil {
		return fmt.Errorf("error parsing job file: %w", err)
	}
	if len(job.Requests) == 0 {
		return fmt.Errorf("job file %s contains no requests", args[0])
	}

	cfg := buildConfig(job.Config)
	reqs := make([]route.RoutingRequest, 0, len(job.Requests))
	for i, r := range job.Requests {
		req, err := buildRequest(r)
		if err != nil {
			return fmt.Errorf("request %d (%s): %w", i, r.ID, err)
		}
		reqs = append(reqs, req)
	}

	results := route.Batch(reqs, cfg)

	failed := 0
	routed := make([]geom.Path, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Printf("%-20s FAILED  %v\n", res.ID, res.Err)

			continue
		}
		routed = append(routed, res.Path)
		fmt.Printf("%-20s OK      length=%.4f segments=%d\n",
			res.ID, res.Path.Length(), len(res.Path.Segments))
		if verbose {
			printSegments(res.Path)
		}
	}

	if (dupDX != 0 || dupDY != 0) && len(routed) > 0 {
		copies := calib.Duplicate(routed, geom.Point{X: dupDX, Y: dupDY})
		fmt.Printf("duplicated %d paths at offset (%.4f, %.4f)\n", len(copies), dupDX, dupDY)
		for i := range copies {
			if !calib.Congruent(routed[i], copies[i]) {
				return fmt.Errorf("duplicate %d is not congruent with its original", i)
			}
		}
	}

	fmt.Printf("routed %d/%d requests\n", len(results)-failed, len(results))
	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(results))
	}

	return nil
}

// buildConfig starts from engine defaults and overrides the fields the
// job file sets.
func buildConfig(c *configYAML) route.Config {
	cfg := route.DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.BendRadiusMin != nil {
		cfg.BendRadiusMin = *c.BendRadiusMin
	}
	if c.ClearanceMargin != nil {
		cfg.ClearanceMargin = *c.ClearanceMargin
	}
	if c.LoopHeightMax != nil {
		cfg.LoopHeightMax = *c.LoopHeightMax
	}
	if c.LengthTolerance != nil {
		cfg.LengthTolerance = *c.LengthTolerance
	}
	if c.PoseEpsilon != nil {
		cfg.PoseEpsilon = *c.PoseEpsilon
	}
	if c.ChordError != nil {
		cfg.ChordError = *c.ChordError
	}
	if c.DetourSteps != nil {
		cfg.DetourSteps = *c.DetourSteps
	}

	return cfg
}

func buildRequest(r requestYAML) (route.RoutingRequest, error) {
	obstacles := make([]obstacle.Obstacle, 0, len(r.Obstacles))
	for i, o := range r.Obstacles {
		built, err := buildObstacle(o)
		if err != nil {
			return route.RoutingRequest{}, fmt.Errorf("obstacle %d: %w", i, err)
		}
		obstacles = append(obstacles, built)
	}

	return route.RoutingRequest{
		ID:            r.ID,
		Start:         geom.NewPose(r.Start.X, r.Start.Y, r.Start.Heading, r.Start.Width),
		End:           geom.NewPose(r.End.X, r.End.Y, r.End.Heading, r.End.Width),
		TargetLength:  r.TargetLength,
		LoopHeightMax: r.LoopHeightMax,
		Obstacles:     obstacles,
	}, nil
}

func buildObstacle(o obstacleYAML) (obstacle.Obstacle, error) {
	switch {
	case o.Rect != nil && len(o.Polygon) > 0:
		return obstacle.Obstacle{}, fmt.Errorf("rect and polygon are mutually exclusive")
	case o.Rect != nil:
		return obstacle.NewRect(
			geom.Point{X: o.Rect.Min.X, Y: o.Rect.Min.Y},
			geom.Point{X: o.Rect.Max.X, Y: o.Rect.Max.Y},
			o.Owner)
	case len(o.Polygon) > 0:
		verts := make([]geom.Point, len(o.Polygon))
		for i, p := range o.Polygon {
			verts[i] = geom.Point{X: p.X, Y: p.Y}
		}

		return obstacle.NewPolygon(verts, o.Owner)
	default:
		return obstacle.Obstacle{}, fmt.Errorf("obstacle needs a rect or a polygon")
	}
}

func printSegments(p geom.Path) {
	cur := p.Start
	for i, s := range p.Segments {
		next := s.Apply(cur)
		switch s.Kind {
		case geom.StraightKind:
			fmt.Printf("  %2d straight len=%.4f -> (%.4f, %.4f)\n",
				i, s.Length, next.Position.X, next.Position.Y)
		case geom.ArcKind:
			fmt.Printf("  %2d arc      r=%.4f angle=%.4f -> (%.4f, %.4f)\n",
				i, s.Radius, s.Angle, next.Position.X, next.Position.Y)
		}
		cur = next
	}
}
