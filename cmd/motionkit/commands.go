package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ivlev/motionkit/internal/config"
	"github.com/ivlev/motionkit/internal/controller"
	"github.com/ivlev/motionkit/internal/curve"
	"github.com/ivlev/motionkit/internal/director"
	"github.com/ivlev/motionkit/internal/effects"
	"github.com/ivlev/motionkit/internal/engine"
	"github.com/ivlev/motionkit/internal/grid"
	"github.com/ivlev/motionkit/internal/imagequeue"
	"github.com/ivlev/motionkit/internal/preset"
	"github.com/ivlev/motionkit/internal/renderer"
	"github.com/ivlev/motionkit/internal/source"
	"github.com/ivlev/motionkit/internal/system"
)

const (
	queuesDir = "queues"
	outputDir = "output"
)

func newDelaysCmd() *cobra.Command {
	var (
		kind  string
		count int
		base  float64
	)
	cmd := &cobra.Command{
		Use:   "delays",
		Short: "Print the delays a curve produces for a queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := curve.ParseKind(kind)
			if err != nil {
				return err
			}
			e := curve.NewEngine()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INDEX\tDELAY")
			for i := 0; i < count; i++ {
				fmt.Fprintf(w, "%d\t%.4f\n", i, e.Delay(curve.Request{Kind: k, Index: i, Base: base}))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&kind, "curve", "linear", "Delay curve")
	cmd.Flags().IntVar(&count, "count", 10, "Number of elements")
	cmd.Flags().Float64Var(&base, "base", director.DefaultBaseDuration, "Base duration (seconds)")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List animation presets and transitions",
		Run: func(cmd *cobra.Command, args []string) {
			lib := preset.Default()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Presets (%d):\n", len(lib.PresetNames()))
			for _, name := range lib.PresetNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintf(out, "Transitions (%d):\n", len(lib.TransitionNames()))
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, name := range lib.TransitionNames() {
				tr := lib.Transition(name)
				fmt.Fprintf(w, "  %s\t%gs\t%s\n", name, tr.Duration, tr.Ease)
			}
			w.Flush()
		},
	}
}

// loadConfig loads path, or the newest project file under queues/.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		latest, err := system.FindLatest(queuesDir, ".yaml", ".yml")
		if err != nil {
			return nil, fmt.Errorf("%w (put a project file in %s/)", err, queuesDir)
		}
		path = latest
		fmt.Fprintf(os.Stderr, "[*] Using config: %s\n", path)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.BuildVersion = version
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func newResolveCmd() *cobra.Command {
	var (
		cfgPath string
		output  string
		cssPath string
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a project and write its scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range []string{queuesDir, outputDir} {
				os.MkdirAll(d, 0755)
			}

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			logger := newLogger()
			if cfg.LogLevel != "" && logLevel == "" {
				logger.SetLevel(hclog.LevelFromString(cfg.LogLevel))
			}

			var r renderer.Renderer
			if cssPath != "" {
				var w io.Writer = cmd.OutOrStdout()
				if cssPath != "-" {
					f, err := os.Create(cssPath)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				r = renderer.NewTextRenderer(w)
			}

			if output == "" && cfg.Output == "" {
				output = director.GenerateScenarioPath(outputDir)
			}

			ctx, cancel := signalContext()
			defer cancel()

			project := engine.NewProject(cfg, nil, r, logger)
			path, err := project.Write(ctx, output)
			if err != nil {
				return err
			}

			stats := project.Stats()
			fmt.Fprintf(os.Stderr, "[*] Queues: %d (skipped %d) | Elements: %d | %v\n",
				stats.Queues, stats.Skipped, stats.Elements, stats.Elapsed.Round(time.Microsecond))
			fmt.Fprintf(os.Stderr, "[+++] Done! Scenario: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Project file (default: newest file in queues/)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Scenario path (default: output/scenario_<timestamp>.yaml)")
	cmd.Flags().StringVar(&cssPath, "css", "", "Also write CSS keyframes to this file (- for stdout)")
	return cmd
}

func newPreviewCmd() *cobra.Command {
	var (
		cfgPath      string
		scenarioPath string
		at           float64
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Sample every element's style at a point in time",
		Long: "Sample every element's style at a point in time. Reads a resolved scenario\n" +
			"(--scenario, or the newest one in output/) unless --config asks for a fresh resolve.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			scenario, err := loadScenario(ctx, cfgPath, scenarioPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, q := range scenario.Queues {
				fmt.Fprintf(out, "%s (%s) @ %gs\n", q.Name, q.Curve, at)
				for _, e := range q.Entries {
					style := renderer.Sample(effects.Frame{
						Initial:    e.Initial,
						Active:     e.Active,
						Transition: e.Transition,
					}, at)
					fmt.Fprintf(out, "  #%d %s: %s\n", e.Index, e.Child, formatStyle(style))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Project file to resolve instead of reading a scenario")
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Scenario file (default: newest file in output/)")
	cmd.Flags().Float64Var(&at, "at", 0, "Time in seconds")
	return cmd
}

// loadScenario reads scenarioPath, or resolves cfgPath when set. With neither
// it takes the newest scenario under output/ and falls back to resolving the
// newest project file.
func loadScenario(ctx context.Context, cfgPath, scenarioPath string) (*director.Scenario, error) {
	if scenarioPath == "" && cfgPath == "" {
		if latest, err := director.FindLatestScenario(outputDir); err == nil {
			scenarioPath = latest
			fmt.Fprintf(os.Stderr, "[*] Using scenario: %s\n", latest)
		}
	}
	if scenarioPath != "" {
		return director.ReadScenario(scenarioPath)
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	return engine.NewProject(cfg, nil, nil, newLogger()).Run(ctx)
}

func newGridCmd() *cobra.Command {
	var (
		pieces        int
		x, y          float64
		width, height float64
		imagePath     string
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Show which tiles a pointer event triggers",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := grid.NewLayout(pieces)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Grid: %d pieces, %dx%d\n", l.Pieces, l.Columns, l.Rows)

			index, ok := l.CellAt(x, y, width, height)
			if !ok {
				fmt.Fprintln(out, "No tile under the pointer")
				return nil
			}
			px, py := l.BackgroundPosition(index)
			fmt.Fprintf(out, "Tile %d (background-position %g%% %g%%)\n", index, px, py)
			fmt.Fprintf(out, "Triggers: %v\n", l.Neighborhood(index))

			if imagePath != "" {
				src, err := source.NewImageSource(imagePath)
				if err != nil {
					return err
				}
				defer src.Close()
				bounds, err := src.Bounds(0)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Pixels: %v of %v\n", l.Tile(index, bounds), bounds)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&pieces, "pieces", grid.DefaultPieces, "Number of tiles")
	cmd.Flags().Float64Var(&x, "x", 0, "Pointer x")
	cmd.Flags().Float64Var(&y, "y", 0, "Pointer y")
	cmd.Flags().Float64Var(&width, "width", 1200, "Surface width")
	cmd.Flags().Float64Var(&height, "height", 800, "Surface height")
	cmd.Flags().StringVar(&imagePath, "image", "", "Image to report tile pixels for")
	return cmd
}

func newCycleCmd() *cobra.Command {
	var (
		images   string
		enter    []string
		exit     []string
		duration float64
		pieces   int
		kind     string
		seconds  int
		stopAt   time.Duration
		reverse  bool
	)
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Cycle through a directory of images in real time",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source.NewImageSource(images)
			if err != nil {
				return err
			}
			defer src.Close()

			k, err := curve.ParseKind(kind)
			if err != nil {
				return err
			}

			logger := newLogger()
			names := source.Names(src)

			var (
				outMu sync.Mutex
				q     *imagequeue.Queue
			)
			out := cmd.OutOrStdout()
			printf := func(format string, a ...any) {
				outMu.Lock()
				defer outMu.Unlock()
				fmt.Fprintf(out, format, a...)
			}

			ctrl := controller.New(controller.DefaultRecall)
			defer ctrl.Close()
			ctrl.OnChange = func(st controller.State) {
				printf("[*] Control: stopped=%v reverse=%v\n", st.Stopped, st.Reverse)
			}

			show := func(index int, modes director.Modes) {
				// The first image enters while the queue is still being built.
				if q == nil {
					printf("[t=0s] %s %v\n", names[index], []string(modes))
					return
				}
				im, ok := q.Current()
				if !ok {
					return
				}
				els, err := im.Elements()
				if err != nil {
					logger.Warn("image not rendered", "image", im.URL, "error", err)
					return
				}
				last := 0.0
				if len(els) > 0 {
					last = els[len(els)-1].Delay
				}
				tick, _, _ := q.State()
				printf("[t=%ds] %s %v: %d tiles, last delay %.3fs\n",
					tick, im.URL, []string(modes), len(els), last)
			}

			q = imagequeue.NewQueue(imagequeue.QueueOptions{
				Images:     names,
				Enter:      enter,
				Exit:       exit,
				Duration:   duration,
				Pieces:     pieces,
				Curve:      k,
				Dynamic:    true,
				Controller: ctrl,
				OnChange:   show,
			}, nil, logger)
			if len(names) == 0 {
				printf("No images\n")
			}

			if stopAt > 0 {
				t := time.AfterFunc(stopAt, func() { ctrl.Set(true, reverse) })
				defer t.Stop()
			}

			ctx, cancel := signalContext()
			defer cancel()
			ctx, cancelRun := context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
			defer cancelRun()

			// Run only returns once ctx is done.
			_ = q.Run(ctx)

			// Let a notification that is still printing finish.
			outMu.Lock()
			defer outMu.Unlock()
			return nil
		},
	}
	cmd.Flags().StringVar(&images, "images", "input", "Image directory")
	cmd.Flags().StringSliceVar(&enter, "enter", []string{"fadeIn"}, "Enter presets")
	cmd.Flags().StringSliceVar(&exit, "exit", []string{"fadeOut"}, "Exit presets")
	cmd.Flags().Float64Var(&duration, "duration", imagequeue.DefaultQueueDuration, "Cycle half-length (seconds)")
	cmd.Flags().IntVar(&pieces, "pieces", imagequeue.DefaultQueuePieces, "Tiles per image")
	cmd.Flags().StringVar(&kind, "curve", string(imagequeue.DefaultCurve), "Delay curve")
	cmd.Flags().IntVar(&seconds, "seconds", 10, "How long to run")
	cmd.Flags().DurationVar(&stopAt, "stop-at", 0, "Stop the tiles after this long (0: never)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "With --stop-at: reset instead of holding the reversed frame")
	return cmd
}

func formatStyle(s preset.Style) string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := s[k]
		if f, ok := v.(float64); ok {
			parts = append(parts, fmt.Sprintf("%s=%.3f", k, f))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, " ")
}
