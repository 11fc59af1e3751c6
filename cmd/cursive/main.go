// Command cursive is the engine's command line companion: it
// synthesizes handwriting images from text, inspects the stored
// training state and resolves mood presets, all without a GUI.
package main

import "os"
import "fmt"
import "context"
import "image/png"
import "encoding/json"

import "github.com/spf13/cobra"

import "github.com/bilalghalib/Cursive-sub000"
import "github.com/bilalghalib/Cursive-sub000/canvas"
import "github.com/bilalghalib/Cursive-sub000/config"
import "github.com/bilalghalib/Cursive-sub000/connect"
import "github.com/bilalghalib/Cursive-sub000/store"
import "github.com/bilalghalib/Cursive-sub000/style"
import "github.com/bilalghalib/Cursive-sub000/train"

var (
	synthOut string
	synthMood string
	synthSeed int64
	synthHeight float64
	synthMaxWidth float64

	dbPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "cursive",
		Short: "handwriting synthesis engine",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "training database path")
	rootCmd.AddCommand(newSynthCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newMoodCmd())
	return rootCmd
}

func newSynthCmd() *cobra.Command {
	synthCmd := &cobra.Command{
		Use: "synth [text]",
		Short: "synthesize handwriting for a text and export it as PNG",
		Args: cobra.ExactArgs(1),
		RunE: runSynthCmd,
	}
	synthCmd.Flags().StringVar(&synthOut, "out", "handwriting.png", "output PNG path")
	synthCmd.Flags().StringVar(&synthMood, "mood", "", "mood preset (excited, calm, formal, casual, urgent, thoughtful)")
	synthCmd.Flags().Int64Var(&synthSeed, "seed", 0, "fixed random seed (0 means unseeded)")
	synthCmd.Flags().Float64Var(&synthHeight, "height", 32, "glyph height in canvas units")
	synthCmd.Flags().Float64Var(&synthMaxWidth, "max-width", 600, "max line width before wrapping (0 disables)")
	return synthCmd
}

func runSynthCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	synth := cursive.NewSynthesizer()
	synth.SetGlyphHeight(synthHeight)
	synth.SetMaxLineWidth(synthMaxWidth)
	if cfg.Synthesis.GlyphHeight != nil && !cmd.Flags().Changed("height") {
		synth.SetGlyphHeight(*cfg.Synthesis.GlyphHeight)
	}
	if cfg.Synthesis.LineHeight != nil { synth.SetLineHeight(*cfg.Synthesis.LineHeight) }
	if cfg.Synthesis.ConnectMaxDistance != nil || cfg.Synthesis.ConnectMaxAngle != nil {
		maxDistance, maxAngle := connect.DefaultMaxDistance, connect.DefaultMaxAngleDelta
		if cfg.Synthesis.ConnectMaxDistance != nil { maxDistance = *cfg.Synthesis.ConnectMaxDistance }
		if cfg.Synthesis.ConnectMaxAngle != nil { maxAngle = *cfg.Synthesis.ConnectMaxAngle }
		synth.SetConnectThresholds(maxDistance, maxAngle)
	}
	if synthSeed != 0 {
		synth.SetSeed(synthSeed)
	} else if cfg.Synthesis.Seed != nil {
		synth.SetSeed(*cfg.Synthesis.Seed)
	}
	if synthMood != "" {
		preset, found := style.Preset(synthMood)
		if !found { return fmt.Errorf("unknown mood %q", synthMood) }
		synth.SetMood(preset)
	}

	if samples, profile, connections, err := loadTrainingState(cmd.Context()); err == nil {
		synth.SetSamples(samples)
		synth.SetProfile(profile)
		synth.SetConnections(connections)
	} else {
		fmt.Fprintf(os.Stderr, "no training state, writing with fallback glyphs: %v\n", err)
	}

	surface := canvas.NewSurface()
	for _, stroke := range synth.Synthesize(args[0]) {
		surface.AddStroke(stroke)
	}

	img := surface.RenderScaled(2, 16)
	if img == nil {
		return fmt.Errorf("nothing to render: %q produced no ink", args[0])
	}
	out, err := os.Create(synthOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", synthOut, err)
	}
	defer func() { _ = out.Close() }()
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	fmt.Printf("wrote %s\n", synthOut)
	return nil
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use: "profile",
		Short: "derive and print the style profile from stored samples",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open db: %w", err)
			}
			defer func() { _ = st.Close() }()

			samples, err := st.LoadSamples(cmd.Context())
			if err != nil { return err }
			profile := style.DeriveProfile(samples)

			data, err := json.MarshalIndent(&profile, "", "  ")
			if err != nil { return err }
			fmt.Println(string(data))
			fmt.Println("training progress:", train.Progress(samples))
			return nil
		},
	}
}

func newMoodCmd() *cobra.Command {
	return &cobra.Command{
		Use: "mood [hint-or-text]",
		Short: "resolve the emotional style for a mood tag or response text",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			resolved := style.Resolve(args[0], args[0])
			data, err := json.MarshalIndent(&resolved, "", "  ")
			if err != nil { return err }
			fmt.Println(string(data))
			return nil
		},
	}
}

func loadTrainingState(ctx context.Context) (*train.SampleSet, style.Profile, *connect.Table, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, style.Profile{}, nil, fmt.Errorf("failed to open db: %w", err)
	}
	defer func() { _ = st.Close() }()

	samples, err := st.LoadSamples(ctx)
	if err != nil { return nil, style.Profile{}, nil, err }
	if samples.Count() == 0 {
		return nil, style.Profile{}, nil, fmt.Errorf("no samples in %s", dbPath)
	}
	profile, found, err := st.LoadProfile(ctx)
	if err != nil { return nil, style.Profile{}, nil, err }
	if !found { profile = style.DeriveProfile(samples) }
	connections, err := st.LoadConnections(ctx)
	if err != nil { return nil, style.Profile{}, nil, err }
	return samples, profile, connections, nil
}
