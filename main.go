package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/attiquers/videoSubtitleGenerator/internal/config"
	"github.com/attiquers/videoSubtitleGenerator/internal/preset"
	"github.com/attiquers/videoSubtitleGenerator/pkg/subtitler"
)

var (
	rootCmd = &cobra.Command{
		Use:   "video-subtitler",
		Short: "Word-synchronized subtitle rendering for videos",
		Long: `video-subtitler burns word-synchronized, styleable subtitles into videos.

The full pipeline extracts audio, transcribes it with whisper.cpp, and renders
per-word highlighted subtitles over every frame. The transcript can be saved,
edited as SRT, and re-rendered without transcribing again.

Examples:
  # Transcribe and render in one go
  video-subtitler generate -i input.mp4 -o output.mp4 -m models/ggml-base.en.bin

  # Render from a saved (possibly edited) transcript
  video-subtitler render -i input.mp4 -o output.mp4 --transcript words.json

  # Check a style on a single frame
  video-subtitler preview -i input.mp4 -o frame.png --transcript words.json --time 12.5`,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Transcribe a video and render subtitles onto it",
		Long: fmt.Sprintf(`Extract audio, transcribe it with whisper.cpp, and render subtitles.

Supported style presets:
%s

Example:
  video-subtitler generate -i input.mp4 -o output.mp4 -m models/ggml-base.en.bin --preset karaoke`,
			formatSupportedPresets()),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := resolveStyle(cmd)
			if err != nil {
				return err
			}

			opts := &subtitler.GenerateOptions{Style: style}
			opts.InputPath, _ = cmd.Flags().GetString("input")
			opts.OutputPath, _ = cmd.Flags().GetString("output")
			opts.WhisperBin, _ = cmd.Flags().GetString("whisper-bin")
			opts.ModelPath, _ = cmd.Flags().GetString("model")
			opts.TranscriptOut, _ = cmd.Flags().GetString("save-transcript")
			opts.SRTOut, _ = cmd.Flags().GetString("save-srt")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")
			opts.Progress = renderProgress()

			if opts.InputPath == "" || opts.OutputPath == "" {
				return fmt.Errorf("input path and output path are required")
			}

			return subtitler.Generate(cmd.Context(), opts)
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render subtitles from a saved transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := resolveStyle(cmd)
			if err != nil {
				return err
			}

			opts := &subtitler.RenderOptions{Style: style}
			opts.InputPath, _ = cmd.Flags().GetString("input")
			opts.OutputPath, _ = cmd.Flags().GetString("output")
			opts.TranscriptPath, _ = cmd.Flags().GetString("transcript")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")
			opts.Progress = renderProgress()

			return subtitler.Render(opts)
		},
	}

	previewCmd = &cobra.Command{
		Use:   "preview",
		Short: "Render one subtitled frame to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := resolveStyle(cmd)
			if err != nil {
				return err
			}

			opts := &subtitler.PreviewOptions{Style: style}
			opts.InputPath, _ = cmd.Flags().GetString("input")
			opts.OutputPath, _ = cmd.Flags().GetString("output")
			opts.TranscriptPath, _ = cmd.Flags().GetString("transcript")
			opts.Time, _ = cmd.Flags().GetFloat64("time")
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")

			return subtitler.Preview(opts)
		},
	}

	exportSRTCmd = &cobra.Command{
		Use:   "export-srt",
		Short: "Convert a saved transcript to editable SRT captions",
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, _ := cmd.Flags().GetString("transcript")
			out, _ := cmd.Flags().GetString("output")
			return subtitler.ExportSRT(transcript, out)
		},
	}

	importSRTCmd = &cobra.Command{
		Use:   "import-srt",
		Short: "Map edited SRT text back onto original word timings",
		Long: `Re-associate edited caption text with the original transcript.

Each edited word inherits the timing of the word at the same position in the
original segment, so edits never shift synchronization.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srtPath, _ := cmd.Flags().GetString("srt")
			original, _ := cmd.Flags().GetString("transcript")
			out, _ := cmd.Flags().GetString("output")
			return subtitler.ImportSRT(srtPath, original, out)
		},
	}
)

// resolveStyle builds the effective style: preset, then style file, then
// individual flag overrides.
func resolveStyle(cmd *cobra.Command) (config.Style, error) {
	presetName, _ := cmd.Flags().GetString("preset")
	p, err := preset.Get(presetName)
	if err != nil {
		return config.Style{}, err
	}
	style := p.GetStyle()

	if styleFile, _ := cmd.Flags().GetString("style"); styleFile != "" {
		if style, err = config.Load(styleFile, style); err != nil {
			return config.Style{}, err
		}
	}

	if cmd.Flags().Changed("font") {
		style.Font, _ = cmd.Flags().GetString("font")
	}
	if cmd.Flags().Changed("font-size") {
		style.FontSize, _ = cmd.Flags().GetInt("font-size")
	}
	if cmd.Flags().Changed("word-case") {
		wc, _ := cmd.Flags().GetString("word-case")
		style.WordCase = config.CaseMode(wc)
	}
	if cmd.Flags().Changed("y-position") {
		style.YPositionPercent, _ = cmd.Flags().GetInt("y-position")
	}
	if cmd.Flags().Changed("x-offset") {
		style.XOffset, _ = cmd.Flags().GetInt("x-offset")
	}
	if cmd.Flags().Changed("area-width") {
		style.AreaWidthPercent, _ = cmd.Flags().GetInt("area-width")
	}
	return style, nil
}

// renderProgress returns a progress sink backed by a terminal progress bar.
func renderProgress() func(done, total float64) {
	bar := progressbar.NewOptions(1000,
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
	return func(done, total float64) {
		if total <= 0 {
			return
		}
		_ = bar.Set(int(done / total * 1000))
	}
}

func formatSupportedPresets() string {
	var sb strings.Builder
	for _, name := range preset.GetSupportedPresets() {
		sb.WriteString(fmt.Sprintf("- %s\n", name))
	}
	return sb.String()
}

func addStyleFlags(cmd *cobra.Command) {
	cmd.Flags().String("preset", "default",
		fmt.Sprintf("Style preset (%s)", strings.Join(preset.GetSupportedPresets(), ", ")))
	cmd.Flags().String("style", "", "TOML style file applied over the preset")
	cmd.Flags().String("font", "", "Font name (e.g. 'Arial')")
	cmd.Flags().Int("font-size", 48, "Font size in pixels")
	cmd.Flags().String("word-case", "as-is", "Word case transform (as-is, upper, lower, title)")
	cmd.Flags().Int("y-position", 80, "Vertical position as percent of frame height from bottom")
	cmd.Flags().Int("x-offset", 0, "Horizontal offset in pixels from center")
	cmd.Flags().Int("area-width", 80, "Subtitle area width as percent of frame width")
}

func init() {
	// Generate command flags
	generateCmd.Flags().StringP("input", "i", "", "Input video file")
	generateCmd.Flags().StringP("output", "o", "", "Output video file")
	generateCmd.Flags().StringP("model", "m", "", "whisper.cpp model file")
	generateCmd.Flags().String("whisper-bin", "whisper-cli", "whisper.cpp binary")
	generateCmd.Flags().String("save-transcript", "", "Save the transcript JSON to this path")
	generateCmd.Flags().String("save-srt", "", "Save SRT captions to this path")
	generateCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	addStyleFlags(generateCmd)

	generateCmd.MarkFlagRequired("input")
	generateCmd.MarkFlagRequired("output")
	generateCmd.MarkFlagRequired("model")

	// Render command flags
	renderCmd.Flags().StringP("input", "i", "", "Input video file")
	renderCmd.Flags().StringP("output", "o", "", "Output video file")
	renderCmd.Flags().StringP("transcript", "t", "", "Transcript JSON file")
	renderCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	addStyleFlags(renderCmd)

	renderCmd.MarkFlagRequired("input")
	renderCmd.MarkFlagRequired("output")
	renderCmd.MarkFlagRequired("transcript")

	// Preview command flags
	previewCmd.Flags().StringP("input", "i", "", "Input video file")
	previewCmd.Flags().StringP("output", "o", "", "Output PNG file")
	previewCmd.Flags().StringP("transcript", "t", "", "Transcript JSON file")
	previewCmd.Flags().Float64("time", 0, "Frame time in seconds")
	previewCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	addStyleFlags(previewCmd)

	previewCmd.MarkFlagRequired("input")
	previewCmd.MarkFlagRequired("output")
	previewCmd.MarkFlagRequired("transcript")

	// SRT command flags
	exportSRTCmd.Flags().StringP("transcript", "t", "", "Transcript JSON file")
	exportSRTCmd.Flags().StringP("output", "o", "", "Output SRT file")
	exportSRTCmd.MarkFlagRequired("transcript")
	exportSRTCmd.MarkFlagRequired("output")

	importSRTCmd.Flags().String("srt", "", "Edited SRT file")
	importSRTCmd.Flags().StringP("transcript", "t", "", "Original transcript JSON file")
	importSRTCmd.Flags().StringP("output", "o", "", "Output transcript JSON file")
	importSRTCmd.MarkFlagRequired("srt")
	importSRTCmd.MarkFlagRequired("transcript")
	importSRTCmd.MarkFlagRequired("output")

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(exportSRTCmd)
	rootCmd.AddCommand(importSRTCmd)
}

func main() {
	cobra.OnInitialize(func() {
		if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
