// Package transcribe produces word-timed transcripts by driving a local
// whisper.cpp binary.
package transcribe

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/attiquers/videoSubtitleGenerator/pkg/types"
)

// Adapter invokes the whisper.cpp CLI with word timestamps enabled and
// parses its JSON output.
type Adapter struct {
	bin   string
	model string
}

// New returns an adapter for the given whisper.cpp binary and model file.
func New(binPath, modelPath string) *Adapter {
	if binPath == "" {
		binPath = "whisper-cli"
	}
	return &Adapter{bin: binPath, model: modelPath}
}

// Transcribe runs speech-to-text over a mono 16kHz WAV file. workDir holds
// the intermediate JSON output.
func (a *Adapter) Transcribe(ctx context.Context, wavPath, workDir string) (types.Transcript, error) {
	outPrefix := filepath.Join(workDir, "whisper")
	args := []string{
		"-m", a.model,
		"-f", wavPath,
		"-oj",
		"-of", outPrefix,
		"-owts",
	}
	cmd := exec.CommandContext(ctx, a.bin, args...)
	if b, err := cmd.CombinedOutput(); err != nil {
		return types.Transcript{}, errors.Wrapf(err, "whisper.cpp failed: %s", strings.TrimSpace(string(b)))
	}

	jb, err := os.ReadFile(outPrefix + ".json")
	if err != nil {
		return types.Transcript{}, errors.Wrap(err, "failed to read whisper output")
	}

	var tr types.Transcript
	if err := json.Unmarshal(jb, &tr); err != nil {
		return types.Transcript{}, errors.Wrap(err, "failed to parse whisper output")
	}
	for i := range tr.Segments {
		for j := range tr.Segments[i].Words {
			tr.Segments[i].Words[j].Text = strings.TrimSpace(tr.Segments[i].Words[j].Text)
		}
	}
	return tr, nil
}

// SaveTranscript writes a transcript as indented JSON, the interchange
// format between the generate and render commands.
func SaveTranscript(path string, tr types.Transcript) error {
	data, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "failed to write transcript")
}

// LoadTranscript reads a transcript saved by SaveTranscript.
func LoadTranscript(path string) (types.Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Transcript{}, errors.Wrap(err, "failed to read transcript")
	}
	var tr types.Transcript
	if err := json.Unmarshal(data, &tr); err != nil {
		return types.Transcript{}, errors.Wrap(err, "failed to parse transcript")
	}
	return tr, nil
}
