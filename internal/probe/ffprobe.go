package probe

import (
	"context"
	"fmt"

	"github.com/floostack/transcoder"
	"github.com/floostack/transcoder/ffmpeg"

	"github.com/vmunix/vidcat/internal/scan"
)

// FFProbe probes files by running ffprobe.
type FFProbe struct {
	binPath string
}

// NewFFProbe creates a prober using the ffprobe binary at binPath.
// A bare name is resolved through PATH.
func NewFFProbe(binPath string) *FFProbe {
	if binPath == "" {
		binPath = "ffprobe"
	}
	return &FFProbe{binPath: binPath}
}

// Probe runs ffprobe against path.
//
// ctx is checked only before ffprobe starts: the transcoder library execs
// ffprobe without a context, so a probe already running is not interrupted
// by cancellation and a slow file can hold up shutdown until it finishes.
func (p *FFProbe) Probe(ctx context.Context, path string) (*Attributes, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := ffmpeg.Config{FfprobeBinPath: p.binPath}
	metadata, err := ffmpeg.New(&cfg).Input(path).GetMetadata()
	if err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("ffprobe: %w", err)}
	}
	if metadata == nil {
		return nil, &Error{Path: path, Err: ErrNoGeneralTrack}
	}

	return readGeneral(path, metadata).attributes()
}

func readGeneral(path string, metadata transcoder.Metadata) general {
	g := general{
		path:      path,
		fileName:  scan.FileName(path),
		extension: scan.Extension(path),
	}

	if format := metadata.GetFormat(); format != nil {
		g.size = format.GetSize()
		g.duration = format.GetDuration()
	}

	for _, stream := range metadata.GetStreams() {
		if stream == nil || stream.GetCodecName() == "" {
			continue
		}
		switch stream.GetCodecType() {
		case "video":
			g.videoCodecs = append(g.videoCodecs, stream.GetCodecName())
		case "audio":
			g.audioCodecs = append(g.audioCodecs, stream.GetCodecName())
		}
	}
	return g
}
