package probe

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneral_Attributes(t *testing.T) {
	g := general{
		path:        "/videos/movie1.mp4",
		fileName:    "movie1",
		extension:   "mp4",
		size:        "1572864",
		duration:    "83.5",
		videoCodecs: []string{"h264"},
		audioCodecs: []string{"aac"},
	}

	attrs, err := g.attributes()
	require.NoError(t, err)
	assert.Equal(t, &Attributes{
		FileName:      "movie1",
		FileExtension: "mp4",
		FileSize:      "1572864",
		OtherFileSize: "1.5 MiB",
		Duration:      "83500",
		OtherDuration: "1m24s",
		VideoCodecs:   []string{"h264"},
		AudioCodecs:   []string{"aac"},
	}, attrs)
}

func TestGeneral_Attributes_NoAudio(t *testing.T) {
	g := general{
		path:        "/videos/silent.mkv",
		fileName:    "silent",
		extension:   "mkv",
		size:        "10",
		duration:    "1.000000",
		videoCodecs: []string{"vp9"},
	}

	attrs, err := g.attributes()
	require.NoError(t, err)
	assert.Empty(t, attrs.AudioCodecs)
	assert.Equal(t, "1000", attrs.Duration)
}

func TestGeneral_Attributes_Failures(t *testing.T) {
	tests := []struct {
		name string
		g    general
		want error
	}{
		{"no general track", general{path: "/v/a.mp4"}, ErrNoGeneralTrack},
		{"missing size", general{path: "/v/a.mp4", duration: "1.0"}, ErrMissingField},
		{"malformed size", general{path: "/v/a.mp4", size: "N/A", duration: "1.0"}, ErrMissingField},
		{"missing duration", general{path: "/v/a.mp4", size: "100"}, ErrMissingField},
		{"negative duration", general{path: "/v/a.mp4", size: "100", duration: "-3"}, ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := tt.g.attributes()
			assert.Nil(t, attrs)
			assert.ErrorIs(t, err, tt.want)

			var probeErr *Error
			require.True(t, errors.As(err, &probeErr), "expected *probe.Error, got %T", err)
			assert.Equal(t, "/v/a.mp4", probeErr.Path)
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Path: "/v/a.mp4", Err: ErrNoGeneralTrack}
	assert.Equal(t, "probe /v/a.mp4: no general track", err.Error())
}

func TestFFProbe_MissingBinary(t *testing.T) {
	p := NewFFProbe(filepath.Join(t.TempDir(), "no-such-ffprobe"))

	_, err := p.Probe(context.Background(), "/videos/movie1.mp4")

	var probeErr *Error
	require.True(t, errors.As(err, &probeErr), "expected *probe.Error, got %T", err)
	assert.Equal(t, "/videos/movie1.mp4", probeErr.Path)
}

func TestFFProbe_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFFProbe("").Probe(ctx, "/videos/movie1.mp4")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFFProbe_NotAVideo(t *testing.T) {
	bin, err := exec.LookPath("ffprobe")
	if err != nil {
		t.Skip("ffprobe not installed")
	}

	path := filepath.Join(t.TempDir(), "fake.mp4")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a container"), 0644))

	_, err = NewFFProbe(bin).Probe(context.Background(), path)

	var probeErr *Error
	assert.True(t, errors.As(err, &probeErr), "expected *probe.Error, got %v", err)
}
