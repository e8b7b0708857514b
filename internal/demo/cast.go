package demo

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// clearScreen homes the cursor and clears the terminal before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// CastOptions tune the cast header.
type CastOptions struct {
	Title     string
	Timestamp time.Time
}

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// repaints the whole screen; annotations become markers.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	return WriteCast(w, frames, width, height, CastOptions{})
}

// WriteCast is GenerateASCIICast with header options.
func WriteCast(w io.Writer, frames []Frame, width, height int, opts CastOptions) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Title:   opts.Title,
		Env:     map[string]string{"TERM": "xterm-256color"},
	}
	if !opts.Timestamp.IsZero() {
		header.Timestamp = opts.Timestamp.Unix()
	}
	if err := enc.Encode(header); err != nil {
		return err
	}

	var at time.Duration
	for _, f := range frames {
		ts := at.Seconds()
		if f.Annotation != "" {
			if err := enc.Encode([]any{ts, "m", f.Annotation}); err != nil {
				return err
			}
		}
		out := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{ts, "o", out}); err != nil {
			return err
		}
		at += f.Delay
	}
	return bw.Flush()
}
