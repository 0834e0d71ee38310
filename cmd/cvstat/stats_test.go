package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func TestStats(t *testing.T) {
	r := &recording{channels: 2, rate: 1000, data: []int{
		0, -100,
		7680, 100,
		7680, 300,
		0, 100,
		7680, -400,
	}}
	if r.frames() != 5 {
		t.Fatalf("frames: %d", r.frames())
	}
	s := r.stats(0, 3840)
	if s.pulses != 2 || s.min != 0 || s.max != 7680 || s.mean != 4608 {
		t.Fatalf("ch0: %+v", s)
	}
	s = r.stats(1, 3840)
	if s.pulses != 0 || s.min != -400 || s.max != 300 || s.mean != 0 {
		t.Fatalf("ch1: %+v", s)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	enc := wav.NewEncoder(f, 8000, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 8000},
		Data:           []int{0, 400, 30720, -400},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rec, err := load(path, 4)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.channels != 2 || rec.rate != 8000 || rec.frames() != 2 {
		t.Fatalf("rec: %+v", rec)
	}
	if rec.data[2] != 7680 || rec.data[3] != -100 {
		t.Fatalf("data: %v", rec.data)
	}

	if err := os.WriteFile(path, []byte("not a wav"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := load(path, 4); err == nil {
		t.Fatal("expected error for invalid file")
	}
}
