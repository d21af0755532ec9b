package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kidandcat/mediakey/internal/config"
)

func TestPressOrderAndDelay(t *testing.T) {
	p := &fakePoster{}
	delay := 20 * time.Millisecond

	if err := Press(context.Background(), p, KeyNext, delay); err != nil {
		t.Fatalf("Press() error = %v", err)
	}

	events := p.posted()
	if len(events) != 2 {
		t.Fatalf("posted %d events, want 2", len(events))
	}
	if events[0].event != KeyDown || events[1].event != KeyUp {
		t.Errorf("events = %v then %v, want down then up", events[0].event, events[1].event)
	}
	if gap := events[1].at.Sub(events[0].at); gap < delay {
		t.Errorf("gap between down and up = %v, want >= %v", gap, delay)
	}
}

func TestPressCancelledStillReleases(t *testing.T) {
	p := &fakePoster{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Press(ctx, p, KeyPlay, time.Hour)
	if err == nil {
		t.Error("Press() error = nil for cancelled context")
	}
	if time.Since(start) > time.Second {
		t.Error("Press() waited despite cancelled context")
	}

	events := p.posted()
	if len(events) != 2 || events[1].event != KeyUp {
		t.Errorf("events = %+v, want down and up", events)
	}
}

func TestPressDownFailureSkipsUp(t *testing.T) {
	p := &fakePoster{fail: true, failOn: KeyDown}

	if err := Press(context.Background(), p, KeyPlay, 0); err == nil {
		t.Fatal("Press() error = nil, want error")
	}
	if len(p.posted()) != 0 {
		t.Errorf("posted %d events after failed key down, want 0", len(p.posted()))
	}
}

func TestNewPosterRobotgo(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	p, err := newPoster(config.BackendRobotgo, logger)
	if err != nil {
		t.Fatalf("newPoster(robotgo) error = %v", err)
	}
	if _, ok := p.(*RobotgoPoster); !ok {
		t.Errorf("newPoster(robotgo) = %T, want *RobotgoPoster", p)
	}
}

func TestNewPosterUnknown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if _, err := newPoster("xdotool", logger); err == nil {
		t.Error("newPoster(xdotool) error = nil, want error")
	}
}

func TestRobotgoKeyNamesCoverAllKeys(t *testing.T) {
	for _, key := range []Key{KeyPlay, KeyNext, KeyPrevious, KeyVolumeUp, KeyVolumeDown} {
		if _, ok := robotgoKeyNames[key]; !ok {
			t.Errorf("robotgoKeyNames missing %s", key)
		}
	}
	if err := (&RobotgoPoster{}).Post(KeyUnknown, KeyDown); err == nil {
		t.Error("Post(KeyUnknown) error = nil, want error")
	}
}
