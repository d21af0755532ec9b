package main

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// robotgo key names for the media keys
var robotgoKeyNames = map[Key]string{
	KeyPlay:       "audio_play",
	KeyNext:       "audio_next",
	KeyPrevious:   "audio_prev",
	KeyVolumeUp:   "audio_vol_up",
	KeyVolumeDown: "audio_vol_down",
}

// RobotgoPoster implements KeyPoster on top of robotgo
type RobotgoPoster struct{}

func newRobotgoPoster() KeyPoster {
	return &RobotgoPoster{}
}

func (p *RobotgoPoster) Post(key Key, event KeyEventType) error {
	name, ok := robotgoKeyNames[key]
	if !ok {
		return fmt.Errorf("robotgo: unsupported key %s", key)
	}
	return robotgo.KeyToggle(name, event.String())
}

func (p *RobotgoPoster) Close() error {
	return nil
}
