package music

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Player plays a local sound file
type Player interface {
	// Start begins playback and returns without waiting for it to finish
	Start(path string) error
}

// CommandPlayer implements Player by running the platform's command-line
// audio player
type CommandPlayer struct {
	command string
	args    []string
}

// NewCommandPlayer returns a player using afplay on macOS and paplay elsewhere
func NewCommandPlayer() *CommandPlayer {
	if runtime.GOOS == "darwin" {
		return &CommandPlayer{command: "afplay"}
	}
	return &CommandPlayer{command: "paplay"}
}

// NewCommandPlayerWith returns a player running command with args, followed
// by the sound file path
func NewCommandPlayerWith(command string, args ...string) *CommandPlayer {
	return &CommandPlayer{command: command, args: args}
}

// Start launches the player command without waiting for it. The command
// is reaped in the background and keeps playing if the caller exits.
func (p *CommandPlayer) Start(path string) error {
	if err := checkSoundFile(path); err != nil {
		return err
	}

	args := append(append([]string{}, p.args...), path)
	cmd := exec.Command(p.command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.command, err)
	}

	go func() { _ = cmd.Wait() }()
	return nil
}

func checkSoundFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("sound file not available: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("sound file %s is a directory", path)
	}
	return nil
}
