// Command dmgcore is a headless runner for the core: it loads a ROM, steps
// the emulator for a fixed number of frames, and optionally writes out a
// save file. It never opens a window, an audio device, or a keyboard
// binding — those belong to a host frontend, not this core.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/kestrel-emu/dmgcore/dmg"
)

func main() {
	app := cli.NewApp()
	app.Name = "dmgcore"
	app.Usage = "headless runner for the dmgcore Game Boy emulation core"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "path to a .gb ROM image to load",
		},
		cli.StringFlag{
			Name:  "bootrom",
			Usage: "path to a boot ROM image; if set, execution starts from it",
		},
		cli.IntFlag{
			Name:  "frames",
			Value: 60,
			Usage: "number of Render events to run before exiting",
		},
		cli.StringFlag{
			Name:  "save-in",
			Usage: "path to a save file to load before running",
		},
		cli.StringFlag{
			Name:  "save-out",
			Usage: "path to write a save file to after running",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("dmgcore exited with an error", "err", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		return fmt.Errorf("dmgcore: -rom is required")
	}

	useBootROM := c.String("bootrom") != ""
	emu := dmg.New(useBootROM)

	if useBootROM {
		bootROM, err := os.ReadFile(c.String("bootrom"))
		if err != nil {
			return fmt.Errorf("dmgcore: read boot ROM: %w", err)
		}
		emu.LoadBootROM(bootROM)
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("dmgcore: read ROM: %w", err)
	}
	if err := emu.LoadROM(rom); err != nil {
		return fmt.Errorf("dmgcore: load ROM: %w", err)
	}

	if savePath := c.String("save-in"); savePath != "" {
		data, err := os.ReadFile(savePath)
		if err != nil {
			return fmt.Errorf("dmgcore: read save file: %w", err)
		}
		if err := emu.Load(data); err != nil {
			return fmt.Errorf("dmgcore: load save file: %w", err)
		}
	}

	target := c.Int("frames")
	frames := 0
	for frames < target {
		switch emu.StepUntilEvent() {
		case dmg.Render:
			frames++
		case dmg.QueueSound:
			_ = emu.AudioBatch() // draining keeps the APU buffer from growing unbounded
		}
	}

	slog.Info("run complete", "frames", frames)

	if savePath := c.String("save-out"); savePath != "" {
		data, err := emu.Save()
		if err != nil {
			return fmt.Errorf("dmgcore: save: %w", err)
		}
		if err := os.WriteFile(savePath, data, 0o644); err != nil {
			return fmt.Errorf("dmgcore: write save file: %w", err)
		}
	}

	return nil
}
