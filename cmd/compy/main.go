// compy loads a raw 64k memory image and runs the 6502 core against it,
// either to quiescence or under the interactive monitor.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"

	"compy/cpu"
	"compy/memory"
	"compy/monitor"
)

const banner = `#################
#     COMPY     #
#################
`

func main() {
	startFlag := &cli.IntFlag{
		Name:  "start",
		Usage: "override the reset vector with this starting PC",
		Value: -1,
	}

	app := &cli.App{
		Name:  "compy",
		Usage: "Run a program on the 6502 core",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run an image until the PC stops changing",
				ArgsUsage: "<image>",
				Flags:     []cli.Flag{startFlag},
				Action: func(ctx *cli.Context) error {
					m, c, err := load(ctx)
					if err != nil {
						return err
					}
					fmt.Print(banner)
					for {
						prev := c.PC
						c.Step(m)
						if prev == c.PC {
							break
						}
					}
					fmt.Printf("Result of computation is: %d\n", m.Read(0x0000))
					return nil
				},
			},
			{
				Name:      "monitor",
				Usage:     "run an image under the interactive monitor",
				ArgsUsage: "<image>",
				Flags:     []cli.Flag{startFlag},
				Action: func(ctx *cli.Context) error {
					m, c, err := load(ctx)
					if err != nil {
						return err
					}
					return monitor.Run(c, m)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load reads the image named by the command argument into a fresh memory
// map and returns a CPU initialized from the reset vector (or the
// --start override).
func load(ctx *cli.Context) (*memory.Map, *cpu.Chip, error) {
	name := ctx.Args().First()
	if name == "" {
		return nil, nil, fmt.Errorf("missing required image argument")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m := memory.NewMap()
	if _, err := m.LoadImage(f); err != nil {
		return nil, nil, fmt.Errorf("loading %s: %v", name, err)
	}

	pc := uint16(m.Read(cpu.RESET_VECTOR+1))<<8 | uint16(m.Read(cpu.RESET_VECTOR))
	if s := ctx.Int("start"); s >= 0 {
		pc = uint16(s)
	}
	return m, cpu.Init(pc), nil
}
