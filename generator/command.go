package generator

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Command runs an external program per request. The program inherits the
// standard streams unless Stdout/Stderr are set, and is waited on before
// Generate returns.
type Command struct {
	// Line is the program followed by its argument template.
	Line []string
	Dir  string
	Env  []string // appended to the current environment

	Stdout io.Writer
	Stderr io.Writer

	Log hclog.Logger
}

func NewCommand(line []string, dir string, log hclog.Logger) *Command {
	if len(line) == 0 {
		line = DefaultCommandLine
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Command{Line: line, Dir: dir, Log: log}
}

func (c *Command) Generate(req Request) error {
	args, err := Expand(c.Line, req.Vars())
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("empty generator command")
	}

	cmdline := strings.Join(args, " ")
	c.logger().Info("running generator", "flavor", req.Flavor, "command", cmdline)

	x := exec.Command(args[0], args[1:]...)
	x.Dir = c.Dir
	if len(c.Env) > 0 {
		x.Env = append(os.Environ(), c.Env...)
	}
	x.Stdin = os.Stdin
	x.Stdout = c.Stdout
	if x.Stdout == nil {
		x.Stdout = os.Stdout
	}
	x.Stderr = c.Stderr
	if x.Stderr == nil {
		x.Stderr = os.Stderr
	}

	if err := x.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", cmdline, err)
	}
	return nil
}

func (c *Command) logger() hclog.Logger {
	if c.Log == nil {
		return hclog.NewNullLogger()
	}
	return c.Log
}
