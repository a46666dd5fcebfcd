package vitug

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/datatug/vitug/pkg/cursor"
	"github.com/datatug/vitug/pkg/logging"
)

//go:generate mockgen -destination=mock_launcher.go -package=vitug . Launcher

var ErrNoProgram = errors.New("no program configured")

var execCommand = exec.Command
var osStat = os.Stat

// Launcher runs an external program in the foreground.
type Launcher interface {
	// Run starts prog inside target when it is a directory, or with target
	// as the last argument otherwise, and waits for it to exit.
	Run(prog, target string) error
}

// Suspender hands the terminal over while f runs. *tview.Application is one.
type Suspender interface {
	Suspend(f func()) bool
}

var _ Launcher = (*ExecLauncher)(nil)

type ExecLauncher struct {
	wd        cursor.WorkDir
	suspender Suspender
}

func NewExecLauncher(wd cursor.WorkDir, suspender Suspender) *ExecLauncher {
	return &ExecLauncher{wd: wd, suspender: suspender}
}

func (l *ExecLauncher) Run(prog, target string) (err error) {
	fields := strings.Fields(prog)
	if len(fields) == 0 {
		return ErrNoProgram
	}
	args := fields[1:]
	var dir string
	if info, statErr := osStat(target); statErr == nil && info.IsDir() {
		if err = l.wd.Chdir(target); err != nil {
			return fmt.Errorf("failed to change working directory to %s: %w", target, err)
		}
		dir = target
	} else {
		args = append(args, target)
	}

	cmd := execCommand(fields[0], args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logging.Debug("launching", logging.String("prog", prog), logging.String("target", target))
	run := func() {
		err = cmd.Run()
	}
	if l.suspender == nil || !l.suspender.Suspend(run) {
		run()
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", fields[0], err)
	}
	return nil
}
