package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/datatug/vitug/pkg/cursor"
	"github.com/datatug/vitug/pkg/files/osfile"
	"github.com/datatug/vitug/pkg/fsutils"
	"github.com/datatug/vitug/pkg/logging"
	"github.com/datatug/vitug/pkg/profiling"
	"github.com/datatug/vitug/pkg/vitug"
	"github.com/rivo/tview"
)

var (
	startDir   = flag.String("dir", "", "start `directory` (default: working directory)")
	editor     = flag.String("editor", "", "editor `program` (default: $EDITOR or vim)")
	pager      = flag.String("pager", "", "pager `program` (default: $PAGER or less)")
	shell      = flag.String("shell", "", "shell `program` (default: $SHELL or bash)")
	viewer     = flag.String("viewer", "", "viewer `program` (default: bat)")
	preview    = flag.Bool("preview", false, "show a preview of the selected file")
	logFile    = flag.String("log", "", "write logs to `file`")
	logLevel   = flag.String("log-level", "info", "log `level`: debug, info, warn or error")
	logFormat  = flag.String("log-format", "console", "log `format`: console or json")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit

func main() {
	flag.Parse()
	osExit(execute())
}

func execute() (code int) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			code = 1
		}
	}()

	err := logging.Init(logging.Config{
		Level:      *logLevel,
		Format:     *logFormat,
		OutputPath: *logFile,
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		return 1
	}
	defer func() {
		_ = logging.Sync()
	}()

	if *pprofAddr != "" {
		go func(addr string) {
			// The UI owns the terminal, so server errors only go to the log.
			if err := httpListenAndServe(addr, nil); err != nil {
				logging.Error("pprof server error", logging.String("addr", addr), logging.Err(err))
			}
		}(*pprofAddr)
	}

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}
	if *memProfile != "" {
		stopMemProfiling := profiling.DoMemProfiling(*memProfile)
		defer stopMemProfiling()
	}

	app, err := newApp(settingsFromFlags(), *startDir)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if err = run(app); err != nil {
		return 1
	}
	return 0
}

func settingsFromFlags() vitug.Settings {
	s := vitug.DefaultSettings().WithEnv()
	for _, o := range []struct {
		value string
		field *string
	}{
		{*editor, &s.Editor},
		{*pager, &s.Pager},
		{*shell, &s.Shell},
		{*viewer, &s.Viewer},
	} {
		if o.value != "" {
			*o.field = o.value
		}
	}
	s.Preview = *preview
	return s
}

type application interface{ Run() error }

var newApp = func(settings vitug.Settings, dir string) (application, error) {
	wd := cursor.OSWorkDir{}
	if dir == "" {
		var err error
		if dir, err = wd.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	dir = fsutils.ExpandHome(dir)
	exists, err := fsutils.DirExists(dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s is not an existing directory: %w", dir, os.ErrNotExist)
	}
	app := tview.NewApplication()
	files := cursor.NewFileCursor(osfile.NewStore("/"), wd)
	d := vitug.NewDispatcher(files, cursor.NewTarCursor(), settings, vitug.NewExecLauncher(wd, app))
	if err = d.Start(dir); err != nil {
		return nil, err
	}
	logging.Info("started", logging.String("dir", dir))
	return vitug.NewUI(app, d), nil
}

var run = func(app application) error {
	err := app.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	return err
}
