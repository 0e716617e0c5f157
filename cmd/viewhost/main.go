// Command viewhost is a terminal reference host for the view engine:
// it drives a dispatcher.Dispatcher end-to-end over the external
// interface (create, register_input, send_message, handle_input,
// get_line) the way any real host would, rendering through
// charm.land/bubbletea/v2.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/xonecas/viewengine/internal/dispatcher"
	"github.com/xonecas/viewengine/internal/engineconfig"
	"github.com/xonecas/viewengine/internal/style"
	"github.com/xonecas/viewengine/internal/widthcache"
)

func main() {
	logger, closeLog := setupFileLogging()
	defer closeLog()

	flagLang := flag.String("lang", "", "Chroma language (default: derived from file extension)")
	flagTheme := flag.String("theme", "vulcan", "Chroma theme")
	flagConfig := flag.String("config", "", "path to a viewengine TOML config")
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: viewhost [-lang L] [-theme T] [-config path] <file>")
		os.Exit(1)
	}

	cfg, err := engineconfig.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewhost: %v\n", err)
		os.Exit(1)
	}
	theme := *flagTheme
	if cfg.UI.SyntaxTheme != "" {
		theme = cfg.UI.SyntaxThemeOrDefault()
	}
	lang := *flagLang
	if lang == "" {
		lang = style.LanguageForPath(path)
	}

	initial, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "viewhost: reading %s: %v\n", path, err)
		os.Exit(1)
	}

	// prog is filled in after tea.NewProgram, but the dispatcher's
	// callbacks need to close over it to deliver async RPC/invalidate/
	// timer notifications onto the program's own message loop.
	var prog *tea.Program

	timers := newTimerSet()

	cbs := dispatcher.Callbacks{
		RPC: func(method string, params any) {
			prog.Send(rpcMsg{method: method, params: params})
		},
		Invalidate: func(start, end int) {
			prog.Send(invalidateMsg{start: start, end: end})
		},
		Width: func(s string) widthcache.Size {
			return widthcache.ReferenceMeasure(s)
		},
	}

	d, _ := dispatcher.Create(logger, lang, theme, cfg.Buffer, cbs)
	d.SetText(string(initial))

	deliver := func(chars string) { d.SendMessage(insertMessage(chars)) }

	d.RegisterInput(dispatcher.InputCallbacks{
		Event: func(payload any, discard bool) {
			if discard {
				return
			}
			if chars, ok := payload.(string); ok {
				deliver(chars)
			}
		},
		Action: func(action string, params map[string]any) {},
		Timer: func(payload any, delayMs int) uint32 {
			return timers.schedule(payload, delayMs, func(p any, token uint32) {
				prog.Send(timerFiredMsg{payload: p, token: token})
			})
		},
		CancelTimer: func(token uint32) {
			timers.cancel(token)
		},
	})

	m := newModel(d, timers, deliver, path, lang, theme)
	prog = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := prog.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewhost: %v\n", err)
		os.Exit(1)
	}

	if fm, ok := finalModel.(model); ok && fm.dirty {
		if err := writeFile(path, d.Text()); err != nil {
			fmt.Fprintf(os.Stderr, "viewhost: saving %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

// setupFileLogging sends logs to a file instead of stdout/stderr,
// since the terminal is the TUI's own canvas while the program runs.
func setupFileLogging() (zerolog.Logger, func()) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logPath := filepath.Join(os.TempDir(), "viewhost.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	logger := zerolog.New(file).With().Timestamp().Logger()
	return logger, func() { file.Close() }
}
