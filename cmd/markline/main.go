// markline is a terminal markdown editor that decorates heading and
// highlight ("-> ") lines as they are typed and previews the document as
// HTML.
//
//	markline [flags] [file]
//
// The file, or stdin when it is "-", seeds the editor. It is never written
// back; the final text is printed to stdout on exit unless --quiet is set.
// With --render the document is converted to HTML and printed without
// starting the editor.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/markline"
	"github.com/iw2rmb/markline/editor"
	"github.com/iw2rmb/markline/internal/config"
	"github.com/iw2rmb/markline/internal/logger"
	"github.com/iw2rmb/markline/preview"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "markline: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	logFile     string
	logLevel    string
	render      bool
	sanitize    bool
	lineNumbers bool
	readOnly    bool
	quiet       bool
	version     bool
	file        string
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("markline", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVarP(&opts.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/markline/config.yaml)")
	fs.StringVar(&opts.logFile, "log-file", "", "append logs to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVarP(&opts.render, "render", "r", false, "print the HTML preview and exit")
	fs.BoolVar(&opts.sanitize, "sanitize", false, "sanitize preview HTML")
	fs.BoolVarP(&opts.lineNumbers, "line-numbers", "n", false, "show line numbers")
	fs.BoolVar(&opts.readOnly, "read-only", false, "open the document read-only")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the document on exit")
	fs.BoolVarP(&opts.version, "version", "v", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: markline [flags] [file]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		opts.file = rest[0]
	default:
		return opts, fmt.Errorf("unexpected argument: %s", rest[1])
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, markline.Banner())
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	text, err := readInput(opts.file, stdin)
	if err != nil {
		return err
	}

	if opts.render {
		return renderHTML(stdout, text, cfg.Preview.Sanitize)
	}

	log, cleanup, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	path := opts.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	log.ConfigLoaded(path, cfg.HistoryLimit, cfg.Preview.Sanitize)

	output := termenv.NewOutput(os.Stdout)
	lipgloss.SetColorProfile(output.EnvColorProfile())
	lipgloss.SetHasDarkBackground(output.HasDarkBackground())

	session := uuid.NewString()
	a := newApp(editor.Config{
		Text:         text,
		ShowLineNums: cfg.ShowLineNumbers,
		Style:        styleFromConfig(cfg.Style),
		HistoryLimit: cfg.HistoryLimit,
		ReadOnly:     opts.readOnly,
		Divider:      cfg.Divider,
		Sanitize:     cfg.Preview.Sanitize,
		Clipboard:    systemClipboard{},
		Logger:       log,
	})

	log.SessionStarted(session, opts.file, a.editor.Doc().LineCount())
	start := time.Now()

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	log.SessionEnded(session, time.Since(start))
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	if !opts.quiet {
		if fa, ok := final.(app); ok {
			fmt.Fprintln(stdout, fa.editor.Buffer().Text())
		}
	}
	return nil
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.sanitize {
		cfg.Preview.Sanitize = true
	}
	if opts.lineNumbers {
		cfg.ShowLineNumbers = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ExpandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readInput(file string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	switch file {
	case "":
		return "", nil
	case "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(data), nil
}

func openLogger(cfg *config.Config) (*logger.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logger.Discard(), func() {}, nil
	}
	l, cleanup, err := logger.NewFileLogger(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return l, cleanup, nil
}

func renderHTML(w io.Writer, text string, sanitize bool) error {
	c := preview.NewCompositor(nil)
	if sanitize {
		c.Sanitizer = preview.NewSanitizer()
	}
	html, err := c.Render(text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, html)
	return err
}
