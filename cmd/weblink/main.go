// Command weblink calls the Weblink service from the command line and prints
// the result as JSON or YAML.
//
// Password can be provided via:
//   - -pass flag (least secure, visible in process list)
//   - WEBLINK_PASSWORD environment variable or .env file (recommended)
//   - password key of the -config file
//   - stdin prompt (if none of the above is set)
//
// Usage:
//
//	weblink [global flags] <command> [command flags]
//
// Commands:
//
//	listing <id>                      fetch one publication
//	listings [-since d] [-types a,b]  fetch the publication summary feed
//	projects [-since d] [-types a,b]  fetch the project summary feed
//	contact-info                      fetch the account's contact details
//	contact -first -last -comments (-phone|-cell|-email) [...]
//	feedback -id -status [-description] -internal-id -url
//
// Examples:
//
//	export WEBLINK_PASSWORD='secret'
//	weblink -user agent listings -since 2024-01-01T00:00:00
//	weblink -user agent -format yaml listing 2247560
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/smnsjas/go-weblink/client"
	"github.com/smnsjas/go-weblink/internal/config"
	weblinklog "github.com/smnsjas/go-weblink/internal/log"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// globalFlags holds the flags given before the command name.
type globalFlags struct {
	configFile string
	endpoint   string
	username   string
	password   string
	timeout    time.Duration
	userAgent  string
	useNTLM    bool
	format     string
	logLevel   string
	logFile    string
}

func parseGlobalFlags(args []string, stderr io.Writer) (*globalFlags, *flag.FlagSet, error) {
	g := &globalFlags{}
	fs := flag.NewFlagSet("weblink", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&g.configFile, "config", "", "Path to a config file (yaml, json or toml)")
	fs.StringVar(&g.endpoint, "endpoint", "", "Weblink service address")
	fs.StringVar(&g.username, "user", "", "Username for authentication")
	fs.StringVar(&g.password, "pass", "", "Password (use WEBLINK_PASSWORD env var instead)")
	fs.DurationVar(&g.timeout, "timeout", 0, "Connection timeout (e.g. 30s)")
	fs.StringVar(&g.userAgent, "user-agent", "", "Suffix appended to the User-Agent header")
	fs.BoolVar(&g.useNTLM, "ntlm", false, "Use NTLM authentication")
	fs.StringVar(&g.format, "format", "", "Output format: json or yaml")
	fs.StringVar(&g.logLevel, "loglevel", "", "Log level: debug, info, warn, error (empty = no logging)")
	fs.StringVar(&g.logFile, "logfile", "", "Write logs to this file instead of stderr (rotated at 10MB)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: weblink [global flags] <command> [command flags]")
		fmt.Fprintln(stderr, "Commands: listing, listings, projects, contact-info, contact, feedback")
		fmt.Fprintln(stderr, "Global flags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return g, fs, nil
}

// apply overrides cfg with the flags set on the command line.
func (g *globalFlags) apply(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "endpoint":
			cfg.Endpoint = g.endpoint
		case "user":
			cfg.Username = g.username
		case "pass":
			cfg.Password = g.password
		case "timeout":
			cfg.Timeout = g.timeout
		case "user-agent":
			cfg.UserAgent = g.userAgent
		case "ntlm":
			if g.useNTLM {
				cfg.AuthType = "ntlm"
			}
		case "format":
			cfg.Format = strings.ToLower(g.format)
		case "loglevel":
			cfg.LogLevel = g.logLevel
		case "logfile":
			cfg.LogFile = g.logFile
		}
	})
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	g, fs, err := parseGlobalFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(g.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	g.apply(cfg, fs)

	if cfg.Format != "json" && cfg.Format != "yaml" {
		fmt.Fprintf(stderr, "Error: invalid format %q (want json or yaml)\n", cfg.Format)
		return 2
	}
	if cfg.Timeout <= 0 {
		fmt.Fprintf(stderr, "Error: invalid timeout %v (must be positive)\n", cfg.Timeout)
		return 2
	}

	logger, closeLog, err := setupLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	logger.Debug("configuration loaded", "config", cfg)

	if cfg.Username == "" {
		fmt.Fprintln(stderr, "Error: -user is required (or WEBLINK_USERNAME)")
		return 2
	}
	password := getPassword(cfg.Password, stderr)
	if password == "" {
		fmt.Fprintln(stderr, "Error: password is required (use -pass, WEBLINK_PASSWORD env, or stdin)")
		return 2
	}

	c := client.New(cfg.Username, password, cfg.ClientOptions(logger)...)

	command, cmdArgs := fs.Arg(0), fs.Args()[1:]
	if err := execute(ctx, c, command, cmdArgs, stdout, stderr, cfg.Format); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		logger.Error("command failed", "command", command, "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogger builds the logger described by cfg. The returned func closes
// the log file, if any.
func setupLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return weblinklog.NewLogger(cfg.LogLevel, stderr), func() {}, nil
	}
	if _, ok := weblinklog.ParseLevel(cfg.LogLevel); !ok {
		cfg.LogLevel = "info"
	}

	rf, err := weblinklog.NewRotatingFile(cfg.LogFile, weblinklog.DefaultMaxSize, weblinklog.DefaultMaxBackups)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return weblinklog.NewLogger(cfg.LogLevel, rf), func() { _ = rf.Close() }, nil
}

// getPassword returns the configured password or prompts for it.
func getPassword(configured string, stderr io.Writer) string {
	if configured != "" {
		return configured
	}

	fmt.Fprint(stderr, "Password: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		passBytes, err := term.ReadPassword(fd)
		fmt.Fprintln(stderr)
		if err != nil {
			return ""
		}
		return string(passBytes)
	}

	// Not a terminal (piped input): read line
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
