// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/decred/dcrd/dcrutil/v4"
	flags "github.com/jessevdk/go-flags"
	"github.com/turtlecoin/turtletest/errors"
	"github.com/turtlecoin/turtletest/internal/cfgutil"
	"github.com/turtlecoin/turtletest/internal/loggers"
	"github.com/turtlecoin/turtletest/internal/session"
	"github.com/turtlecoin/turtletest/version"
)

const (
	defaultConfigFilename = "turtletest.conf"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "turtletest.log"
	defaultLogSize        = 10 * 1024 // KiB
	defaultDaemonHost     = "127.0.0.1"
	defaultDaemonPort     = 11898
	defaultServiceHost    = "127.0.0.1"
	defaultServicePort    = 8070
	defaultServicePass    = "password"
	defaultMixin          = 3
	defaultCallTimeout    = 10 * time.Second
)

var (
	defaultAppDataDir = dcrutil.AppDataDir("turtletest", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultAppDataDir, defaultLogDirname)
)

type config struct {
	// General application behavior
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	AppDataDir  string `short:"A" long:"appdata" description:"Application data directory for config and logs"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off} or SUBSYS=level pairs; \"show\" lists subsystems"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	LogStderr   bool   `long:"logstderr" description:"Also write log output to standard error"`
	NoBanner    bool   `long:"nobanner" description:"Do not print the startup banner"`
	NoColor     bool   `long:"nocolor" description:"Disable styled terminal output"`

	// Daemon defaults
	DaemonHost string `long:"daemonhost" description:"Default TurtleCoind host offered by test daemon"`
	DaemonPort int    `long:"daemonport" description:"Default TurtleCoind RPC port offered by test daemon"`
	Mixin      int    `long:"mixin" description:"Default mixin used to request random outputs"`

	// Wallet service defaults
	ServiceHost string `long:"servicehost" description:"Default walletd host offered by test service"`
	ServicePort int    `long:"serviceport" description:"Default walletd RPC port offered by test service"`
	ServicePass string `long:"servicepass" default-mask:"-" description:"Default walletd RPC password offered by test service"`

	// Cross-validation and RPC behavior
	RefNode     *cfgutil.URLFlag `long:"refnode" description:"URL of a trusted TurtleCoind getinfo endpoint to compare daemon results against"`
	CallTimeout time.Duration    `long:"calltimeout" description:"Timeout for each RPC call (0 to disable)"`
}

// cleanAndExpandPath expands environement variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but they variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// defaultConfig returns the configuration used when no options are given.
func defaultConfig() config {
	return config{
		ConfigFile:  defaultConfigFile,
		AppDataDir:  defaultAppDataDir,
		DebugLevel:  defaultLogLevel,
		LogDir:      defaultLogDir,
		DaemonHost:  defaultDaemonHost,
		DaemonPort:  defaultDaemonPort,
		Mixin:       defaultMixin,
		ServiceHost: defaultServiceHost,
		ServicePort: defaultServicePort,
		ServicePass: defaultServicePass,
		RefNode:     cfgutil.NewURLFlag(""),
		CallTimeout: defaultCallTimeout,
	}
}

// sessionConfig returns the defaults offered by the interactive prompts.
func (cfg *config) sessionConfig() session.Config {
	return session.Config{
		Daemon: session.Endpoint{
			Host:  cfg.DaemonHost,
			Port:  cfg.DaemonPort,
			Mixin: cfg.Mixin,
		},
		Service: session.Endpoint{
			Host:     cfg.ServiceHost,
			Port:     cfg.ServicePort,
			Password: cfg.ServicePass,
		},
		Reference:   cfg.RefNode.String(),
		CallTimeout: cfg.CallTimeout,
	}
}

// validate checks option values which the flag parser accepts but the
// harness cannot use.
func (cfg *config) validate() error {
	const op errors.Op = "config.validate"
	for _, p := range []struct {
		name string
		port int
	}{{"daemonport", cfg.DaemonPort}, {"serviceport", cfg.ServicePort}} {
		if _, err := cfgutil.ParsePort(fmt.Sprint(p.port)); err != nil {
			return errors.E(op, errors.Invalid, errors.Errorf("%s: %d is not a valid port", p.name, p.port))
		}
	}
	if cfg.Mixin < 0 {
		return errors.E(op, errors.Invalid, errors.Errorf("mixin cannot be negative: %d", cfg.Mixin))
	}
	if cfg.CallTimeout < 0 {
		return errors.E(op, errors.Invalid, errors.Errorf("calltimeout cannot be negative: %v", cfg.CallTimeout))
	}
	return nil
}

// createDefaultConfigFile writes the commented sample configuration to path
// when no file exists there yet.
func createDefaultConfigFile(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(sampleConfig()), 0600)
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in turtletest functioning properly without any config
// settings while still allowing the user to override settings with config files
// and command line options.  Command line options always take precedence.
func loadConfig(args []string) (*config, []string, error) {
	loadConfigError := func(err error) (*config, []string, error) {
		return nil, nil, err
	}

	// Default config.
	cfg := defaultConfig()

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.
	preCfg := cfg
	preCfg.RefNode = cfgutil.NewURLFlag("")
	preParser := flags.NewParser(&preCfg, flags.Default)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return loadConfigError(err)
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	if preCfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	// Load additional config from file.  A commented sample is created at
	// the default location on first run.
	var configFileError error
	parser := flags.NewParser(&cfg, flags.Default)
	configFilePath := preCfg.ConfigFile
	if configFilePath == defaultConfigFile {
		appDataDir := cleanAndExpandPath(preCfg.AppDataDir)
		configFilePath = filepath.Join(appDataDir, defaultConfigFilename)
		if err := createDefaultConfigFile(configFilePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating a default config file: %v\n", err)
		}
	} else {
		configFilePath = cleanAndExpandPath(configFilePath)
	}
	err = flags.NewIniParser(parser).ParseFile(configFilePath)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return loadConfigError(err)
		}
		configFileError = err
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return loadConfigError(err)
	}

	// If an alternate data directory was specified, and paths with defaults
	// relative to the data dir are unchanged, modify each path to be
	// relative to the new data dir.
	if cfg.AppDataDir != defaultAppDataDir {
		cfg.AppDataDir = cleanAndExpandPath(cfg.AppDataDir)
		if cfg.LogDir == defaultLogDir {
			cfg.LogDir = filepath.Join(cfg.AppDataDir, defaultLogDirname)
		}
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", loggers.SupportedSubsystems())
		os.Exit(0)
	}

	// Initialize log rotation.  After log rotation has been initialized, the
	// logger variables may be used.
	loggers.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename), defaultLogSize)
	loggers.MirrorToStderr(cfg.LogStderr)
	loggers.SetLogLevels(defaultLogLevel)

	// Parse, validate, and set debug log level(s).
	if err := loggers.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("loadConfig: %v", err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return loadConfigError(err)
	}

	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return loadConfigError(err)
	}

	// Warn about missing config file after the final command line parse
	// succeeds.  This prevents the warning on help messages and invalid
	// options.
	if configFileError != nil {
		log.Warnf("%v", configFileError)
	}

	return &cfg, remainingArgs, nil
}
