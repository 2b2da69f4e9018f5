package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/izu-co/espflash/chip"
	"github.com/izu-co/espflash/stubimport"
	"go.uber.org/zap"
)

type CommandLine struct {
	Chip    string
	In      string
	StubMap string
	OutDir  string
	Verbose bool
}

// StubList maps chips to stub files produced by the stub build.
type StubList map[chip.Chip]string

func LoadStubList(path string) (StubList, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open stub list %q: %w", path, err)
	}

	var list StubList
	if err := json.Unmarshal(file, &list); err != nil {
		return nil, fmt.Errorf("read stub list %q: %w", path, err)
	}
	return list, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(cmd CommandLine, logger *zap.Logger) error {
	stubs := StubList{}
	if cmd.StubMap != "" {
		list, err := LoadStubList(cmd.StubMap)
		if err != nil {
			return err
		}
		stubs = list
	}
	if cmd.Chip != "" {
		c, err := chip.Parse(cmd.Chip)
		if err != nil {
			return err
		}
		stubs[c] = cmd.In
	}

	logger.Debug("Importing flash stubs",
		zap.Int("count", len(stubs)),
		zap.String("out_dir", cmd.OutDir))
	return stubimport.ImportFiles(cmd.OutDir, stubs, logger.Sugar().Infof)
}

func main() {
	var cmd CommandLine
	flag.StringVar(&cmd.Chip, "chip", "", "Chip the stub given by -in is built for (e.g. esp32c3)")
	flag.StringVar(&cmd.In, "in", "", "Path to a stub in esptool's JSON format")
	flag.StringVar(&cmd.StubMap, "stubs", "", "Path to JSON file mapping chip names to stub files")
	flag.StringVar(&cmd.OutDir, "out-dir", "internal/catalog/stubs", "Directory receiving the catalog resources")
	flag.BoolVar(&cmd.Verbose, "verbose", false, "Enable debug logging")
	flag.Parse()
	if (cmd.Chip == "") != (cmd.In == "") || (cmd.Chip == "" && cmd.StubMap == "") || cmd.OutDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	logger, err := newLogger(cmd.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cmd, logger); err != nil {
		logger.Error("Import failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("Finished")
}
