// camctl-check runs the catalogue consistency checks for the shipped
// model views and emits their capability reports. Release pipelines
// gate on its exit status: error findings fail the run, and warnings
// fail it too under -strict.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	fujicom "github.com/Scoduglas1999/Fujicom-sub001"
	"github.com/Scoduglas1999/Fujicom-sub001/pkg/check"
)

var errGateFailed = errors.New("consistency gate failed")

type gateConfig struct {
	models string
	base   string
	format string
	out    string
	strict bool
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.String("model", "all", "comma-separated models to check, or all")
	flag.String("base", string(fujicom.ModelReference), "base view the diffs are taken against")
	flag.String("format", "json", "report format: json or yaml")
	flag.String("out", "", "write reports to this file instead of stdout")
	flag.Bool("strict", false, "treat warning findings as failures")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer logger.Sync()

	viper.SetEnvPrefix("CAMCTL")
	viper.AutomaticEnv()
	viper.SetDefault("model", "all")
	viper.SetDefault("base", string(fujicom.ModelReference))
	viper.SetDefault("format", "json")
	viper.SetDefault("out", "")
	viper.SetDefault("strict", false)
	if *configPath != "" {
		viper.SetConfigFile(*configPath)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			logger.Fatal("read config", zap.Error(err))
		}
	}
	// Flags passed on the command line outrank env and file settings.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			return
		}
		viper.Set(f.Name, f.Value.String())
	})

	cfg := gateConfig{
		models: viper.GetString("model"),
		base:   viper.GetString("base"),
		format: viper.GetString("format"),
		out:    viper.GetString("out"),
		strict: viper.GetBool("strict"),
	}

	if err := run(cfg, logger); err != nil {
		if errors.Is(err, errGateFailed) {
			logger.Error("gate failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Fatal("check aborted", zap.Error(err))
	}
}

func run(cfg gateConfig, logger *zap.Logger) error {
	if cfg.format != "json" && cfg.format != "yaml" {
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	base, err := fujicom.ModelView(fujicom.Model(cfg.base))
	if err != nil {
		return fmt.Errorf("base view: %w", err)
	}

	var models []fujicom.Model
	if cfg.models == "all" {
		for _, m := range fujicom.Models() {
			if string(m) != cfg.base {
				models = append(models, m)
			}
		}
	} else {
		for _, name := range strings.Split(cfg.models, ",") {
			models = append(models, fujicom.Model(strings.TrimSpace(name)))
		}
	}

	out := io.Writer(os.Stdout)
	if cfg.out != "" {
		f, err := os.Create(cfg.out)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		out = f
	}

	failed := 0
	for i, m := range models {
		view, err := fujicom.ModelView(m)
		if err != nil {
			return fmt.Errorf("model view: %w", err)
		}

		rep := check.Run(base, view)
		logger.Info("checked model",
			zap.String("model", string(m)),
			zap.String("report_id", rep.ReportID.String()),
			zap.Int("errors", rep.ErrorCount()),
			zap.Int("warnings", rep.WarningCount()),
			zap.Int("unsupported", len(rep.Diff.Unsupported)),
			zap.Bool("valid", rep.Valid))

		switch cfg.format {
		case "json":
			err = rep.WriteJSON(out)
		case "yaml":
			if i > 0 {
				if _, err := io.WriteString(out, "---\n"); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
			}
			err = rep.WriteYAML(out)
		}
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		if rep.ErrorCount() > 0 || (cfg.strict && rep.WarningCount() > 0) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d models: %w", failed, len(models), errGateFailed)
	}
	return nil
}
