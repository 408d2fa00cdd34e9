package cli

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/postfix"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate configuration with an application-key of 'POSTFIX' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "POSTFIX", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		Exit(1)
	}
	Configuration = k // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	if _, err = postfix.ParseOutputMode(konf.GetString("mode")); err != nil {
		return err
	}
	return nil
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	paths := locateLogDir()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		// relative file names are located in the log directory
		if strings.HasPrefix(dest, "file://") && !filepath.IsAbs(dest[7:]) && paths.LogDir() != "" {
			dest = "file://" + filepath.Join(paths.LogDir(), dest[7:])
			konf.Set("tracing.destination", dest)
		}
		tracing.Infof("tracing to %q", dest)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func locateLogDir() AppPaths {
	paths, err := DefaultAppPaths("Postfix")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}

// settings are the output settings for conversions.
type settings struct {
	mode  postfix.OutputMode
	table bool
}

// currentSettings reads the output settings from the global configuration.
func currentSettings() settings {
	s := settings{mode: postfix.SpacedString}
	if Configuration == nil {
		return s
	}
	if m, err := postfix.ParseOutputMode(Configuration.String("mode")); err == nil {
		s.mode = m
	}
	s.table = Configuration.Bool("table")
	return s
}
