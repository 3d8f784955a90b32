package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/strongname/errors"
	"github.com/jmgilman/go/strongname/fs/billy"
)

const (
	// AppName is the application name.
	AppName = "sntool"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.cue"
	// EnvPrefix prefixes environment overrides, e.g. SNTOOL_CONTAINER.
	EnvPrefix = "SNTOOL"

	maxFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// FileSystem reads configuration files. *billy.LocalFS and *billy.MemoryFS
// implement it.
type FileSystem interface {
	FileExists(path string) (bool, error)
	ReadFile(path string) ([]byte, error)
}

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the user config directory when set.
	ConfigDirPath string
	// FS reads config files. Defaults to the local file system.
	FS FileSystem
	// LookupEnv reads environment overrides. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Dir returns the user configuration directory for sntool.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidConfig, "cannot determine config directory")
	}
	return filepath.Join(dir, AppName), nil
}

// Load builds the effective configuration. Defaults are overlaid by the
// config file and then by SNTOOL_* environment variables. The file is the
// explicit ConfigFilePath if set, otherwise config.cue in the user config
// directory, otherwise config.cue in the working directory. A missing
// default file is not an error.
//
// The second return value is the path of the file that was loaded, or "".
func Load(opts LoadOptions) (*Config, string, error) {
	if opts.FS == nil {
		opts.FS = billy.NewLocal()
	}

	v := viper.New()
	setDefaults(v)

	path, err := findConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, opts.FS, path); err != nil {
			return nil, "", errors.WithContext(err, "path", path)
		}
	}

	applyEnv(v, opts.LookupEnv)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config"),
			"path", path,
		)
	}
	if cfg.Timeout < 0 {
		return nil, "", errors.Newf(errors.CodeInvalidConfig, "timeout must not be negative, got %s", cfg.Timeout)
	}

	return &cfg, path, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("tool_path", d.ToolPath)
	v.SetDefault("container", d.Container)
	v.SetDefault("force_verification", d.ForceVerification)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("candidates.versions", d.Candidates.Versions)
	v.SetDefault("candidates.layouts", d.Candidates.Layouts)
}

// applyEnv overlays SNTOOL_* variables for every known key. List values
// are comma separated.
func applyEnv(v *viper.Viper, lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range v.AllKeys() {
		name := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		val, ok := lookup(name)
		if !ok {
			continue
		}
		if strings.HasPrefix(key, "candidates.") {
			v.Set(key, splitList(val))
			continue
		}
		v.Set(key, val)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		ok, err := opts.FS.FileExists(opts.ConfigFilePath)
		if err != nil || !ok {
			return "", errors.WithContext(
				errors.Newf(errors.CodeInvalidConfig, "config file not found: %s", opts.ConfigFilePath),
				"path", opts.ConfigFilePath,
			)
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = Dir(); err != nil {
			return "", err
		}
	}

	for _, candidate := range []string{filepath.Join(dir, ConfigFileName), ConfigFileName} {
		if ok, err := opts.FS.FileExists(candidate); err == nil && ok {
			return candidate, nil
		}
	}
	return "", nil
}

// loadCUEIntoViper parses a CUE file, validates it against #Config and
// merges it into v.
func loadCUEIntoViper(v *viper.Viper, fs FileSystem, path string) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
	}
	if len(data) > maxFileSize {
		return errors.Newf(errors.CodeInvalidConfig, "config file is larger than %d bytes", maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return errors.Wrap(schemaValue.Err(), errors.CodeInternal, "failed to compile config schema")
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return invalidConfig(userValue.Err(), "invalid CUE syntax")
	}

	unified, err := validate(schemaValue.LookupPath(cue.ParsePath("#Config")), userValue)
	if err != nil {
		return err
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode config")
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "failed to merge config")
	}
	return nil
}
