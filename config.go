package lambdalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is looked up in the deployment root and the working directory.
	DefaultConfigFile = "lambdalogger.properties"
	// ConfigEnv names an explicit configuration file path.
	ConfigEnv = "LAMBDALOG_CONFIG"
	// TaskRootEnv is set by the Lambda runtime to the function's deployment directory.
	TaskRootEnv = "LAMBDA_TASK_ROOT"
)

// Source supplies the flat key→string configuration once, at factory construction.
type Source interface {
	Load() (map[string]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (map[string]string, error)

func (f SourceFunc) Load() (map[string]string, error) { return f() }

// Properties returns a Source over an in-memory mapping. The mapping is copied.
func Properties(m map[string]string) Source {
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return SourceFunc(func() (map[string]string, error) { return cp, nil })
}

// File returns a Source reading path. Files ending in .yaml or .yml are
// flattened into dotted keys, .env files are read as dotenv, and anything
// else is read as a Java properties file.
func File(path string) Source {
	return SourceFunc(func() (map[string]string, error) {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return loadYAML(path)
		case ".env":
			env, err := godotenv.Read(path)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to load %s", path)
			}
			return env, nil
		default:
			return loadProperties(path)
		}
	})
}

// loadProperties accepts every key form of the Java format, including
// "key value" and "key: value", so one odd key never rejects the file.
func loadProperties(path string) (map[string]string, error) {
	l := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := l.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}
	return p.Map(), nil
}

// DefaultSource resolves the configuration file from $LAMBDALOG_CONFIG, then
// $LAMBDA_TASK_ROOT/lambdalogger.properties, then ./lambdalogger.properties.
func DefaultSource() Source {
	if p := os.Getenv(ConfigEnv); p != "" {
		return File(p)
	}
	if root := os.Getenv(TaskRootEnv); root != "" {
		p := filepath.Join(root, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return File(p)
		}
	}
	return File(DefaultConfigFile)
}

func loadYAML(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", path)
	}
	out := make(map[string]string)
	flatten("", doc, out)
	return out, nil
}

func flatten(prefix string, v any, out map[string]string) {
	switch vv := v.(type) {
	case map[string]any:
		for k, child := range vv {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case nil:
		// "lambda.rootLogger:" with no value
		out[prefix] = ""
	default:
		out[prefix] = fmt.Sprint(vv)
	}
}

// load never fails: a broken source degrades to an empty mapping (root OFF).
func load(src Source, onError ErrorHandler) map[string]string {
	if src == nil {
		return nil
	}
	props, err := src.Load()
	if err != nil {
		onError(errors.Wrap(err, "defaulting to OFF"))
		return nil
	}
	return props
}
