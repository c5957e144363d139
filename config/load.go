package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// searchDirs covers running from the repo root, from cmd/<binary> and from a
// package directory under test.
func searchDirs() []string {
	dirs := []string{"."}
	wd, err := os.Getwd()
	if err != nil {
		return dirs
	}
	for _, rel := range []string{"config", "../config", "../../config"} {
		dirs = append(dirs, filepath.Join(wd, rel))
	}

	return dirs
}

func locate(name string, dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s.yaml not found in %v", name, dirs)
}

// load decodes the yaml file into out and lets environment variables override
// any key already present in it, e.g. SESSION_COOKIENAME sets session.cookieName.
func load(out any, name string, dirs []string) error {
	path, err := locate(name, dirs)
	if err != nil {
		return err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	known := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, known), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return errors.Wrap(err, "apply environment overrides")
	}

	err = k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	})

	return errors.Wrapf(err, "decode %s", path)
}

// canonicalizeEnvKey maps an upper snake case variable onto the camelCase path
// of the yaml tree. Segments unknown to the tree are kept lower case.
func canonicalizeEnvKey(raw string, tree map[string]any) string {
	var path []string
	node := tree

	for _, segment := range strings.Split(strings.ToLower(raw), "_") {
		if segment == "" {
			continue
		}

		key, child, ok := lookupKey(node, segment)
		if !ok {
			key, child = segment, nil
		}
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func lookupKey(node map[string]any, segment string) (string, map[string]any, bool) {
	want := foldKey(segment)
	for key, value := range node {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

// foldKey lower-cases s and drops everything but letters and digits.
func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... until HOST or PORT is missing.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for n := 0; ; n++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(n) + "_"
		host, port := os.Getenv(prefix+"HOST"), os.Getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}
}
