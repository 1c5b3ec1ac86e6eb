// Package iofs creates directories and files gndex keeps in the
// user's home.
package iofs

import (
	"bufio"
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gnames/gndex/pkg/config"
	"github.com/gnames/gndex/pkg/dex"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, data and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// ReadList reads non-empty lines of a file. Lines starting with '#'
// are comments.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	var res []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res = append(res, line)
	}
	if err = sc.Err(); err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

// ReadCustom reads user-defined pokemon. A missing file means there are
// none.
func ReadCustom(path string) (dex.CustomCollection, error) {
	var res dex.CustomCollection
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return res, nil
	}
	if err != nil {
		return res, ReadFileError(path, err)
	}

	if err = yaml.Unmarshal(data, &res); err != nil {
		return res, ParseFileError(path, err)
	}
	for _, v := range res.Pokemon {
		if strings.TrimSpace(v.Nickname) == "" || strings.TrimSpace(v.Base) == "" {
			return res, ParseFileError(path,
				errors.New("every custom pokemon needs a nickname and a base"))
		}
	}
	return res, nil
}
