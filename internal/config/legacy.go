package config

import (
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// legacyFile mirrors the old TOML layout: a [keybind] table with the
// combination and a [server] table with url and bearer token.
type legacyFile struct {
	Keybind struct {
		Key string `toml:"key"`
	} `toml:"keybind"`
	Server struct {
		URL   string `toml:"url"`
		Token string `toml:"token"`
	} `toml:"server"`
}

// ImportLegacy reads an old-format TOML config and converts it to Settings.
// Environment variables are expanded in the raw file text before decoding, so
// values like token = "${FS_TOKEN}" keep working. Missing file returns
// (defaults, false, nil).
func ImportLegacy(path string) (Settings, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), false, nil
		}
		return Default(), false, fmt.Errorf("read legacy config %s: %w", path, err)
	}

	var f legacyFile
	if err := toml.Unmarshal([]byte(ExpandVars(string(data))), &f); err != nil {
		return Default(), false, fmt.Errorf("parse legacy config %s: %w", path, err)
	}

	s := Default()
	if f.Keybind.Key != "" {
		key := f.Keybind.Key
		s.Keybind.Key = &key
	}
	if f.Server.URL != "" {
		s.Server.URL = f.Server.URL
	}
	if f.Server.Token != "" {
		auth := AuthBearer
		token := f.Server.Token
		s.Server.AuthType = &auth
		s.Server.Token = &token
	}
	log.Printf("Imported legacy config from %s", path)
	return s, true, nil
}
