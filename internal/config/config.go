// Package config loads a replacement plan (audio ID -> replacement file
// path) from a YAML or JSON file, resolving relative paths the way
// original_source/SoundBankPatcher.py's ConfigurationLoader does.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Replacements maps an audio ID to the resolved path of its replacement
// file.
type Replacements map[uint32]string

// Load reads configPath (.json, .yml or .yaml) and resolves every entry
// to a file path. Absolute paths are kept as they are; a relative path
// stays relative when the directory it is joined to is relative.
// Relative paths are tried, in order, against wemDir (if non-empty) and configPath's own directory; if neither
// candidate exists on disk, the path is still resolved against wemDir
// (or the config directory, if wemDir is empty) so the caller gets a
// clear "file not found" error downstream instead of a silent miss here.
func Load(configPath, wemDir string) (Replacements, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
	}

	data, err := decode(configPath, raw)
	if err != nil {
		return nil, err
	}

	configDir := filepath.Dir(configPath)
	out := make(Replacements, len(data))
	for k, v := range data {
		id, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("config: audio id %q is not numeric: %w", k, err)
		}

		path, err := resolveValue(k, v)
		if err != nil {
			return nil, err
		}

		out[uint32(id)] = resolvePath(path, wemDir, configDir)
	}
	return out, nil
}

func decode(path string, raw []byte) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var data map[string]any
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("config: parsing JSON %s: %w", path, err)
		}
		return data, nil
	case ".yml", ".yaml":
		var data map[string]any
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("config: parsing YAML %s: %w", path, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("config: unsupported config format %q", filepath.Ext(path))
	}
}

// resolveValue coerces a decoded value into a file path string. A bare
// numeric value is coerced to "<id>.wem", matching the original's
// tolerance for a config that supplies replacement IDs instead of
// paths.
func resolveValue(key string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int:
		return fmt.Sprintf("%d.wem", x), nil
	case float64:
		return fmt.Sprintf("%d.wem", int64(x)), nil
	default:
		return "", fmt.Errorf("config: value for audio id %s must be a string path or number, got %T", key, v)
	}
}

func resolvePath(path, wemDir, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}

	if wemDir != "" {
		candidate := filepath.Join(wemDir, path)
		if fileExists(candidate) {
			return candidate
		}
	}
	if candidate := filepath.Join(configDir, path); fileExists(candidate) {
		return candidate
	}
	if wemDir != "" {
		return filepath.Join(wemDir, path)
	}
	return filepath.Join(configDir, path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConvertFormat re-encodes a JSON or YAML replacement-plan file into
// the other format, coercing numeric values to "<id>.wem" path strings
// the same way Load does, matching
// SoundBankPatcher.py's convert_json_to_yaml/convert_yaml_to_json.
func ConvertFormat(inPath, outPath string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", inPath, err)
	}

	data, err := decode(inPath, raw)
	if err != nil {
		return err
	}

	processed := make(map[string]string, len(data))
	for k, v := range data {
		path, err := resolveValue(k, v)
		if err != nil {
			return err
		}
		processed[k] = path
	}

	var out []byte
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".json":
		out, err = json.MarshalIndent(processed, "", "  ")
	case ".yml", ".yaml":
		out, err = yaml.Marshal(processed)
	default:
		return fmt.Errorf("config: unsupported output format %q", filepath.Ext(outPath))
	}
	if err != nil {
		return fmt.Errorf("config: encoding %s: %w", outPath, err)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", outPath, err)
	}
	return nil
}
