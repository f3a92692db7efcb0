package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Dir is checked before the embedded copies, so edited prefabs and scripts
// apply without a rebuild.
var Dir = "prefabs"

// Load returns a prefab by name. "player", "player.yaml" and
// "prefabs/player.yaml" all name the same file.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if clean == "" {
		return nil, fmt.Errorf("prefabs: empty prefab name")
	}
	return read(PrefabsFS, clean)
}

// LoadScript returns the tengo source of a pickup script.
func LoadScript(name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("prefabs: empty script name")
	}
	return read(ScriptsFS, cleanScriptPath(name))
}

// ModTime reports when the on-disk copy of a prefab last changed.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func read(embedded fs.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(embedded, clean)
}

func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	s := strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
	if !strings.Contains(path.Base(s), ".") {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(name string) string {
	s := filepath.ToSlash(name)
	for _, prefix := range []string{"prefabs/", "scripts/"} {
		s = strings.TrimPrefix(s, prefix)
	}
	if path.Ext(s) != ".tengo" {
		s += ".tengo"
	}
	return path.Join("scripts", s)
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
