package cliconfig

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/moldock/vinascreen/internal/domain"
)

// DefaultConfigFile is picked up from the working directory when present.
const DefaultConfigFile = "vinascreen.toml"

// FileConfig mirrors Config for TOML parsing. Grid parameters are pointers
// so an absent key is distinguishable from an explicit 0.0.
type FileConfig struct {
	Receptor       string `toml:"receptor"`
	LigandDir      string `toml:"ligand_dir"`
	OutputDir      string `toml:"output_dir"`
	ScoresPath     string `toml:"scores"`
	TranscriptPath string `toml:"transcript"`
	AuditLogPath   string `toml:"audit_log"`

	VinaBin        string `toml:"vina_bin"`
	Exhaustiveness int    `toml:"exhaustiveness"`
	ToolTimeout    string `toml:"tool_timeout"`
	Watch          *bool  `toml:"watch"`

	CenterX *float64 `toml:"center_x"`
	CenterY *float64 `toml:"center_y"`
	CenterZ *float64 `toml:"center_z"`
	SizeX   *float64 `toml:"size_x"`
	SizeY   *float64 `toml:"size_y"`
	SizeZ   *float64 `toml:"size_z"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("receptor", fc.Receptor, &cfg.Receptor)
	s.setString("ligand-dir", fc.LigandDir, &cfg.LigandDir)
	s.setString("output-dir", fc.OutputDir, &cfg.OutputDir)
	s.setString("scores", fc.ScoresPath, &cfg.ScoresPath)
	s.setString("transcript", fc.TranscriptPath, &cfg.TranscriptPath)
	s.setString("audit-log", fc.AuditLogPath, &cfg.AuditLogPath)
	s.setString("vina-bin", fc.VinaBin, &cfg.VinaBin)

	s.setInt("exhaustiveness", fc.Exhaustiveness, &cfg.Exhaustiveness)

	if err := s.setDuration("tool-timeout", fc.ToolTimeout, &cfg.ToolTimeout); err != nil {
		return err
	}
	s.setBool("watch", fc.Watch, &cfg.Watch)

	gridValues := map[string]*float64{
		"center_x": fc.CenterX,
		"center_y": fc.CenterY,
		"center_z": fc.CenterZ,
		"size_x":   fc.SizeX,
		"size_y":   fc.SizeY,
		"size_z":   fc.SizeZ,
	}
	for _, name := range domain.GridParamNames {
		if err := s.setGrid(cfg, name, gridValues[name]); err != nil {
			return err
		}
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
