package cliconfig

import (
	"os"
	"strings"

	"github.com/moldock/vinascreen/internal/domain"
)

// ApplyEnvConfig applies configuration from environment variables
// (VINASCREEN_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("receptor", os.Getenv("VINASCREEN_RECEPTOR"), &cfg.Receptor)
	s.setString("ligand-dir", os.Getenv("VINASCREEN_LIGAND_DIR"), &cfg.LigandDir)
	s.setString("output-dir", os.Getenv("VINASCREEN_OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("scores", os.Getenv("VINASCREEN_SCORES"), &cfg.ScoresPath)
	s.setString("transcript", os.Getenv("VINASCREEN_TRANSCRIPT"), &cfg.TranscriptPath)
	s.setString("audit-log", os.Getenv("VINASCREEN_AUDIT_LOG"), &cfg.AuditLogPath)
	s.setString("vina-bin", os.Getenv("VINASCREEN_VINA_BIN"), &cfg.VinaBin)

	if err := s.setIntFromString("exhaustiveness", os.Getenv("VINASCREEN_EXHAUSTIVENESS"), &cfg.Exhaustiveness); err != nil {
		return err
	}
	if err := s.setDuration("tool-timeout", os.Getenv("VINASCREEN_TOOL_TIMEOUT"), &cfg.ToolTimeout); err != nil {
		return err
	}
	s.setBoolFromString("watch", os.Getenv("VINASCREEN_WATCH"), &cfg.Watch)

	for _, name := range domain.GridParamNames {
		env := "VINASCREEN_" + strings.ToUpper(name)
		if err := s.setGridFromString(cfg, name, os.Getenv(env)); err != nil {
			return err
		}
	}
	return nil
}
