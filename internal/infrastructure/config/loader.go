package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	configapp "github.com/vmodem/vmodem99a/internal/application/config"
	"github.com/vmodem/vmodem99a/internal/domain"
	"github.com/vmodem/vmodem99a/internal/pkg/filesystem"
	"github.com/vmodem/vmodem99a/internal/ports"
)

// EnvConfigPath overrides the settings file location.
const EnvConfigPath = "VMODEM_CONFIG"

// FileStore loads YAML configuration from ~/.vmodem99a/config.yaml (overridable via VMODEM_CONFIG).
type FileStore struct {
	overridePath string
	logger       ports.Logger
}

// NewFileStore builds a new store. An empty path selects the default location.
func NewFileStore(path string, logger ports.Logger) *FileStore {
	return &FileStore{overridePath: path, logger: logger}
}

// Load implements ports.ConfigStore. A missing, unreadable or invalid file
// resolves to the defaults; the error is only logged.
func (s *FileStore) Load(context.Context) (domain.Config, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.debug("config unreadable, using defaults", path, err)
		}
		return domain.DefaultConfig(), nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		s.debug("config unparseable, using defaults", path, err)
		return domain.DefaultConfig(), nil
	}
	if isEmptyDocument(&doc) {
		s.debug("config empty, using defaults", path, errEmptyDocument)
		return domain.DefaultConfig(), nil
	}

	// Keys absent from the file keep their defaults.
	cfg := domain.DefaultConfig()
	if err := doc.Decode(&cfg); err != nil {
		s.debug("config unparseable, using defaults", path, err)
		return domain.DefaultConfig(), nil
	}

	cfg = cfg.Hydrate()
	if err := configapp.Validate(cfg); err != nil {
		s.debug("config invalid, using defaults", path, err)
		return domain.DefaultConfig(), nil
	}
	return cfg, nil
}

// Save writes the full settings document.
func (s *FileStore) Save(cfg domain.Config) error {
	if err := configapp.Validate(cfg); err != nil {
		return err
	}
	path := s.Path()
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return &domain.PersistError{Op: "save", Path: path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return &domain.PersistError{Op: "save", Path: path, Err: err}
	}
	if err := os.WriteFile(path, raw, domain.SecureFilePermissions); err != nil {
		return &domain.PersistError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Path returns the resolved settings file path.
func (s *FileStore) Path() string {
	if s.overridePath != "" {
		return filesystem.ExpandPath(s.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.DataDir(), "config.yaml")
}

var errEmptyDocument = errors.New("no settings in document")

// isEmptyDocument reports a file holding nothing but whitespace, comments or
// an empty mapping.
func isEmptyDocument(doc *yaml.Node) bool {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return true
	}
	root := doc.Content[0]
	return root.Kind == yaml.MappingNode && len(root.Content) == 0
}

func (s *FileStore) debug(msg, path string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg, map[string]interface{}{"path": path, "error": err.Error()})
}

var _ ports.ConfigStore = (*FileStore)(nil)
