package workspace

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/javelin-build/javelin/internal/constants"
	"github.com/javelin-build/javelin/internal/errors"
	"github.com/javelin-build/javelin/internal/logger"
	"github.com/javelin-build/javelin/internal/utils"
)

// Workspace is an opened build workspace: a root directory plus its parsed
// javelin.yaml.
type Workspace struct {
	root string
	cfg  *Config
}

// FindRoot walks up from dir looking for a javelin.yaml and returns the
// directory containing it.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs path: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(abs, constants.ConfigFileName)); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", errors.ErrNotInitialized
		}
		abs = parent
	}
}

// Open loads and validates the configuration at root.
func Open(ctx context.Context, root string) (*Workspace, error) {
	configPath := filepath.Join(root, constants.ConfigFileName)

	var cfg Config
	if err := utils.ReadYAML(configPath, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrNotInitialized
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", constants.ConfigFileName, err)
	}

	logger.Log(ctx).Debug().
		Str("root", root).
		Int("targets", len(cfg.Targets)).
		Msg("Opened workspace")

	return &Workspace{root: root, cfg: &cfg}, nil
}

// Init writes a new configuration at root.
func Init(ctx context.Context, root string, cfg *Config, opts InitOptions) (*Workspace, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", constants.ConfigFileName, err)
	}

	configPath := filepath.Join(root, constants.ConfigFileName)
	if !opts.Force {
		if _, err := os.Stat(configPath); err == nil {
			return nil, fmt.Errorf("%s already exists (use --force to overwrite)", constants.ConfigFileName)
		}
	}

	if err := utils.WriteYAML(configPath, cfg); err != nil {
		return nil, fmt.Errorf("write config: %w", err)
	}

	logger.Log(ctx).Info().Str("path", configPath).Msg("Initialized workspace")
	return &Workspace{root: root, cfg: cfg}, nil
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string {
	return w.root
}

// Targets returns the configured targets in declaration order.
func (w *Workspace) Targets() []TargetConfig {
	return w.cfg.Targets
}

// Target returns the target with the given name.
func (w *Workspace) Target(name string) (*TargetConfig, error) {
	for i := range w.cfg.Targets {
		if w.cfg.Targets[i].Name == name {
			return &w.cfg.Targets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", errors.ErrUnknownTarget, name)
}

// SelectTargets resolves the given names (doublestar patterns allowed)
// against the configured targets, preserving declaration order. Empty names
// selects everything.
func (w *Workspace) SelectTargets(names []string) ([]TargetConfig, error) {
	if len(names) == 0 {
		return w.cfg.Targets, nil
	}

	unmatched := utils.StringSliceToMap(names)
	var selected []TargetConfig
	for _, t := range w.cfg.Targets {
		for _, name := range names {
			if t.Name == name || utils.MatchPattern(name, t.Name) {
				selected = append(selected, t)
				delete(unmatched, name)
				break
			}
		}
	}

	for _, name := range names {
		if unmatched[name] {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnknownTarget, name)
		}
	}
	return selected, nil
}

// ExpandSources expands a target's source globs into a sorted list of paths
// relative to the workspace root. Matching nothing is an error: a target
// with no sources cannot be built.
func (w *Workspace) ExpandSources(t *TargetConfig) ([]string, error) {
	files, err := utils.ExpandGlobs(w.root, t.Srcs)
	if err != nil {
		return nil, fmt.Errorf("expand sources for %s: %w", t.Name, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: target %s", errors.ErrNoSourcesMatched, t.Name)
	}
	return files, nil
}

// validateConfig checks the configuration invariants: at least one target,
// unique names, a recognized kind, sources everywhere, and an output
// directory on every java target.
func validateConfig(cfg *Config) error {
	if len(cfg.Targets) == 0 {
		return errors.ErrNoTargets
	}

	seen := make(map[string]bool)
	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		if t.Name == "" {
			return goerrors.New(constants.ErrMsgTargetNameEmpty)
		}
		if seen[t.Name] {
			return fmt.Errorf("%s: %s", constants.ErrMsgTargetNameDuplicate, t.Name)
		}
		seen[t.Name] = true

		if t.Kind == "" {
			t.Kind = constants.KindJava
		}
		switch t.Kind {
		case constants.KindJava:
			if t.Output == "" {
				return fmt.Errorf("%s: %s", constants.ErrMsgTargetNoOutput, t.Name)
			}
		case constants.KindProto:
		default:
			return fmt.Errorf("%s %q: %s", constants.ErrMsgTargetKindInvalid, t.Kind, t.Name)
		}

		if len(t.Srcs) == 0 {
			return fmt.Errorf("%s: %s", constants.ErrMsgTargetNoSources, t.Name)
		}
	}

	return nil
}
