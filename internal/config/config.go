package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"reactlint/internal/components"
)

type Config struct {
	Project struct {
		Root string `yaml:"root"`
	} `yaml:"project"`
	React struct {
		Pragma      string                   `yaml:"pragma"`       // React import alias, default "React"
		CreateClass string                   `yaml:"create_class"` // legacy factory name
		Wrappers    []components.WrapperSpec `yaml:"wrappers"`
	} `yaml:"react"`
	Rules struct {
		MaxComponentsPerFile int `yaml:"max_components_per_file"`
	} `yaml:"rules"`
	Cache struct {
		Path string `yaml:"path"`
	} `yaml:"cache"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.Project.Root = "."
	cfg.Rules.MaxComponentsPerFile = 0 // disabled
	cfg.Cache.Path = ".reactlint.db"
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// No config file is fine; defaults plus env apply.
	} else if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if root := os.Getenv("REACTLINT_PROJECT_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if pragma := os.Getenv("REACTLINT_PRAGMA"); pragma != "" {
		cfg.React.Pragma = pragma
	}
	if factory := os.Getenv("REACTLINT_CREATE_CLASS"); factory != "" {
		cfg.React.CreateClass = factory
	}
	if cache := os.Getenv("REACTLINT_CACHE_PATH"); cache != "" {
		cfg.Cache.Path = cache
	}
	if max := os.Getenv("REACTLINT_MAX_COMPONENTS"); max != "" {
		if n, err := strconv.Atoi(max); err == nil {
			cfg.Rules.MaxComponentsPerFile = n
		}
	}

	return cfg, nil
}

// DetectorConfig translates the project settings into the detection
// configuration used per file.
func (c *Config) DetectorConfig() components.Config {
	return components.Config{
		PragmaAlias: c.React.Pragma,
		Factory:     c.React.CreateClass,
		Wrappers:    c.React.Wrappers,
	}
}
