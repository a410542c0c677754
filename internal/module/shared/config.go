package shared

import (
	"log"
	"os"
	"strings"

	"github.com/huffpack/huffpack/utils/config"
	kYaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

var logger = log.New(os.Stderr, "conf ", log.Ldate|log.Ltime)

// Built-in defaults; config/default.yaml, config/local.yaml and HUFFPACK_*
// env vars override these in that order.
var defaults = []byte(`
app:
  name: huffpack
  host: 0.0.0.0:8080
  production: false
logger:
  level: info
  prettier: true
`)

func NewConfInstance() *config.Conf {
	k := koanf.New(".")
	conf := &config.Conf{Koanf: k}

	if err := conf.Load(rawbytes.Provider(defaults), kYaml.Parser()); err != nil {
		logger.Printf("Error loading built-in config: %v", err)
	}

	if _, err := os.Stat("config/default.yaml"); err == nil {
		if err := conf.Load(file.Provider("config/default.yaml"), kYaml.Parser()); err != nil {
			logger.Printf("Error loading default config: %v", err)
		}
	}

	if _, err := os.Stat("config/local.yaml"); err == nil {
		if err := conf.Load(file.Provider("config/local.yaml"), kYaml.Parser()); err != nil {
			logger.Printf("Error loading local config: %v", err)
		}
	}

	if err := conf.Load(env.ProviderWithValue("HUFFPACK_", ".", func(s string, v string) (string, interface{}) {
		// Strip the HUFFPACK_ prefix, lowercase, and turn _ into the koanf
		// delimiter.
		key := strings.Replace(strings.ToLower(strings.TrimPrefix(s, "HUFFPACK_")), "_", ".", -1)

		if strings.Contains(v, " ") {
			return key, strings.Split(v, " ")
		}

		return key, v
	}), nil); err != nil {
		logger.Printf("Error loading env: %v", err)
	}

	return conf
}
