package xviper

import (
	"errors"
	"strings"
	"sync"

	"github.com/joshyorko/prompter/common"
	"github.com/spf13/viper"
)

var (
	lock    sync.RWMutex
	current = fresh("")
	source  string
)

func fresh(prefix string) *viper.Viper {
	result := viper.New()
	if len(prefix) > 0 {
		result.SetEnvPrefix(prefix)
		result.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		result.AutomaticEnv()
	}
	return result
}

// Load replaces the active configuration. An explicit filename must exist;
// otherwise name is searched from locations in order and a missing file just
// leaves defaults and environment in effect.
func Load(filename, name, prefix string, locations []string, defaults map[string]interface{}) error {
	next := fresh(prefix)
	for key, value := range defaults {
		next.SetDefault(key, value)
	}
	if len(filename) > 0 {
		next.SetConfigFile(filename)
	} else {
		next.SetConfigName(name)
		next.SetConfigType("yaml")
		for _, location := range locations {
			next.AddConfigPath(location)
		}
	}
	err := next.ReadInConfig()
	var missing viper.ConfigFileNotFoundError
	if err != nil && !(len(filename) == 0 && errors.As(err, &missing)) {
		return err
	}

	lock.Lock()
	defer lock.Unlock()
	current = next
	source = next.ConfigFileUsed()
	common.Trace("Configuration loaded from %q.", source)
	return nil
}

// ConfigFileUsed is the file behind the active configuration, if any.
func ConfigFileUsed() string {
	lock.RLock()
	defer lock.RUnlock()
	return source
}

func Set(key string, value interface{}) {
	lock.Lock()
	defer lock.Unlock()
	current.Set(key, value)
}

func IsSet(key string) bool {
	lock.RLock()
	defer lock.RUnlock()
	return current.IsSet(key)
}

func Get(key string) interface{} {
	lock.RLock()
	defer lock.RUnlock()
	return current.Get(key)
}

func GetString(key string) string {
	lock.RLock()
	defer lock.RUnlock()
	return current.GetString(key)
}

func GetBool(key string) bool {
	lock.RLock()
	defer lock.RUnlock()
	return current.GetBool(key)
}

func GetStringMapString(key string) map[string]string {
	lock.RLock()
	defer lock.RUnlock()
	return current.GetStringMapString(key)
}

func GetStringSlice(key string) []string {
	lock.RLock()
	defer lock.RUnlock()
	return current.GetStringSlice(key)
}
