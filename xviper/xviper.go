// Package xviper wraps viper with a lazily loaded, eagerly saved settings
// file under the appdraft home directory.
package xviper

import (
	"sync"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pathlib"
	"github.com/spf13/viper"
)

const (
	endpointKey = `cloud.endpoint`
)

var (
	settings     *viper.Viper
	settingsLock sync.Mutex
)

func summon() *viper.Viper {
	settingsLock.Lock()
	defer settingsLock.Unlock()
	if settings != nil {
		return settings
	}
	pile := viper.New()
	pile.SetConfigFile(common.SettingsFile())
	pile.SetConfigType("json")
	if pathlib.IsFile(common.SettingsFile()) {
		err := pile.ReadInConfig()
		common.Error("xviper.read", err)
	}
	settings = pile
	return settings
}

func save(pile *viper.Viper) {
	_, err := pathlib.EnsureParentDirectory(common.SettingsFile())
	if err == nil {
		err = pile.WriteConfigAs(common.SettingsFile())
	}
	common.Error("xviper.save", err)
}

func Set(key string, value interface{}) {
	pile := summon()
	pile.Set(key, value)
	save(pile)
}

func GetString(key string) string {
	return summon().GetString(key)
}

func GetBool(key string) bool {
	return summon().GetBool(key)
}

func AllKeys() []string {
	return summon().AllKeys()
}

// Endpoint is the generation service base URL; the environment variable
// wins over the persisted setting so scripts can redirect one invocation.
func Endpoint() string {
	if value := envEndpoint(); len(value) > 0 {
		return value
	}
	return GetString(endpointKey)
}

func SetEndpoint(value string) {
	Set(endpointKey, value)
}
