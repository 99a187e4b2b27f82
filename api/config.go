package api

import (
	"sync"

	"github.com/Utiqano/football/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	AuthConfig
}

type StorageConfig struct {
	TableNameParticipation string
	TableNameMvpVotes      string
	TableNameUsers         string
	TableNameSessions      string
	// UseMemory swaps DynamoDB for the in-memory store, for local runs
	// without AWS credentials.
	UseMemory bool
}

type ServerConfig struct {
	Port int
}

type AuthConfig struct {
	SessionTTLHours int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameParticipation: viper.GetString("storage.TableNameParticipation"),
			TableNameMvpVotes:      viper.GetString("storage.TableNameMvpVotes"),
			TableNameUsers:         viper.GetString("storage.TableNameUsers"),
			TableNameSessions:      viper.GetString("storage.TableNameSessions"),
			UseMemory:              getBoolOrDefault("storage.UseMemory", false),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
		AuthConfig: AuthConfig{
			SessionTTLHours: getIntOrDefault("auth.SessionTTLHours", 24*7),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getBoolOrDefault(name string, def bool) bool {
	if viper.IsSet(name) {
		v := viper.GetBool(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
