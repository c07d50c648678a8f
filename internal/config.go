package internal

import (
	"bytes"
	"fmt"
	"os"
	"os/user"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wal-g/pitr-resolver/internal/limiters"
	"github.com/wal-g/pitr-resolver/pkg/storages/s3"
	"github.com/wal-g/pitr-resolver/pkg/storages/sh"
	"github.com/wal-g/tracelog"
	"golang.org/x/time/rate"
)

const (
	ServerNameSetting       = "WALG_SERVER_NAME"
	LogLevelSetting         = "WALG_LOG_LEVEL"
	NetworkRateLimitSetting = "WALG_NETWORK_RATE_LIMIT"
	StatsdAddressSetting    = "WALG_STATSD_ADDRESS"
	MetricsTextfileSetting  = "WALG_METRICS_TEXTFILE"

	DefaultServerName = "primary"
	DefaultConfigName = ".walg-pitr"
)

var (
	CfgFile string

	defaultConfigValues = map[string]string{
		ServerNameSetting: DefaultServerName,
	}

	commonAllowedSettings = map[string]bool{
		ServerNameSetting:       true,
		LogLevelSetting:         true,
		NetworkRateLimitSetting: true,
		StatsdAddressSetting:    true,
		MetricsTextfileSetting:  true,
	}

	// AllowedSettings is filled by ConfigureSettings with the common and storage specific settings.
	AllowedSettings = map[string]bool{}

	secretSettings = map[string]bool{
		s3.AccessKeyIDSetting:     true,
		s3.AccessKeySetting:       true,
		s3.SecretAccessKeySetting: true,
		s3.SecretKeySetting:       true,
		s3.SessionTokenSetting:    true,
		sh.PasswordSetting:        true,
	}
)

func ConfigureSettings() {
	if len(AllowedSettings) != 0 {
		return
	}
	for k, v := range commonAllowedSettings {
		AllowedSettings[k] = v
	}
	for _, adapter := range StorageAdapters {
		for _, setting := range adapter.settingNames {
			AllowedSettings[setting] = true
		}
		AllowedSettings[adapter.PrefixSettingKey()] = true
	}
}

func isAllowedSetting(setting string, allowedSettings map[string]bool) (exists bool) {
	_, exists = allowedSettings[setting]
	return
}

// GetSetting extract setting by key if key is set, return empty string otherwise
func GetSetting(key string) (value string, ok bool) {
	if viper.IsSet(key) {
		return viper.GetString(key), true
	}
	return "", false
}

// Configure sets up logging and dumps the effective environment in DEVEL mode.
func Configure() {
	err := ConfigureLogging()
	if err != nil {
		tracelog.ErrorLogger.Println("Failed to configure logging.")
		tracelog.ErrorLogger.FatalError(err)
	}

	var buff bytes.Buffer
	buff.WriteString("--- COMPILED ENVIRONMENT VARS ---\n")

	var keys []string
	for k := range viper.AllSettings() {
		keys = append(keys, strings.ToUpper(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		val, ok := os.LookupEnv(k)
		if !ok {
			continue
		}
		if secretSettings[k] && val != "" {
			val = "--HIDDEN--"
		}
		fmt.Fprintf(&buff, "\t%s=%s\n", k, val)
	}

	tracelog.DebugLogger.Print(buff.String())
}

func ConfigureLogging() error {
	if logLevel, ok := GetSetting(LogLevelSetting); ok {
		return tracelog.UpdateLogLevel(logLevel)
	}
	return nil
}

// ConfigureLimiter returns the read limiter for storage, nil when no limit is configured.
func ConfigureLimiter() (*rate.Limiter, error) {
	value, ok := GetSetting(NetworkRateLimitSetting)
	if !ok || value == "" {
		return nil, nil
	}
	bytesPerSecond, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, NewInvalidSettingError(NetworkRateLimitSetting, value, err)
	}
	if bytesPerSecond < 0 {
		return nil, NewInvalidSettingError(NetworkRateLimitSetting, value, errors.New("must not be negative"))
	}
	return limiters.NewNetworkLimiter(bytesPerSecond), nil
}

// ConfigureStorage picks the first storage adapter whose prefix setting is set.
func ConfigureStorage() (Storage, error) {
	return ConfigureStorageForSpecificConfig(viper.GetViper())
}

func ConfigureStorageForSpecificConfig(config *viper.Viper) (Storage, error) {
	var prefixSettings []string
	for _, adapter := range StorageAdapters {
		prefixSettings = append(prefixSettings, adapter.PrefixSettingKey())
		if !config.IsSet(adapter.PrefixSettingKey()) {
			continue
		}
		prefix := config.GetString(adapter.PrefixSettingKey())
		if adapter.prefixPreprocessor != nil {
			prefix = adapter.prefixPreprocessor(prefix)
		}

		st, err := adapter.configureStorage(prefix, adapter.loadSettings(config))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to configure %s storage", adapter.prefixName)
		}
		tracelog.DebugLogger.Printf("Configured storage %s", st.RootFolder().GetPath())
		return st, nil
	}
	return nil, NewUnsetRequiredSettingError(prefixSettings...)
}

// ConfigureServer builds the server context from WALG_SERVER_NAME on top of the storage root,
// throttling reads when WALG_NETWORK_RATE_LIMIT is set.
func ConfigureServer(st Storage) (Server, error) {
	limiter, err := ConfigureLimiter()
	if err != nil {
		return Server{}, err
	}

	root := st.RootFolder()
	if limiter != nil {
		root = NewLimitedFolder(root, limiter)
	}

	name, _ := GetSetting(ServerNameSetting)
	return NewServer(name, root)
}

func AddConfigFlags(cmd *cobra.Command, hiddenCfgFlagAnnotation string) {
	cfgFlags := &pflag.FlagSet{}
	for k := range AllowedSettings {
		flagName := toFlagName(k)
		cfgFlags.String(flagName, "", "")
		_ = viper.BindPFlag(k, cfgFlags.Lookup(flagName))
	}
	cfgFlags.VisitAll(func(f *pflag.Flag) {
		if f.Annotations == nil {
			f.Annotations = map[string][]string{}
		}
		f.Annotations[hiddenCfgFlagAnnotation] = []string{"true"}
	})
	cmd.PersistentFlags().AddFlagSet(cfgFlags)
}

// InitConfig reads config file and ENV variables if set.
func InitConfig() {
	var globalViper = viper.GetViper()
	globalViper.AutomaticEnv()
	SetDefaultValues(globalViper)
	ReadConfigFromFile(globalViper, CfgFile)
	CheckAllowedSettings(globalViper)
}

// ReadConfigFromFile read config to the viper instance
func ReadConfigFromFile(config *viper.Viper, configFile string) {
	if configFile != "" {
		config.SetConfigFile(configFile)
	} else {
		usr, err := user.Current()
		tracelog.ErrorLogger.FatalOnError(err)

		config.AddConfigPath(usr.HomeDir)
		config.SetConfigName(DefaultConfigName)
	}

	err := config.ReadInConfig()
	if err == nil {
		tracelog.DebugLogger.Println("Using config file:", config.ConfigFileUsed())
	} else if config.ConfigFileUsed() != "" {
		// Config file is found, but parsing failed
		tracelog.WarningLogger.Printf("Failed to parse config file %s. %s.", config.ConfigFileUsed(), err)
	}
}

// SetDefaultValues set default settings to the viper instance
func SetDefaultValues(config *viper.Viper) {
	for setting, value := range defaultConfigValues {
		config.SetDefault(setting, value)
	}
}

// CheckAllowedSettings warns about every setting of the viper instance that is not allowed.
// It returns the unknown keys.
func CheckAllowedSettings(config *viper.Viper) []string {
	var unknown []string
	for k := range config.AllSettings() {
		k = strings.ToUpper(k)
		if !isAllowedSetting(k, AllowedSettings) {
			tracelog.WarningLogger.Println(k + " is unknown")
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func toFlagName(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}
