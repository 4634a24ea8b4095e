package conf

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults registers the default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("appid", "gonotify")

	v.SetDefault("asset.dir", "")
	v.SetDefault("asset.theme", "default")
	v.SetDefault("asset.cachettl", 10*time.Minute)

	v.SetDefault("log.file", "")
	v.SetDefault("log.rotation", "size")
	v.SetDefault("log.maxsizemb", 100)

	v.SetDefault("urls", []string{})
}
