package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/alcu-explorer/internal/tui"
	"github.com/pdiddy/alcu-explorer/pkg/types"
)

const defaultUserAgent = "alcu-explorer/0.1"

// setDefaults registers the ambient settings a config file may override.
func setDefaults() {
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("search.page_size", 25)
	viper.SetDefault("search.page_delay", time.Second)
	viper.SetDefault("download.dir", "pdfs")
	viper.SetDefault("download.delay", 100*time.Millisecond)
	viper.SetDefault("export.dir", ".")
}

func runExplore(cmd *cobra.Command, args []string) error {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}

	opts := tui.RunOpts{
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			PageSize:   viper.GetInt("search.page_size"),
			PageDelay:  viper.GetDuration("search.page_delay"),
		},
		Download: types.DownloadConfig{
			HTTPConfig: httpCfg,
			Delay:      viper.GetDuration("download.delay"),
			Dir:        viper.GetString("download.dir"),
		},
		ExportDir: viper.GetString("export.dir"),
	}

	return tui.Run(opts)
}
