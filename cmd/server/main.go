package main

import (
	"os"

	"github.com/blues/decentrafund/internal/config"
	"github.com/blues/decentrafund/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		cfg        *config.Config
	)

	root := &cobra.Command{
		Use:          "server",
		Short:        "DecentraFund landing page service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 加载配置
			loaded, err := config.LoadFrom(viper.New(), configFile)
			if err != nil {
				return err
			}
			cfg = loaded

			// 初始化日志
			return logger.Init(cfg.Log)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: ./config.yaml)")

	getConfig := func() *config.Config { return cfg }

	serve := newServeCmd(getConfig)
	root.AddCommand(serve)
	root.AddCommand(newFeaturedCmd(getConfig))
	root.AddCommand(newSeedCmd(getConfig))

	// 不带子命令时启动服务
	root.RunE = serve.RunE

	return root
}
