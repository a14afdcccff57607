// cmd/bookstore/main.go

// 本程式為書店庫存管理的互動式主控台。
// 此檔案負責初始化模組（config, logging, inventory, console），
// 庫存僅存在於記憶體中，程式結束即捨棄。

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bookstore/internal/config"
	"bookstore/internal/console"
	"bookstore/internal/inventory"
	"bookstore/internal/logging"
)

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "bookstore",
		Short:         "Interactive in-memory bookstore inventory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv(config.PathEnv)
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// 每次執行附帶 session id，方便在日誌中區分不同次啟動
			logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr).
				With("session", uuid.NewString())
			logger.Debug("config loaded", "path", configPath, "level", cfg.LogLevel)

			// 庫存由此處擁有並注入 console，不使用全域狀態
			store := inventory.NewStore()
			c := console.New(store, stdin, stdout,
				console.WithLogger(logger),
				console.WithBanner(cfg.Banner),
			)
			return c.Run()
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config (env "+config.PathEnv+")")
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
