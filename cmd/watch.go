package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/formalverse/flin/check"
	"github.com/formalverse/flin/formatter"
	"github.com/formalverse/flin/internal"
	tt "github.com/formalverse/flin/internal/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Watch directories and re-check formula files on change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directories to watch")
			os.Exit(1)
		}

		engine, err := check.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize check engine", zap.Error(err))
		}

		err = engine.StartWatching(args, func(filename string, issues []tt.Issue, err error) {
			if err != nil {
				logger.Error("Watch error", zap.String("file", filename), zap.Error(err))
				return
			}
			if len(issues) == 0 {
				logger.Info("File is clean", zap.String("file", filename))
				return
			}
			sourceCode, err := internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				return
			}
			fmt.Println(formatter.GenerateFormattedIssue(issues, sourceCode))
		})
		if err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}

		logger.Info("Watching for changes", zap.Strings("dirs", args))

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		<-interrupt

		if err := engine.StopWatching(); err != nil {
			logger.Error("Error stopping watcher", zap.Error(err))
		}
	},
}
