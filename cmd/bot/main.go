package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{}
	err := newRootCmd(app).ExecuteContext(ctx)
	// cobra skips post-run hooks when a command fails
	app.close()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(app *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "bot",
		Short:         "Posts the daily fractal rotation to a chat webhook",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envErr := godotenv.Load()
			if err := app.init(); err != nil {
				return err
			}
			if envErr != nil {
				app.log.Warn(".env file not found")
			}
			return nil
		},
	}

	post := newPostCmd(app)
	root.RunE = post.RunE

	root.AddCommand(post, newPreviewCmd(app), newSeedCmd(app))

	return root
}
