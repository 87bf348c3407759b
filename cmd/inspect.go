package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var inspectTimeout time.Duration

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Read the users resource once and report what it holds",
	Long:  `Reads and parses the configured users resource, exactly as a page request would, and prints the number of users.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		commonSetUp()

		ctx, cancel := context.WithTimeout(context.Background(), inspectTimeout)
		defer cancel()

		accessor, err := initializeAccessor(ctx, appCfg.Data)
		if err != nil {
			return err
		}

		res := <-accessor.LoadAsync(log.Logger.WithContext(ctx))
		if res.Err != nil {
			log.Error().Err(res.Err).Msg("Failed to load users resource")
			return res.Err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d users\n", accessor.Source.Name(), len(res.Collection.Users))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().DurationVar(&inspectTimeout, "timeout", 30*time.Second, "time allowed for the read")
}
