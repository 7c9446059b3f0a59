package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage configuration",
	Annotations: map[string]string{offlineAnnotation: "true"},
	Long: `View and change settings stored in ~/.tabula/config.toml.

Keys:
  fetch.user_agent             user agent sent to ultimate-guitar.com
  fetch.requests_per_second    request rate limit
  fetch.burst                  requests allowed at once
  fetch.timeout_seconds        timeout of a single request
  cache.backend                memory, sqlite, redis or none
  cache.ttl_minutes            how long fetched pages are reused
  cache.sqlite_dir             directory of the sqlite cache
  cache.redis_addr             redis address
  cache.redis_db               redis database number
  browse.page_timeout_seconds  idle time before a browse session ends
  browse.default_limit         result count when --limit is not given
  browse.ui                    auto, tui or console`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	values, err := settingsService.Values()
	if err != nil {
		return err
	}
	for _, v := range values {
		cmd.Printf("%s = %s\n", v.Key, v.Value)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	values, err := settingsService.Values()
	if err != nil {
		return err
	}
	for _, v := range values {
		if v.Key == args[0] {
			cmd.Println(v.Value)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidArgument, args[0])
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	cmd.Println(settingsService.Path())
	return nil
}
