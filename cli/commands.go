// Package cli provides the Cobra-based CLI for the storefront.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"storefront/catalog"
	"storefront/domain"
	"storefront/filter"
	"storefront/store"
)

var (
	rootCmd = &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the catalog and manage a local shopping cart",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// tests and the shell reuse an existing app
			if app != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvl := parseLevel(viper.GetString("log-level"))
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
			slog.SetDefault(logger)

			kv, err := store.NewStore(viper.GetString("store"), viper.GetString("store-file"))
			if err != nil {
				return err
			}

			cat := catalog.NewDefault()
			if path := viper.GetString("catalog-file"); path != "" {
				if cat, err = catalog.LoadFile(path); err != nil {
					return err
				}
			}

			app, err = newServices(cmd.Context(), kv, cat, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			flushNotices(cmd.ErrOrStderr())
		},
	}

	app *services
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// flushNotices prints and dismisses the queued notifications.
func flushNotices(w io.Writer) {
	if app == nil {
		return
	}
	for _, n := range app.notices.List() {
		fmt.Fprintf(w, "[%s] %s\n", n.Severity, n.Message)
		app.notices.Remove(n.ID)
	}
}

// resetFlags restores every subcommand's local flags so repeated executions start clean.
func resetFlags(c *cobra.Command) {
	c.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}

func printProduct(w io.Writer, p domain.Product) {
	fmt.Fprintf(w, "%d | %s | %.2f | %d | %s | %.1f\n",
		p.ID, p.Name, p.Price, p.Stock, p.Category, p.Rating)
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			for {
				fmt.Fprint(out, "storefront> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				resetFlags(rootCmd)
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "file", "store backend: memory|file")
	rootCmd.PersistentFlags().String("store-file", "data/local.json", "file store path")
	rootCmd.PersistentFlags().String("catalog-file", "", "catalog file (json, ndjson or yaml); built-in catalog when empty")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("store-file", rootCmd.PersistentFlags().Lookup("store-file"))
	viper.BindPFlag("catalog-file", rootCmd.PersistentFlags().Lookup("catalog-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("STOREFRONT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// products
	var search, category, sortBy, output string
	var maxPrice float64
	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "List products with optional search, category, price and sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := app.filters
			f.Reset()
			if cmd.Flags().Changed("search") {
				f.SetSearch(search)
			}
			if cmd.Flags().Changed("category") {
				f.SetCategory(category)
			}
			if cmd.Flags().Changed("max-price") {
				f.SetMaxPrice(maxPrice)
			}
			if cmd.Flags().Changed("sort") {
				key, ok := filter.ParseSortKey(sortBy)
				if !ok {
					return fmt.Errorf("unknown sort key %q (price-asc|price-desc|name|rating)", sortBy)
				}
				f.SetSort(key)
			}

			out := f.Products()
			if output == "json" {
				return printJSON(cmd.OutOrStdout(), out)
			}
			for _, p := range out {
				printProduct(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	productsCmd.Flags().StringVar(&search, "search", "", "case-insensitive text in name or description")
	productsCmd.Flags().StringVar(&category, "category", "", "exact category")
	productsCmd.Flags().Float64Var(&maxPrice, "max-price", 0, "price ceiling (default catalog maximum)")
	productsCmd.Flags().StringVar(&sortBy, "sort", string(filter.SortRating), "price-asc|price-desc|name|rating")
	productsCmd.Flags().StringVar(&output, "output", "", "output format")
	rootCmd.AddCommand(productsCmd)

	// product
	productCmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := app.catalog.Get(id)
			if err != nil {
				if domain.IsProductNotFoundError(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return nil
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	rootCmd.AddCommand(productCmd)

	// categories
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range app.filters.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "max price: %.2f\n", app.filters.MaxAvailablePrice())
			return nil
		},
	}
	rootCmd.AddCommand(categoriesCmd)

	// stats
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cart operation counters for this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := app.registry.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				for _, m := range mf.GetMetric() {
					labels := make([]string, 0, len(m.GetLabel()))
					for _, l := range m.GetLabel() {
						labels = append(labels, l.GetName()+"="+l.GetValue())
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s{%s} %g\n",
						mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
				}
			}
			return nil
		},
	}
	rootCmd.AddCommand(statsCmd)

	rootCmd.AddCommand(newCartCmd())
	addAuthCommands(rootCmd)
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	defer func() {
		if app != nil {
			app.Close()
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}
