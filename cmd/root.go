package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tabula/tabula/internal/config"
	"github.com/tabula/tabula/internal/config/data"
	"github.com/tabula/tabula/internal/model"
	"github.com/tabula/tabula/internal/model1"
	"github.com/tabula/tabula/internal/render"
	"github.com/tabula/tabula/internal/story"
	"github.com/tabula/tabula/internal/view"
)

const (
	appName    = "tabula"
	appVersion = "0.1.0"
)

var (
	tabulaFlags *data.Flags
	showFlags   struct {
		sort  string
		order string
		pages int
	}

	rootCmd = &cobra.Command{
		Use:          appName,
		Short:        "A terminal catalog of async tables",
		Long:         `tabula browses sample tables backed by paginated, sortable data sources.`,
		SilenceUsage: true,
		RunE:         run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	}
	storiesCmd = &cobra.Command{
		Use:   "stories",
		Short: "List the available stories",
		RunE:  listStories,
	}
	showCmd = &cobra.Command{
		Use:   "show <story>",
		Short: "Load a story headlessly and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  showStory,
	}
)

func init() {
	tabulaFlags = config.NewFlags()
	initTabulaFlags()
	initShowFlags()
	rootCmd.AddCommand(versionCmd, storiesCmd, showCmd)
}

func initTabulaFlags() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(tabulaFlags.LogLevel, "logLevel", "l", "", "Log level (debug, info, warn, error)")
	pf.StringVar(tabulaFlags.LogFile, "logFile", "", "Log file path")
	pf.StringVar(tabulaFlags.ConfigFile, "config", "", "Config file path")
	pf.StringVar(tabulaFlags.Timeout, "timeout", "", "Request timeout, e.g. 10s")
	pf.StringVar(tabulaFlags.Delay, "delay", "", "Delay before each remote load, e.g. 2s")
	rootCmd.Flags().StringVarP(tabulaFlags.Story, "story", "s", "", "Story to open on start")
}

func initShowFlags() {
	showCmd.Flags().StringVar(&showFlags.sort, "sort", "", "Column to sort by")
	showCmd.Flags().StringVar(&showFlags.order, "order", "asc", "Sort direction (asc, desc)")
	showCmd.Flags().IntVar(&showFlags.pages, "pages", 1, "Number of pages to load")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

// bootstrap loads the config, aliases and logger shared by all commands.
func bootstrap() (*config.Config, *config.Aliases, *slog.Logger, io.Closer, error) {
	if err := config.InitLocs(); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize locations: %w", err)
	}

	cfgFile := config.AppConfigFile
	force := config.IsStringSet(tabulaFlags.ConfigFile)
	if force {
		cfgFile = *tabulaFlags.ConfigFile
	}
	cfg := config.NewConfig()
	if err := cfg.Load(cfgFile, force); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Refine(tabulaFlags)

	aliases := config.NewAliases()
	if err := aliases.Load(); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load aliases: %w", err)
	}

	logFile := config.AppLogFile
	if config.IsStringSet(tabulaFlags.LogFile) {
		logFile = *tabulaFlags.LogFile
	}
	logger, closer, err := config.NewLogger(cfg.Tabula.Logger.Level, logFile)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return cfg, aliases, logger, closer, nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, aliases, logger, closer, err := bootstrap()
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting", "version", appVersion, "story", cfg.Tabula.DefaultStory)
	_ = cfg.Save(config.AppConfigFile, false)

	app := view.NewApp(cfg, aliases, story.NewEnv(cfg.Tabula, logger), logger, appVersion)
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	go func() {
		<-cmd.Context().Done()
		app.Stop()
	}()

	return app.Run(cfg.Tabula.DefaultStory)
}

func listStories(cmd *cobra.Command, _ []string) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Title", "Columns", "Description"})
	for _, s := range story.All() {
		t.AppendRow(table.Row{s.Name, s.Title, len(s.Header), s.Description})
	}
	t.Render()

	return nil
}

func showStory(cmd *cobra.Command, args []string) error {
	cfg, aliases, logger, closer, err := bootstrap()
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := story.Get(aliases.Get(args[0]))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	list, err := s.NewList(ctx, story.NewEnv(cfg.Tabula, logger))
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("sort") || cmd.Flags().Changed("order") {
		dir, err := model1.ParseDirection(showFlags.order)
		if err != nil {
			return err
		}
		if err := list.Sort(model1.SortDescriptor{Column: showFlags.sort, Direction: dir}); err != nil {
			return err
		}
	}

	data, err := fetchPages(ctx, list, showFlags.pages, cfg.Tabula.Timeout())
	if err != nil {
		return err
	}

	return render.NewPrinter(cmd.OutOrStdout(), s.Title).Print(data)
}

type fetchResult struct {
	ok  bool
	err error
}

// fetchPages loads up to n pages. A page not in after wait is cancelled and
// the snapshot taken while it was pending is returned.
func fetchPages(ctx context.Context, list *model.AsyncList, n int, wait time.Duration) (*model1.TableData, error) {
	for range n {
		fctx, cancel := context.WithCancel(ctx)
		done := make(chan fetchResult, 1)
		go func() {
			ok, err := list.FetchMore(fctx)
			done <- fetchResult{ok: ok, err: err}
		}()

		select {
		case r := <-done:
			cancel()
			if r.err != nil {
				return nil, r.err
			}
			if !r.ok {
				return list.Peek(), nil
			}
		case <-time.After(wait):
			pending := list.Peek()
			cancel()
			<-done
			return pending, nil
		}
	}

	return list.Peek(), nil
}
