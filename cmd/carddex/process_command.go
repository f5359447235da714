package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"carddex/internal/assets"
	"carddex/internal/catalog"
	"carddex/internal/hashcache"
	"carddex/internal/logging"
	"carddex/internal/process"
	"carddex/internal/sets"
	"carddex/internal/store"
	"carddex/internal/zone"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [set-name]",
		Short: "Build card databases from local images and the online catalog",
		Long: "Process matches local card images against the online catalog and writes " +
			"JSON database files. With a set name only that set is processed; without " +
			"arguments every configured set is processed and the cross-set databases " +
			"are written.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			library := sets.Default()
			var targets []sets.Set
			if len(args) == 1 {
				set, ok := library.ByName(args[0])
				if !ok {
					return fmt.Errorf("unknown set %q (known sets: %s)", args[0], strings.Join(library.Names(), ", "))
				}
				targets = []sets.Set{set}
			} else {
				targets = library.All()
			}

			client, err := zone.New(cfg.Zone.BaseURL, time.Duration(cfg.Zone.RequestTimeout)*time.Second)
			if err != nil {
				return err
			}

			var cache *hashcache.Cache
			if cfg.Cache.Enabled {
				cache, err = hashcache.Open(cfg.Cache.Path, logger)
				if err != nil {
					return err
				}
				defer cache.Close()
			}

			processor := process.New(process.Options{
				Builder:     catalog.NewBuilder(client, cache, cfg.Zone.PromoPath, logger),
				Assets:      assets.NewStore(cfg.Paths.AssetsDir),
				MaxDistance: cfg.Matching.MaxDistance,
				StripTokens: cfg.Matching.NumberStripTokens,
				Logger:      logger,
			})
			sink := store.NewSink(cfg.Paths.OutputDir, logger)

			if len(args) == 1 {
				return runSingleSet(cmd, processor, sink, targets[0])
			}
			return runAllSets(cmd, ctx, cfg.Matching.NumberStripTokens, processor, sink, targets)
		},
	}
	return cmd
}

func runSingleSet(cmd *cobra.Command, processor *process.Processor, sink *store.Sink, set sets.Set) error {
	result, err := processor.ProcessSet(cmd.Context(), set)
	if err != nil {
		return err
	}

	if err := sink.Write(store.SetDatabaseName(set.SetInitials()), result.Regular); err != nil {
		return err
	}
	if err := sink.Write(store.PromoDatabaseName, result.Promo); err != nil {
		return err
	}

	printReports(cmd, []process.Report{result.Report})
	return nil
}

func runAllSets(cmd *cobra.Command, ctx *commandContext, stripTokens []string, processor *process.Processor, sink *store.Sink, targets []sets.Set) error {
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	aggregate := process.NewAggregate()
	reports := make([]process.Report, 0, len(targets))
	failures := 0
	for _, set := range targets {
		result, err := processor.ProcessSet(cmd.Context(), set)
		if err != nil {
			if cmd.Context().Err() != nil {
				return cmd.Context().Err()
			}
			logger.Warn("set aborted", logging.String("set", set.Name), logging.Error(err))
			failures++
			continue
		}
		aggregate.Add(result)
		reports = append(reports, result.Report)
	}
	aggregate.Sort(stripTokens)

	if err := sink.Write(store.FullDatabaseName, aggregate.Regular); err != nil {
		return err
	}
	if err := sink.Write(store.FullPromoDatabaseName, aggregate.Promo); err != nil {
		return err
	}

	printReports(cmd, reports)
	if failures > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d set(s) aborted; see the log for details\n", failures)
	}
	return nil
}

func printReports(cmd *cobra.Command, reports []process.Report) {
	if len(reports) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, []string{
			report.SetName,
			strconv.Itoa(report.CatalogEntries),
			strconv.Itoa(report.LocalImages),
			strconv.Itoa(report.Matched),
			strconv.Itoa(report.Skipped(process.SkipNoMatch)),
			strconv.Itoa(len(report.Skips) - report.Skipped(process.SkipNoMatch)),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Set", "Catalog", "Local", "Matched", "No Match", "Skipped"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
		isTerminal(out),
	))
}
