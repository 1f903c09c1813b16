package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wildcam/logging"
	"wildcam/server"
	"wildcam/services"
	"wildcam/store"
	"wildcam/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := store.Open(cfg.Ledger)
		if err != nil {
			return fmt.Errorf("打开账本失败: %w", err)
		}
		defer func() {
			if err := ledger.Close(); err != nil {
				logging.Error().Err(err).Msg("关闭账本失败")
			}
		}()

		catalog := services.NewFileCatalog(cfg.Catalog.Path)
		if _, err := catalog.Load(cmd.Context()); err != nil {
			// 目录可以稍后由维护者补上，启动时只告警
			logging.Warn().Err(err).Str("path", cfg.Catalog.Path).Msg("目录暂不可用")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.NewServer(cfg.Server, services.NewVideoService(catalog, ledger))
		return srv.Run(ctx)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the video catalog",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the catalog and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		videos, err := services.NewFileCatalog(cfg.Catalog.Path).Load(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "INDEX\tTITLE\tTAGS\tEMBED")
		for i, v := range videos {
			embed := utils.YouTubeID(v.URL)
			if embed == "" {
				embed = "(not youtube)"
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i, v.Title, len(v.CuratedTags), embed)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d videos in %s\n", len(videos), cfg.Catalog.Path)
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Inspect user-submitted tags",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger rows in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := store.Open(cfg.Ledger)
		if err != nil {
			return err
		}
		defer ledger.Close()

		rows, err := ledger.All(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tVIDEO\tNAME\tTIMESTAMP\tBY\tCREATED")
		for _, r := range rows {
			by := ""
			if r.ContributedBy != nil {
				by = *r.ContributedBy
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\t%s\n",
				r.ID, r.VideoIndex, r.Name, r.Timestamp, by, r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return w.Flush()
	},
}

var writeCatalogPath string

var importLegacyCmd = &cobra.Command{
	Use:   "import-legacy <videos.json>",
	Short: "Move user-suggested tags from an old videos.json into the ledger",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("读取文件失败: %w", err)
		}

		ledger, err := store.Open(cfg.Ledger)
		if err != nil {
			return err
		}
		defer ledger.Close()

		result, err := utils.ImportLegacyTags(cmd.Context(), data, ledger)
		if err != nil {
			return err
		}

		if writeCatalogPath != "" {
			if err := utils.WriteCatalog(writeCatalogPath, result.Catalog); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d tags from %d videos (%d skipped)\n",
			result.Imported, result.Videos, result.Skipped)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
	tagsCmd.AddCommand(tagsListCmd)
	importLegacyCmd.Flags().StringVar(&writeCatalogPath, "write-catalog", "", "also write the catalog without user tags to this path")
}
