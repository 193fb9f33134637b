package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	appanalytics "github.com/jhoicas/lunchcontrol-api/internal/application/analytics"
	"github.com/jhoicas/lunchcontrol-api/internal/application/ports"
	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	infrapdf "github.com/jhoicas/lunchcontrol-api/internal/infrastructure/pdf"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/xmlexport"
)

var (
	reportType   string
	reportPeriod string
	reportFormat string
	reportOut    string
)

// reportCmd exporta un reporte desde el snapshot persistido (herramienta de operador).
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a report from the persisted snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		loc, err := cfg.App.Location()
		if err != nil {
			return err
		}
		renderers := map[string]ports.TableRenderer{
			"csv": appanalytics.CSVRenderer{},
			"pdf": infrapdf.NewReportRenderer(cfg.App.Name),
			"xml": xmlexport.Renderer{},
		}
		r, ok := renderers[reportFormat]
		if !ok {
			return fmt.Errorf("formato inválido: %q (csv|pdf|xml)", reportFormat)
		}

		ctx := cmd.Context()
		store, closeStore, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		var file *appanalytics.ExportFile
		err = store.View(func(st *state.State) error {
			f, err := appanalytics.Export(st, reportType, reportPeriod, time.Now().In(loc), r)
			file = f
			return err
		})
		if err != nil {
			return err
		}

		out := reportOut
		if out == "" {
			out = file.Filename
		} else if info, err := os.Stat(out); err == nil && info.IsDir() {
			out = filepath.Join(out, file.Filename)
		}
		if err := os.WriteFile(out, file.Content, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", out, err)
		}
		fmt.Printf("✅  Reporte escrito en %s (%d bytes)\n", out, len(file.Content))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportType, "type", appanalytics.ReportSales, "sales | products | orders | customers")
	reportCmd.Flags().StringVar(&reportPeriod, "period", appanalytics.PeriodToday, "today | week | month | all")
	reportCmd.Flags().StringVar(&reportFormat, "format", "csv", "csv | pdf | xml")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output file or directory (default: generated filename)")
}
