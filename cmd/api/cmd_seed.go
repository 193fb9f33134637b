package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/lunchcontrol-api/internal/application/seed"
)

var seedForce bool

// seedCmd carga los datos de demostración en el almacén configurado.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo products, orders and users into the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		loc, err := cfg.App.Location()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		store, closeStore, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		seeded, err := seed.Apply(ctx, store, time.Now().In(loc), seedForce)
		if err != nil {
			return err
		}
		if !seeded {
			fmt.Println("El catálogo ya tiene productos; usar --force para reemplazarlo.")
			return nil
		}
		fmt.Printf("✅  Datos de demostración cargados (%d productos, %d usuarios).\n", len(seed.Products()), len(seed.Users()))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "replace existing data")
}
