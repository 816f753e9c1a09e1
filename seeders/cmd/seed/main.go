package main

import (
	"context"
	"flag"
	"log"

	"asset-system/pkg/config"
	"asset-system/pkg/database/postgresql"
	"asset-system/seeders"
)

func main() {
	runAdmin := flag.Bool("admin", false, "create the default admin profile")
	runSamples := flag.Bool("samples", false, "insert demo equipments")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runAdmin && !*runSamples && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	ctx := context.Background()

	if *runAdmin || *runAll {
		if err := seeders.SeedAdminUser(ctx, db, cfg); err != nil {
			log.Fatalf("admin seeder: %v", err)
		}
		log.Println("admin profile ready")
	}
	if *runSamples || *runAll {
		if err := seeders.SeedSampleEquipments(ctx, db); err != nil {
			log.Fatalf("equipment seeder: %v", err)
		}
		log.Println("sample equipments ready")
	}
}
