package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/config"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/database"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/services"
)

// Prints the upcoming-deadline report as a terminal table. Same data the
// /api/alerts endpoint serves, for a quick look without the UI.
func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	report, err := services.DeadlineAlerts(db, time.Now())
	if err != nil {
		log.Fatalf("Failed to compute deadline alerts: %v", err)
	}

	if len(report.Products) == 0 && report.Past == nil {
		fmt.Println("No deadlines within the next 7 days.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Product", "Apply End", "Result", "Purchase End")
	for _, p := range report.Products {
		_ = table.Append([]string{
			p.ProductName,
			strconv.Itoa(p.Counts.ApplyEnd),
			strconv.Itoa(p.Counts.ResultDate),
			strconv.Itoa(p.Counts.PurchaseEnd),
		})
	}
	if report.Past != nil {
		_ = table.Append([]string{
			"(past products)",
			strconv.Itoa(report.Past.ApplyEnd),
			strconv.Itoa(report.Past.ResultDate),
			strconv.Itoa(report.Past.PurchaseEnd),
		})
	}
	if err := table.Render(); err != nil {
		log.Fatalf("Failed to render table: %v", err)
	}
}
