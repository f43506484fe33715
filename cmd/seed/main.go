package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Rajeshpandey9807/radhira-pos-backend/config"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Bulk product importer. Reads an XLSX with the columns
// Name, Code, Category, Price, TaxRate, Stock, Unit and inserts the
// rows in batches. Categories are created on first use.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	productRepo := repository.NewProductRepository(db.GetDB())
	categoryRepo := repository.NewLookupRepository[model.Category, *model.Category](db.GetDB(), "category")

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath, categoryRepo)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func readProductsFromXLSX(
	filePath string,
	categoryRepo *repository.LookupRepository[model.Category, *model.Category],
) ([]model.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	seenCodes := make(map[string]bool)
	categoryIDs := make(map[string]uint)
	skippedCount := 0

	for i, row := range rows {
		// First row is the header.
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 4 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(cell(row, 0))
		code := strings.TrimSpace(cell(row, 1))
		category := strings.TrimSpace(cell(row, 2))
		priceStr := strings.TrimSpace(cell(row, 3))
		taxStr := strings.TrimSpace(cell(row, 4))
		stockStr := strings.TrimSpace(cell(row, 5))
		unit := strings.TrimSpace(cell(row, 6))

		if name == "" || code == "" {
			skippedCount++
			continue
		}
		if seenCodes[code] {
			skippedCount++
			continue
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			skippedCount++
			continue
		}

		taxRate, _ := strconv.ParseFloat(taxStr, 64)
		stock, _ := strconv.Atoi(stockStr)
		if stock < 0 {
			stock = 0
		}
		if unit == "" {
			unit = "pcs"
		}

		product := model.Product{
			Name:    name,
			Code:    code,
			Price:   price,
			TaxRate: taxRate,
			Stock:   stock,
			Unit:    unit,
			Active:  true,
		}

		if category != "" {
			id, err := resolveCategory(categoryRepo, categoryIDs, category)
			if err != nil {
				return nil, err
			}
			product.CategoryID = &id
		}

		seenCodes[code] = true
		products = append(products, product)
	}

	fmt.Printf("Skipped rows: %d\n", skippedCount)
	return products, nil
}

// resolveCategory finds or creates the named category, caching ids
// for the duration of the import.
func resolveCategory(
	repo *repository.LookupRepository[model.Category, *model.Category],
	cache map[string]uint,
	name string,
) (uint, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	existing, err := repo.List()
	if err != nil {
		return 0, fmt.Errorf("failed to list categories: %w", err)
	}
	for i := range existing {
		if strings.EqualFold(existing[i].Name, name) {
			cache[name] = existing[i].ID
			return existing[i].ID, nil
		}
	}

	category := &model.Category{}
	category.Name = name
	category.Active = true
	if err := repo.Create(category); err != nil {
		return 0, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	cache[name] = category.ID
	return category.ID, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
