// Seeds the category tree from a YAML file. Existing categories and
// subcategories are matched by name and updated, so the seed is safe to
// re-run against a live database.
package main

import (
	"errors"
	"log"
	"os"

	"gopkg.in/yaml.v2"
	"gorm.io/gorm"

	"github.com/improvemycity/portal-go/config"
	"github.com/improvemycity/portal-go/db"
	"github.com/improvemycity/portal-go/models"
)

type seedSubCategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type seedCategory struct {
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description"`
	SubCategories []seedSubCategory `yaml:"subcategories"`
}

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
}

func main() {
	config.LoadConfig()
	db.Init()

	raw, err := os.ReadFile(config.SeedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file %s: %v", config.SeedFile, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	for _, sc := range seed.Categories {
		cat, err := upsertCategory(sc)
		if err != nil {
			log.Fatalf("Failed to seed category %q: %v", sc.Name, err)
		}
		for _, sub := range sc.SubCategories {
			if err := upsertSubCategory(cat.ID, sub); err != nil {
				log.Fatalf("Failed to seed subcategory %q: %v", sub.Name, err)
			}
		}
	}

	log.Printf("Seeded %d categories from %s", len(seed.Categories), config.SeedFile)
}

func upsertCategory(sc seedCategory) (models.Category, error) {
	var cat models.Category
	err := db.DB.Where("name = ?", sc.Name).First(&cat).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cat = models.Category{Name: sc.Name, Description: sc.Description}
		return cat, db.DB.Create(&cat).Error
	case err != nil:
		return cat, err
	}

	cat.Description = sc.Description
	return cat, db.DB.Save(&cat).Error
}

func upsertSubCategory(categoryID uint, sc seedSubCategory) error {
	var sub models.SubCategory
	err := db.DB.Where("category_id = ? AND name = ?", categoryID, sc.Name).First(&sub).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = models.SubCategory{CategoryID: categoryID, Name: sc.Name, Description: sc.Description}
		return db.DB.Create(&sub).Error
	case err != nil:
		return err
	}

	sub.Description = sc.Description
	return db.DB.Save(&sub).Error
}
