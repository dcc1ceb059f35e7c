package main

import (
	"log"

	"studyport/internal/models"
	"studyport/pkg/database"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func main() {
	// Открываем локальное хранилище
	db, err := database.Open("data/studyport.db")
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Создаем тестовую группу учеников
	students := []models.Student{
		{
			ID:         uuid.New().String(),
			Username:   "aarav.m",
			Password:   "aarav123",
			Curriculum: models.CurriculumIGCSE,
			Batch:      "fm5-25",
			Topics:     datatypes.NewJSONSlice(models.TopicTemplate(models.CurriculumIGCSE)),
			Assessments: datatypes.NewJSONSlice([]models.Assessment{
				{ID: "a1", Title: "Algebra Quiz", Topic: "Algebra and graphs", Percentage: 72, Date: "2025-08-14"},
			}),
		},
		{
			ID:         uuid.New().String(),
			Username:   "diya.s",
			Password:   "diya123",
			Curriculum: models.CurriculumMYP,
			Batch:      "fm5-25",
			Topics:     datatypes.NewJSONSlice(models.TopicTemplate(models.CurriculumMYP)),
		},
	}

	for i := range students {
		if err := db.DB.Create(&students[i]).Error; err != nil {
			log.Fatalf("Failed to create student: %v", err)
		}
	}

	// Ресурсы группы
	resources := []models.BatchResource{
		{
			ID:       uuid.New().String(),
			Title:    "Quadratics worksheet",
			URL:      "https://example.com/quadratics.pdf",
			Category: models.ResourceStudyMaterial,
			BatchID:  "fm5-25",
			TopicID:  "topic-2",
		},
		{
			ID:       uuid.New().String(),
			Title:    "Term 1 syllabus",
			URL:      "https://example.com/term1.pdf",
			Category: models.ResourceTermSyllabus,
			BatchID:  "fm5-25",
		},
	}

	for i := range resources {
		if err := db.DB.Create(&resources[i]).Error; err != nil {
			log.Fatalf("Failed to create resource: %v", err)
		}
	}

	log.Printf("Seeded %d students and %d resources", len(students), len(resources))
}
