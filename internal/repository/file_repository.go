package repository

import (
	"studyport/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FileRepository интерфейс для работы со встроенным blob-хранилищем
type FileRepository interface {
	Put(file *models.StoredFile) error
	GetByID(id string) (*models.StoredFile, error)
	Delete(id string) error
	List() ([]models.StoredFile, error)
}

type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository создает новый репозиторий файлов
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Put(file *models.StoredFile) error {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(file).Error
}

func (r *fileRepository) GetByID(id string) (*models.StoredFile, error) {
	var file models.StoredFile
	err := r.db.First(&file, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) Delete(id string) error {
	return r.db.Delete(&models.StoredFile{}, "id = ?", id).Error
}

func (r *fileRepository) List() ([]models.StoredFile, error) {
	var files []models.StoredFile
	err := r.db.Find(&files).Error
	return files, err
}
