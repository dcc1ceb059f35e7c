package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"studyport/internal/models"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SchemaVersion — текущая версия схемы локального хранилища.
// Миграции строго аддитивны: новая версия только добавляет таблицы.
const SchemaVersion = 3

// Ключи служебных настроек
const (
	SettingSchemaVersion = "schema_version"
	SettingAdminPassword = "admin_password"
	SettingCloudEndpoint = "cloud_endpoint"
	SettingFolderName    = "folder_name"
	SettingLastBackup    = "last_backup"
)

// ErrSettingNotFound возвращается, когда настройка отсутствует
var ErrSettingNotFound = errors.New("setting not found")

// Database представляет локальное хранилище — систему записи приложения
type Database struct {
	DB *gorm.DB
}

// Open открывает (или создает) локальное хранилище по указанному пути,
// выполняет миграцию схемы и заполняет значения по умолчанию.
// Повторный вызов с той же базой безопасен.
func Open(dbPath string) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := database.seedDefaults(); err != nil {
		return nil, fmt.Errorf("failed to seed defaults: %w", err)
	}

	return database, nil
}

// migrate доводит схему до SchemaVersion. Каждый шаг только создает
// недостающие таблицы, существующие данные не трогаются. Неудачная
// миграция делает хранилище непригодным к открытию.
func (d *Database) migrate() error {
	// Таблица настроек нужна до чтения версии схемы
	if err := d.DB.AutoMigrate(&models.Setting{}); err != nil {
		return err
	}

	current := 0
	if value, err := d.GetSetting(SettingSchemaVersion); err == nil {
		if parsed, perr := strconv.Atoi(value); perr == nil {
			current = parsed
		}
	}

	if current < 1 {
		if err := d.DB.AutoMigrate(&models.Student{}); err != nil {
			return err
		}
	}
	if current < 2 {
		if err := d.DB.AutoMigrate(
			&models.BatchResource{},
			&models.AssessmentTask{},
			&models.ChallengeImage{},
			&models.StoredFile{},
		); err != nil {
			return err
		}
	}
	if current < 3 {
		if err := d.DB.AutoMigrate(
			&models.SyllabusPortion{},
			&models.PeerMarkingTask{},
		); err != nil {
			return err
		}
	}

	if current != SchemaVersion {
		if err := d.PutSetting(SettingSchemaVersion, strconv.Itoa(SchemaVersion)); err != nil {
			return err
		}
	}

	return nil
}

// Close закрывает подключение к базе данных
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetSetting возвращает значение настройки по ключу
func (d *Database) GetSetting(key string) (string, error) {
	var setting models.Setting
	err := d.DB.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// PutSetting сохраняет значение настройки, перезаписывая существующее
func (d *Database) PutSetting(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return d.DB.Save(&setting).Error
}

// ensureSetting записывает значение только если ключ еще не существует
func (d *Database) ensureSetting(key, value string) error {
	_, err := d.GetSetting(key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrSettingNotFound) {
		return err
	}
	return d.PutSetting(key, value)
}

// seedDefaults заполняет хранилище стартовыми данными: демо-ученики,
// пароль администратора и адрес облачного сервиса. Существующие записи
// никогда не перезаписываются и не дублируются.
func (d *Database) seedDefaults() error {
	if err := d.ensureSetting(SettingAdminPassword, "admin"); err != nil {
		return err
	}
	if err := d.ensureSetting(SettingCloudEndpoint, ""); err != nil {
		return err
	}
	if err := d.ensureSetting(SettingFolderName, "StudyPort"); err != nil {
		return err
	}

	for _, seed := range seedStudents() {
		var count int64
		if err := d.DB.Model(&models.Student{}).Where("id = ?", seed.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := d.DB.Create(&seed).Error; err != nil {
			return fmt.Errorf("failed to create seed student %s: %w", seed.ID, err)
		}
	}

	return nil
}

// seedStudents возвращает шаблонных учеников для демонстрации
func seedStudents() []models.Student {
	return []models.Student{
		{
			ID:         "demo-igcse",
			Username:   "demo.igcse",
			Password:   "demo",
			Curriculum: models.CurriculumIGCSE,
			Batch:      "demo",
			Topics:     datatypes.NewJSONSlice(models.TopicTemplate(models.CurriculumIGCSE)),
		},
		{
			ID:         "demo-myp",
			Username:   "demo.myp",
			Password:   "demo",
			Curriculum: models.CurriculumMYP,
			Batch:      "demo",
			Topics:     datatypes.NewJSONSlice(models.TopicTemplate(models.CurriculumMYP)),
		},
	}
}

// ClearAll очищает все коллекции хранилища, включая настройки
func (d *Database) ClearAll() error {
	tables := []interface{}{
		&models.Student{},
		&models.BatchResource{},
		&models.AssessmentTask{},
		&models.ChallengeImage{},
		&models.SyllabusPortion{},
		&models.PeerMarkingTask{},
		&models.StoredFile{},
		&models.Setting{},
	}
	for _, table := range tables {
		if err := d.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
