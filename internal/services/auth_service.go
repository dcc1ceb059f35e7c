package services

import (
	"errors"
	"sync"

	"studyport/internal/repository"
	"studyport/pkg/database"

	"github.com/google/uuid"
)

// Role определяет роль сессии
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Session представляет авторизованную сессию. Значение сессии явно
// передается в компоненты, которым нужна личность и роль вызывающего.
type Session struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	Role      Role   `json:"role"`
}

// IsAdmin сообщает, принадлежит ли сессия администратору
func (s *Session) IsAdmin() bool { return s != nil && s.Role == RoleAdmin }

// Ошибки авторизации
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

// AuthService владеет жизненным циклом сессий: вход, выход, проверка
type AuthService interface {
	Login(username, password string) (*Session, error)
	AdminLogin(password string) (*Session, error)
	Logout(sessionID string)
	Get(sessionID string) (*Session, error)
}

// authService реализация сервиса авторизации. Проверка пароля —
// простое сравнение с открытым текстом, без хеширования и выпуска
// токенов: известная слабость исходной системы, сохранена намеренно.
type authService struct {
	studentRepo repository.StudentRepository
	store       *database.Database

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewAuthService создает новый сервис авторизации
func NewAuthService(studentRepo repository.StudentRepository, store *database.Database) AuthService {
	return &authService{
		studentRepo: studentRepo,
		store:       store,
		sessions:    make(map[string]*Session),
	}
}

// Login авторизует ученика по имени пользователя и паролю
func (s *authService) Login(username, password string) (*Session, error) {
	student, err := s.studentRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if student.Password != password {
		return nil, ErrInvalidCredentials
	}
	return s.create(student.ID, RoleStudent), nil
}

// AdminLogin авторизует администратора по паролю из настроек
func (s *authService) AdminLogin(password string) (*Session, error) {
	stored, err := s.store.GetSetting(database.SettingAdminPassword)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if stored != password {
		return nil, ErrInvalidCredentials
	}
	return s.create("", RoleAdmin), nil
}

// Logout завершает сессию
func (s *authService) Logout(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Get возвращает сессию по идентификатору
func (s *authService) Get(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *authService) create(studentID string, role Role) *Session {
	session := &Session{
		ID:        uuid.New().String(),
		StudentID: studentID,
		Role:      role,
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}
