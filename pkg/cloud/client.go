package cloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Ключи настроек, заполняемые локальным хранилищем
const (
	settingEndpoint = "cloud_endpoint"
	settingFolder   = "folder_name"
)

// Result — единый ответ облачного сервиса. Транспорт никогда не
// возвращает ошибку Go: любой сбой превращается в Result с
// result = "error", чтобы политики синхронизации писались
// прямолинейно, без обработки исключений на каждом вызове.
type Result struct {
	Result string          `json:"result"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// OK сообщает, завершился ли запрос успешно
func (r Result) OK() bool { return r.Result == "success" }

// DecodeData разбирает поле data в переданную структуру.
// Пустое data — валидный успешный ответ "не найдено", не ошибка.
func (r Result) DecodeData(v interface{}) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

// Errorf строит единообразный ответ об ошибке. Политики синхронизации
// используют его и для локальных сбоев, чтобы весь слой возвращал
// один тип результата.
func Errorf(format string, args ...interface{}) Result {
	return Result{Result: "error", Error: fmt.Sprintf(format, args...)}
}

// SettingsSource отдает настройки подключения. Адрес сервиса и имя
// папки читаются заново на каждый запрос, чтобы смена настроек
// действовала немедленно, без перезапуска.
type SettingsSource interface {
	GetSetting(key string) (string, error)
}

// Request описывает один вызов облачного сервиса
type Request struct {
	Action    Action
	BatchID   string
	StudentID string
	Filename  string
	MimeType  string
	Data      interface{}
}

// Client — транспорт к облачному сервису: один HTTP-эндпоинт,
// диспетчеризация по имени действия.
type Client struct {
	settings   SettingsSource
	secret     string
	httpClient *http.Client
}

// NewClient создает транспорт. Секрет общий для всех запросов —
// грубая аутентификация без привязки к пользователю, известная
// слабость, сохранена намеренно.
func NewClient(settings SettingsSource, secret string) *Client {
	return &Client{
		settings: settings,
		secret:   secret,
		// Таймаут намеренно не задан: приложение полагается на
		// поведение HTTP-клиента по умолчанию и не делает повторов
		httpClient: &http.Client{},
	}
}

// Send выполняет один запрос к облачному сервису. Поля запроса
// передаются и в строке запроса, и в теле — сервис вызывается двумя
// разными средами исполнения с разными путями чтения параметров.
func (c *Client) Send(req Request) Result {
	if !req.Action.Valid() {
		return Errorf("unknown action: %s", req.Action)
	}

	endpoint, err := c.settings.GetSetting(settingEndpoint)
	if err != nil || endpoint == "" {
		return Errorf("cloud endpoint is not configured")
	}
	// Имя папки необязательно: отсутствие — не ошибка
	folder, _ := c.settings.GetSetting(settingFolder)

	base, err := url.Parse(endpoint)
	if err != nil {
		return Errorf("invalid cloud endpoint: %v", err)
	}

	var dataJSON string
	if req.Data != nil {
		encoded, err := json.Marshal(req.Data)
		if err != nil {
			return Errorf("failed to encode payload: %v", err)
		}
		dataJSON = string(encoded)
	}

	query := base.Query()
	query.Set("action", string(req.Action))
	query.Set("secret", c.secret)
	if folder != "" {
		query.Set("folderName", folder)
	}
	if req.BatchID != "" {
		query.Set("batchId", req.BatchID)
	}
	if req.StudentID != "" {
		query.Set("studentId", req.StudentID)
	}
	if dataJSON != "" {
		query.Set("data", dataJSON)
	}
	if req.Filename != "" {
		query.Set("filename", req.Filename)
	}
	if req.MimeType != "" {
		query.Set("mimeType", req.MimeType)
	}
	base.RawQuery = query.Encode()

	body := map[string]interface{}{
		"action": string(req.Action),
		"secret": c.secret,
	}
	if folder != "" {
		body["folderName"] = folder
	}
	if req.BatchID != "" {
		body["batchId"] = req.BatchID
	}
	if req.StudentID != "" {
		body["studentId"] = req.StudentID
	}
	if req.Data != nil {
		body["data"] = req.Data
	}
	if req.Filename != "" {
		body["filename"] = req.Filename
	}
	if req.MimeType != "" {
		body["mimeType"] = req.MimeType
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return Errorf("failed to encode request body: %v", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, base.String(), bytes.NewReader(encoded))
	if err != nil {
		return Errorf("failed to build request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// Всегда свежий ответ, без кеширования
	httpReq.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Errorf("cloud request failed: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Errorf("failed to read cloud response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Errorf("cloud returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return Errorf("malformed cloud response: %v", err)
	}
	if result.Result == "" {
		return Errorf("malformed cloud response: missing result field")
	}

	return result
}
