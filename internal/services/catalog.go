package services

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/repositories"
)

var ErrInvalidRecord = errors.New("device record requires non-empty name and brand")

// CatalogStorage defines raw catalog persistence.
type CatalogStorage interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// CatalogService appends device records to per-category catalogs.
type CatalogService struct {
	storage CatalogStorage
	events  EventWriter

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(storage CatalogStorage, events EventWriter) *CatalogService {
	return &CatalogService{
		storage: storage,
		events:  events,
		locks:   make(map[string]*sync.Mutex),
	}
}

// AddDevice validates a device record and appends it verbatim to the catalog
// of its category. It returns the catalog file name.
func (s *CatalogService) AddDevice(ctx context.Context, record json.RawMessage) (string, error) {
	if !utf8.Valid(record) {
		logger.Log.Warnw("device record is not valid UTF-8")
		return "", ErrInvalidRecord
	}

	var device models.DeviceRecord
	if err := json.Unmarshal(record, &device); err != nil {
		logger.Log.Warnw("invalid device record", "error", err)
		return "", ErrInvalidRecord
	}
	if strings.TrimSpace(device.Name) == "" || strings.TrimSpace(device.Brand) == "" {
		logger.Log.Warnw("device record missing name or brand", "name", device.Name, "brand", device.Brand)
		return "", ErrInvalidRecord
	}

	var entry bytes.Buffer
	if err := json.Compact(&entry, record); err != nil {
		return "", ErrInvalidRecord
	}

	file := models.CatalogFileFor(device.Category)
	entries, err := s.appendEntry(ctx, file, entry.Bytes())
	if err != nil {
		return "", err
	}

	logger.Log.Infow("device added", "file", file, "name", device.Name, "brand", device.Brand, "entries", entries)

	publishEvent(ctx, s.events, models.Event{
		Type: models.EventDeviceAdded,
		Key:  file,
		File: file,
	})
	return file, nil
}

// appendEntry appends entry to file under the file's lock and returns the
// resulting number of entries.
func (s *CatalogService) appendEntry(ctx context.Context, file string, entry []byte) (int, error) {
	lock := s.lockFor(file)
	lock.Lock()
	defer lock.Unlock()

	catalog, err := s.load(ctx, file)
	if err != nil {
		return 0, err
	}
	catalog.Library = append(catalog.Library, json.RawMessage(entry))

	data, err := encodeCatalog(catalog)
	if err != nil {
		logger.Log.Errorw("failed to encode catalog", "file", file, "error", err)
		return 0, err
	}

	if err := s.storage.Write(ctx, file, data); err != nil {
		logger.Log.Errorw("failed to write catalog", "file", file, "error", err)
		return 0, err
	}
	return len(catalog.Library), nil
}

// ListDevices returns the catalog file for a category and its entries.
func (s *CatalogService) ListDevices(ctx context.Context, category string) (string, []json.RawMessage, error) {
	file := models.CatalogFileFor(category)

	lock := s.lockFor(file)
	lock.Lock()
	defer lock.Unlock()

	catalog, err := s.load(ctx, file)
	if err != nil {
		return "", nil, err
	}
	return file, catalog.Library, nil
}

// load reads a catalog. A missing, empty or malformed catalog is treated as
// empty; only storage failures are returned.
func (s *CatalogService) load(ctx context.Context, file string) (*models.Catalog, error) {
	catalog := &models.Catalog{Library: []json.RawMessage{}}

	data, err := s.storage.Read(ctx, file)
	if errors.Is(err, repositories.ErrCatalogNotFound) {
		return catalog, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read catalog", "file", file, "error", err)
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return catalog, nil
	}

	var stored models.Catalog
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Log.Warnw("corrupted catalog, starting from empty", "file", file, "error", err)
		return catalog, nil
	}
	if stored.Library != nil {
		catalog.Library = stored.Library
	}
	return catalog, nil
}

func (s *CatalogService) lockFor(file string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[file]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[file] = lock
	}
	return lock
}

func encodeCatalog(catalog *models.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
