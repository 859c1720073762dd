package products

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/insight24/insight-backend/pkg/config"
	"github.com/insight24/insight-backend/pkg/db"
	"github.com/insight24/insight-backend/pkg/db/models"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}, nil)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if err := client.DB().AutoMigrate(&models.Catalog{}, &models.Product{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return client.DB()
}

type fakeFileStore struct {
	saves   int
	saved   []string
	removed []string
}

func (f *fakeFileStore) Save(r io.Reader, originalName string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	f.saves++
	path := fmt.Sprintf("/uploads/fake-%d.jpg", f.saves)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeFileStore) Remove(publicPath string) error {
	f.removed = append(f.removed, publicPath)
	return nil
}

func newTestService(t *testing.T) (Service, *fakeFileStore) {
	t.Helper()
	files := &fakeFileStore{}
	svc, err := NewService(NewRepository(newTestDB(t)), files)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, files
}
