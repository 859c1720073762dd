package requests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/insight24/insight-backend/pkg/config"
	"github.com/insight24/insight-backend/pkg/db"
	"github.com/insight24/insight-backend/pkg/db/models"
	pkgerrors "github.com/insight24/insight-backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}, nil)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if err := client.DB().AutoMigrate(&models.Request{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	svc, err := NewService(NewRepository(client.DB()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateSetsTimestamp(t *testing.T) {
	svc := newTestService(t)

	before := time.Now().Add(-time.Second)
	created, err := svc.Create(context.Background(), CreateInput{Name: "Ivan", Phone: "+79990001122"})
	require.NoError(t, err)

	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, "Ivan", created.Name)
	require.Equal(t, "+79990001122", created.Phone)
	require.True(t, created.CreatedAt.After(before))
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: " ", Phone: "+7999"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	_, err = svc.Create(ctx, CreateInput{Name: "Ivan", Phone: ""})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, CreateInput{Name: name, Phone: "+7999"})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "third", rows[0].Name)
	require.Equal(t, "first", rows[2].Name)
}
