package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/kossaiRedou/EasInvoice/internal/client/domain"
	"github.com/kossaiRedou/EasInvoice/internal/client/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&domain.Client{})
	assert.NoError(t, err)

	node, err := snowflake.NewNode(4)
	assert.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, node
}

func clientReq() domain.CreateRequest {
	return domain.CreateRequest{
		Name:    "Client SA",
		Address: "2 avenue des Champs",
		City:    "69001 Lyon",
		Email:   "contact@client.example",
	}
}

func TestCreate_RequiresNameAndAddress(t *testing.T) {
	svc, node := setupService(t)
	ctx := context.Background()
	owner := node.Generate()

	req := clientReq()
	req.Name = "  "
	_, err := svc.Create(ctx, owner, req)
	assert.ErrorIs(t, err, domain.ErrInvalidClient)

	req = clientReq()
	req.Address = ""
	_, err = svc.Create(ctx, owner, req)
	assert.ErrorIs(t, err, domain.ErrInvalidClient)
}

func TestCreateAndList_OwnerScoped(t *testing.T) {
	svc, node := setupService(t)
	ctx := context.Background()
	owner := node.Generate()
	other := node.Generate()

	created, err := svc.Create(ctx, owner, clientReq())
	assert.NoError(t, err)
	assert.Equal(t, "Client SA", created.Name)

	list, err := svc.List(ctx, owner)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.List(ctx, other)
	assert.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.GetByID(ctx, other, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, node := setupService(t)
	ctx := context.Background()
	owner := node.Generate()

	created, err := svc.Create(ctx, owner, clientReq())
	assert.NoError(t, err)

	err = svc.Delete(ctx, owner, created.ID.String())
	assert.NoError(t, err)

	err = svc.Delete(ctx, owner, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, owner, "not-an-id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
