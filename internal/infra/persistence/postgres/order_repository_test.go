package postgres

import (
	"context"
	"testing"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_LifeCycle(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderRepository(db)
	lines := NewOrderLineRepository(db)
	ctx := context.Background()

	merchant := seedMerchant(t, db, "shop@x.com")
	client := seedClient(t, db, "ada@x.com")
	product := seedProduct(t, db, merchant.ID, "Baguette")

	order := &entity.Order{UserID: client.ID, Status: entity.OrderStatusPending}
	require.NoError(t, orders.Create(ctx, order))
	require.NotZero(t, order.ID)

	line := &entity.OrderLine{OrderID: &order.ID, ProductID: product.ID, Quantity: 3}
	require.NoError(t, lines.Create(ctx, line))

	found, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, 3, found.Lines[0].Quantity)

	byUser, err := orders.FindByUserID(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	require.NoError(t, orders.UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed))
	found, err = orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, found.Status)

	require.NoError(t, orders.Delete(ctx, order.ID))
	_, err = lines.FindByID(ctx, line.ID)
	assert.ErrorIs(t, err, repository.ErrOrderLineNotFound)
	assert.ErrorIs(t, orders.Delete(ctx, order.ID), repository.ErrOrderNotFound)
}

func TestOrderLineRepository_Queries(t *testing.T) {
	db := newTestDB(t)
	lines := NewOrderLineRepository(db)
	ctx := context.Background()

	merchant := seedMerchant(t, db, "shop@x.com")
	other := seedMerchant(t, db, "other@x.com")
	mine := seedProduct(t, db, merchant.ID, "Baguette")
	theirs := seedProduct(t, db, other.ID, "Croissant")

	detached := &entity.OrderLine{ProductID: mine.ID, Quantity: 1}
	require.NoError(t, lines.Create(ctx, detached))
	require.NoError(t, lines.Create(ctx, &entity.OrderLine{ProductID: theirs.ID, Quantity: 4}))

	found, err := lines.FindByID(ctx, detached.ID)
	require.NoError(t, err)
	assert.Nil(t, found.OrderID)

	byMerchant, err := lines.FindByMerchantID(ctx, merchant.ID)
	require.NoError(t, err)
	require.Len(t, byMerchant, 1)
	assert.Equal(t, mine.ID, byMerchant[0].ProductID)

	all, err := lines.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	detached.Quantity = 7
	require.NoError(t, lines.Update(ctx, detached))
	found, err = lines.FindByID(ctx, detached.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.Quantity)

	require.NoError(t, lines.Delete(ctx, detached.ID))
	assert.ErrorIs(t, lines.Delete(ctx, detached.ID), repository.ErrOrderLineNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	merchant := seedMerchant(t, db, "shop@x.com")
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewCategoryRepository().Create(ctx, &entity.Category{Name: "Temp", MerchantID: merchant.ID}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := NewCategoryRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewCategoryRepository().Create(ctx, &entity.Category{Name: "Kept", MerchantID: merchant.ID})
	})
	require.NoError(t, err)

	all, err = NewCategoryRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	merchant := seedMerchant(t, db, "panic@x.com")

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewCategoryRepository().Create(ctx, &entity.Category{Name: "Lost", MerchantID: merchant.ID}); err != nil {
				return err
			}
			panic("mid-transaction")
		})
	})

	all, err := NewCategoryRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
