package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedMerchant(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName:    "Marie",
		LastName:     "Curie",
		Email:        email,
		PasswordHash: "hash",
		Role:         entity.RoleMerchant,
		Merchant:     &entity.MerchantProfile{StoreName: "Boulangerie", Address: "1 rue de Lille", Phone: "0320000000"},
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedClient(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	birthday := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	user := &entity.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		Birthday:     &birthday,
		PasswordHash: "hash",
		Role:         entity.RoleClient,
		Client:       &entity.ClientProfile{Phone: "0600000000", LoyaltyPoints: 3},
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *gorm.DB, merchantID int64, name string) *entity.Product {
	t.Helper()

	category := &entity.Category{Name: "Pains", MerchantID: merchantID}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))

	product := &entity.Product{
		Name:        name,
		Description: "au levain",
		Price:       decimal.RequireFromString("2.35"),
		CategoryID:  category.ID,
		MerchantID:  merchantID,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}
