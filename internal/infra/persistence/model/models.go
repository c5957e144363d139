// Package model holds the GORM persistence models.
package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderLineModel{},
	}
}
