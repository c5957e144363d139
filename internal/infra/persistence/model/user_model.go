package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Clients and merchants share the table,
// told apart by UserType; role-specific columns are empty for the other role.
type UserModel struct {
	ID        int64      `gorm:"column:user_id;primaryKey;autoIncrement"`
	FirstName string     `gorm:"type:varchar(100)"`
	LastName  string     `gorm:"type:varchar(100)"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Birthday  *time.Time `gorm:"type:date"`
	Password  string     `gorm:"type:varchar(255);not null"`
	UserType  string     `gorm:"type:varchar(20);index;not null"`

	Phone         string `gorm:"type:varchar(30)"`
	LoyaltyPoints int    `gorm:"not null;default:0"`
	StoreName     string `gorm:"type:varchar(150)"`
	Address       string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Orders     []OrderModel    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Categories []CategoryModel `gorm:"foreignKey:MerchantID;references:ID;constraint:OnDelete:CASCADE"`
	Products   []ProductModel  `gorm:"foreignKey:MerchantID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
