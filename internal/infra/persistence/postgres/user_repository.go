package postgres

import (
	"context"
	"time"

	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user of any role.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmailAndRole retrieves the account registered under email with the given role.
func (repo *userRepository) FindByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND user_type = ?", email, role.String()).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail reports whether any account already uses email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count users by email")
	}

	return count > 0, nil
}

// Create persists a new user and fills its generated ID and timestamps.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		switch classifyViolation(err) {
		case violationUnique:
			return repository.ErrDuplicateEmail
		case violationNotNull:
			return domainerrors.ErrRegister.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies names, birthday and role profile. Email, password and role stay as stored.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select("FirstName", "LastName", "Birthday", "Phone", "LoyaltyPoints", "StoreName", "Address", "UpdatedAt").
		Updates(userM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes the user, its orders and their lines. A merchant's categories
// and products go with it unless one of its products is still ordered.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)

	orderIDs := db.Model(&model.OrderModel{}).Select("order_id").Where("user_id = ?", id)
	if err := db.Where("order_id IN (?)", orderIDs).Delete(&model.OrderLineModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user order lines")
	}
	if err := db.Where("user_id = ?", id).Delete(&model.OrderModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user orders")
	}

	result := db.Delete(&model.UserModel{}, "user_id = ?", id)
	if result.Error != nil {
		if classifyViolation(result.Error) == violationForeignKey {
			return domainerrors.ErrValidationFailed.WithDetails("merchant products are still referenced by order lines")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		Birthday:     data.Birthday,
		PasswordHash: data.Password,
		Role:         entity.Role(data.UserType),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	switch user.Role {
	case entity.RoleClient:
		user.Client = &entity.ClientProfile{
			Phone:         data.Phone,
			LoyaltyPoints: data.LoyaltyPoints,
		}
	case entity.RoleMerchant:
		user.Merchant = &entity.MerchantProfile{
			StoreName: data.StoreName,
			Address:   data.Address,
			Phone:     data.Phone,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Birthday:  data.Birthday,
		Password:  data.PasswordHash,
		UserType:  data.Role.String(),
	}

	if data.Client != nil {
		userM.Phone = data.Client.Phone
		userM.LoyaltyPoints = data.Client.LoyaltyPoints
	}
	if data.Merchant != nil {
		userM.StoreName = data.Merchant.StoreName
		userM.Address = data.Merchant.Address
		userM.Phone = data.Merchant.Phone
	}

	return userM
}
