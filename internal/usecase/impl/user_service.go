package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	metrics   service.AuthMetrics
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Metrics   service.AuthMetrics
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Register validates the role payload, hashes the password and creates the
// account. The email check and insert share one transaction.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserOutput, error) {
	user, err := srv.register(ctx, input)
	srv.metrics.Registration(input.Role, err == nil)
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("role", string(input.Role)), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.String("role", string(user.Role)), slog.Int64("userID", user.ID))

	return toUserOutput(user), nil
}

func (srv *userService) register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrRegister.WithDetails("unknown role"))
	}
	if input.Role == entity.RoleMerchant && input.StoreName == "" {
		return nil, errors.WithStack(domainerrors.ErrRegister.WithDetails("store name is required"))
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := newUserFromRegister(input, hashedPassword)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	return user, nil
}

func (srv *userService) GetUser(ctx context.Context, userID int64) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, domainerrors.EntityUser, userID, "failed to find user")
	}

	return toUserOutput(user), nil
}

func (srv *userService) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*usecase.UserOutput, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return notFoundOr(err, repository.ErrUserNotFound, domainerrors.EntityUser, userID, "failed to find user")
		}

		applyProfileUpdate(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return notFoundOr(err, repository.ErrUserNotFound, domainerrors.EntityUser, userID, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Info("Profile updated", slog.Int64("userID", userID))

	return toUserOutput(updated), nil
}

func (srv *userService) DeleteAccount(ctx context.Context, userID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Delete(ctx, userID); err != nil {
			return notFoundOr(err, repository.ErrUserNotFound, domainerrors.EntityUser, userID, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Int64("userID", userID))

	return nil
}
