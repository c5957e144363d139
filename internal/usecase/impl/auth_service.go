// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/thenextech/shoploc-back-end/config"
	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/entity"
	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"
	"github.com/thenextech/shoploc-back-end/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo    repository.UserRepository
	sessions    repository.SessionStore
	hasher      service.PasswordHasher
	codes       service.CodeGenerator
	mailer      service.EmailSender
	composer    service.MailComposer
	metrics     service.AuthMetrics
	codeTTL     time.Duration
	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Sessions repository.SessionStore
	Hasher   service.PasswordHasher
	Codes    service.CodeGenerator
	Mailer   service.EmailSender
	Composer service.MailComposer
	Metrics  service.AuthMetrics
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		userRepo: params.UserRepo,
		sessions: params.Sessions,
		hasher:   params.Hasher,
		codes:    params.Codes,
		mailer:   params.Mailer,
		composer: params.Composer,
		metrics:  params.Metrics,
		now:      time.Now,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Verification != nil {
		srv.codeTTL = params.Config.Verification.CodeTTL
		srv.maxAttempts = params.Config.Verification.MaxAttempts
	}

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *authService) State(ctx context.Context, sessionID string) (entity.AuthState, error) {
	if sessionID == "" {
		return entity.Anonymous{}, nil
	}

	state, err := srv.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	return entity.StateOrAnonymous(state), nil
}

// Login checks the password of the account registered under role, emails a
// new code and stores the pending verification. The email goes out before the
// state is written so a delivery failure leaves the session as it was.
func (srv *authService) Login(ctx context.Context, sessionID string, role entity.Role, input usecase.LoginInput) error {
	user, err := srv.userRepo.FindByEmailAndRole(ctx, input.Email, role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login rejected", slog.String("role", string(role)), slog.String("reason", "unknown account"))
			srv.metrics.LoginAttempt(role, false)

			return errors.Wrap(domainerrors.ErrLogin, "login failed")
		}

		return errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("role", string(role)), slog.String("reason", "password mismatch"))
		srv.metrics.LoginAttempt(role, false)

		return errors.Wrap(domainerrors.ErrLogin, "login failed")
	}

	code, err := srv.codes.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	email, err := srv.composer.VerificationCode(user.FullName(), code)
	if err != nil {
		return errors.Wrap(err, "failed to render verification email")
	}
	email.To = user.Email

	if err := srv.mailer.Send(ctx, email); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.Int64("userID", user.ID), slog.Any("error", err))

		return errors.WithStack(domainerrors.ErrMailDelivery.WithDetails(err.Error()))
	}

	pending := entity.PendingVerification{
		UserEmail: user.Email,
		Role:      role,
		Code:      code,
		IssuedAt:  srv.now(),
	}
	if err := srv.sessions.Save(ctx, sessionID, pending); err != nil {
		return errors.Wrap(err, "failed to store pending verification")
	}

	srv.metrics.LoginAttempt(role, true)
	srv.log(ctx).Info("Verification code sent", slog.Int64("userID", user.ID), slog.String("role", string(role)))

	return nil
}

// Verify authenticates the session when code equals the pending code. A
// mismatch leaves the pending state in place unless the attempt cap is
// reached; an expired code resets the session. The account lookup runs
// outside the session store's update so a slow database never holds it.
func (srv *authService) Verify(ctx context.Context, sessionID string, role entity.Role, code string) error {
	err := srv.verify(ctx, sessionID, role, code)

	srv.metrics.VerificationAttempt(role, err == nil)
	if err != nil {
		srv.log(ctx).Info("Verification rejected", slog.String("role", string(role)), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Session authenticated", slog.String("role", string(role)))

	return nil
}

func (srv *authService) verify(ctx context.Context, sessionID string, role entity.Role, code string) error {
	var matched entity.PendingVerification
	err := srv.sessions.Update(ctx, sessionID, func(state entity.AuthState) (entity.AuthState, error) {
		pending, ok := state.(entity.PendingVerification)
		if !ok || pending.Role != role {
			return nil, errors.Wrap(domainerrors.ErrVerificationCode, "no pending verification")
		}

		if pending.Expired(srv.now(), srv.codeTTL) {
			return entity.Anonymous{}, errors.Wrap(domainerrors.ErrVerificationCode, "verification code expired")
		}

		if subtle.ConstantTimeCompare([]byte(code), []byte(pending.Code)) != 1 {
			if srv.maxAttempts <= 0 {
				return nil, errors.Wrap(domainerrors.ErrVerificationCode, "verification code mismatch")
			}

			pending.Attempts++
			if pending.Attempts >= srv.maxAttempts {
				return entity.Anonymous{}, errors.Wrap(domainerrors.ErrVerificationCode, "verification attempts exhausted")
			}

			return pending, errors.Wrap(domainerrors.ErrVerificationCode, "verification code mismatch")
		}

		matched = pending

		return nil, nil
	})
	if err != nil {
		return err
	}

	user, lookupErr := srv.userRepo.FindByEmailAndRole(ctx, matched.UserEmail, role)
	if lookupErr != nil && !errors.Is(lookupErr, repository.ErrUserNotFound) {
		return errors.Wrap(lookupErr, "failed to load verified user")
	}

	return srv.sessions.Update(ctx, sessionID, func(state entity.AuthState) (entity.AuthState, error) {
		// A new login or a logout may have replaced the pending code meanwhile.
		current, ok := state.(entity.PendingVerification)
		if !ok || !current.SameCode(matched) {
			return nil, errors.Wrap(domainerrors.ErrVerificationCode, "pending verification replaced")
		}

		if lookupErr != nil {
			// Account removed between login and verification.
			return entity.Anonymous{}, errors.Wrap(domainerrors.ErrVerificationCode, "account no longer exists")
		}

		return entity.Authenticated{UserEmail: user.Email, Role: role, UserID: user.ID}, nil
	})
}

func (srv *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := srv.sessions.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}
