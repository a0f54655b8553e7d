package usecase

import (
	"context"
	"fmt"
	"time"

	"fisiogestao/internal/converter"
	"fisiogestao/internal/delivery/dto"
	"fisiogestao/internal/delivery/http/middleware"
	"fisiogestao/internal/domain/entity"
	"fisiogestao/internal/domain/repository"
	"fisiogestao/internal/service"
	"fisiogestao/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, practitionerID int64, tokenID string) error
	GetProfile(ctx context.Context, practitionerID int64) (*dto.PractitionerResponse, error)
	ChangePassword(ctx context.Context, practitionerID int64, req *dto.ChangePasswordRequest) error
	UnlockAccount(ctx context.Context, targetID int64) error
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	practitionerRepo repository.PractitionerRepository
	jwtService       *jwt.JWTService
	redisClient      *redis.Client
	audit            service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	practitionerRepo repository.PractitionerRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		practitionerRepo: practitionerRepo,
		jwtService:       jwtService,
		redisClient:      redisClient,
		audit:            audit,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	practitioner := &entity.Practitioner{
		Nome:          req.Nome,
		Email:         req.Email,
		SenhaHash:     string(hashedPassword),
		Crefito:       req.Crefito,
		Especialidade: req.Especialidade,
		Telefone:      req.Telefone,
		IsAdmin:       req.IsAdmin,
		Ativo:         true,
	}

	if err := u.practitionerRepo.Create(tx, practitioner); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "crefito") {
			return nil, ErrCrefitoAlreadyExists
		}
		u.log.Warnf("Failed to create practitioner: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, tx, service.Entry{
		Action:         entity.AuditActionPractitionerCreated,
		Table:          entity.Practitioner{}.TableName(),
		RecordID:       &practitioner.ID,
		PractitionerID: &practitioner.ID,
		Success:        true,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RegisterResponse{
		Mensagem: "Fisioterapeuta cadastrado com sucesso",
		ID:       practitioner.ID,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	practitioner, err := u.practitionerRepo.FindByEmail(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find practitioner by email: %+v", err)
		return nil, err
	}
	if practitioner == nil {
		u.audit.Record(ctx, nil, service.Entry{
			Action:  entity.AuditActionLoginFailed,
			Success: false,
			Note:    fmt.Sprintf("Email não cadastrado: %s", req.Email),
		})
		return nil, ErrInvalidCredentials
	}

	// Locked accounts reject even the correct password until unlocked.
	if practitioner.IsLocked() {
		u.audit.Record(ctx, nil, service.Entry{
			Action:         entity.AuditActionLoginFailed,
			Table:          entity.Practitioner{}.TableName(),
			RecordID:       &practitioner.ID,
			PractitionerID: &practitioner.ID,
			Success:        false,
			Note:           "Conta bloqueada",
		})
		return nil, ErrAccountLocked
	}

	if !practitioner.Ativo {
		u.audit.Record(ctx, nil, service.Entry{
			Action:         entity.AuditActionLoginFailed,
			Table:          entity.Practitioner{}.TableName(),
			RecordID:       &practitioner.ID,
			PractitionerID: &practitioner.ID,
			Success:        false,
			Note:           "Conta inativa",
		})
		return nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(practitioner.SenhaHash), []byte(req.Senha)); err != nil {
		practitioner.RegisterFailedLogin(time.Now())
		if err := u.practitionerRepo.Update(tx, practitioner); err != nil {
			u.log.Warnf("Failed to persist failed login attempt: %+v", err)
			return nil, err
		}
		u.audit.Record(ctx, tx, service.Entry{
			Action:         entity.AuditActionLoginFailed,
			Table:          entity.Practitioner{}.TableName(),
			RecordID:       &practitioner.ID,
			PractitionerID: &practitioner.ID,
			Success:        false,
			Note:           fmt.Sprintf("Tentativa %d de %d", practitioner.TentativasLoginFalhadas, entity.MaxFailedLoginAttempts),
		})
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return nil, err
		}
		if practitioner.IsLocked() {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	practitioner.RegisterSuccessfulLogin(time.Now())
	if err := u.practitionerRepo.Update(tx, practitioner); err != nil {
		u.log.Warnf("Failed to persist successful login: %+v", err)
		return nil, err
	}

	token, tokenID, err := u.jwtService.GenerateSessionToken(practitioner.ID)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	sessionKey := middleware.SessionTokenKey(practitioner.ID, tokenID)
	if err := u.redisClient.Set(ctx, sessionKey, "valid", u.jwtService.GetSessionExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store session token in Redis: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, tx, service.Entry{
		Action:         entity.AuditActionLoginSuccess,
		Table:          entity.Practitioner{}.TableName(),
		RecordID:       &practitioner.ID,
		PractitionerID: &practitioner.ID,
		Success:        true,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		Token:          token,
		Fisioterapeuta: converter.PractitionerToSummary(practitioner),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, practitionerID int64, tokenID string) error {
	sessionKey := middleware.SessionTokenKey(practitionerID, tokenID)
	if err := u.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke session token: %+v", err)
		return err
	}

	u.audit.Record(ctx, nil, service.Entry{
		Action:         entity.AuditActionLogout,
		Table:          entity.Practitioner{}.TableName(),
		RecordID:       &practitionerID,
		PractitionerID: &practitionerID,
		Success:        true,
	})

	return nil
}

func (u *authUsecase) GetProfile(ctx context.Context, practitionerID int64) (*dto.PractitionerResponse, error) {
	practitioner, err := u.practitionerRepo.FindByID(u.db.WithContext(ctx), practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner: %+v", err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}
	return converter.PractitionerToResponse(practitioner), nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, practitionerID int64, req *dto.ChangePasswordRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	practitioner, err := u.practitionerRepo.FindByID(tx, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner: %+v", err)
		return err
	}
	if practitioner == nil {
		return ErrPractitionerNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(practitioner.SenhaHash), []byte(req.SenhaAtual)); err != nil {
		u.audit.Record(ctx, tx, service.Entry{
			Action:         entity.AuditActionPasswordChangeFailed,
			Table:          entity.Practitioner{}.TableName(),
			RecordID:       &practitioner.ID,
			PractitionerID: &practitioner.ID,
			Success:        false,
			Note:           "Senha atual incorreta",
		})
		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return err
		}
		return ErrWrongCurrentPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.SenhaNova), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	now := time.Now()
	practitioner.SenhaHash = string(hashedPassword)
	practitioner.DataAlteracaoSenha = &now

	if err := u.practitionerRepo.Update(tx, practitioner); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	u.audit.Record(ctx, tx, service.Entry{
		Action:         entity.AuditActionPasswordChanged,
		Table:          entity.Practitioner{}.TableName(),
		RecordID:       &practitioner.ID,
		PractitionerID: &practitioner.ID,
		Success:        true,
	})

	return tx.Commit().Error
}

func (u *authUsecase) UnlockAccount(ctx context.Context, targetID int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	practitioner, err := u.practitionerRepo.FindByID(tx, targetID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner: %+v", err)
		return err
	}
	if practitioner == nil {
		return ErrPractitionerNotFound
	}

	practitioner.Unlock()
	if err := u.practitionerRepo.Update(tx, practitioner); err != nil {
		u.log.Warnf("Failed to unlock account: %+v", err)
		return err
	}

	u.audit.Record(ctx, tx, service.Entry{
		Action:   entity.AuditActionAccountUnlocked,
		Table:    entity.Practitioner{}.TableName(),
		RecordID: &practitioner.ID,
		Success:  true,
	})

	return tx.Commit().Error
}
