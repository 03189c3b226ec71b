package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/interview-express/experience_service/internal/common"
	"github.com/interview-express/experience_service/internal/dto"
	"github.com/interview-express/experience_service/internal/helper/utils"
	"github.com/interview-express/experience_service/internal/interfaces"
	"github.com/interview-express/experience_service/internal/repository"
)

const (
	codeTTL    = 5 * time.Minute
	codeLength = 6
)

type VerificationService interface {
	// SendCode issues a fresh code for the phone and hands it to the
	// dispatch pipeline. A prior unconsumed code is overwritten.
	SendCode(ctx context.Context, phone string) error
	// VerifyCode consumes the stored code on success (single-use).
	VerifyCode(ctx context.Context, phone, code string) bool
	// PeekCode exposes the live code for dev/test tooling only.
	PeekCode(ctx context.Context, phone string) (string, error)
}

type verificationService struct {
	codes    repository.CodeRepository
	producer interfaces.ProducerHandler
}

func NewVerificationService(codes repository.CodeRepository, producer interfaces.ProducerHandler) VerificationService {
	return &verificationService{
		codes:    codes,
		producer: producer,
	}
}

func (v *verificationService) SendCode(ctx context.Context, phone string) error {
	if !utils.IsValidPhone(phone) {
		return fmt.Errorf("%w: phone must be 11 digits", common.ErrInvalidInput)
	}

	code, err := utils.RandomNumericCode(codeLength)
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	if err := v.codes.SaveCode(ctx, phone, code, codeTTL); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	// dispatch is fire-and-forget: the consumer side retries, a publish
	// failure never fails the request
	if v.producer != nil {
		payload, _ := json.Marshal(dto.SendCodeEvent{Phone: phone, Code: code})
		if err := v.producer.PublishMessage([]byte("sms.send_code"), payload); err != nil {
			log.Printf("publish sms.send_code failed for %s: %v", utils.MaskPhone(phone), err)
		}
		return nil
	}

	// no broker configured: dev mode, surface the code in the log
	log.Printf("[dev] verification code for %s: %s", phone, code)
	return nil
}

func (v *verificationService) VerifyCode(ctx context.Context, phone, code string) bool {
	if code == "" {
		return false
	}

	stored, err := v.codes.GetCode(ctx, phone)
	if err != nil {
		log.Printf("get code error for %s: %v", utils.MaskPhone(phone), err)
		return false
	}
	if stored == "" || stored != code {
		return false
	}

	if err := v.codes.DeleteCode(ctx, phone); err != nil {
		log.Printf("delete code error for %s: %v", utils.MaskPhone(phone), err)
	}
	return true
}

func (v *verificationService) PeekCode(ctx context.Context, phone string) (string, error) {
	return v.codes.GetCode(ctx, phone)
}
