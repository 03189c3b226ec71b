package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/interview-express/experience_service/internal/dto"
	"github.com/interview-express/experience_service/internal/interfaces"
)

// SMSDispatcher consumes sms.send_code events and pushes them through
// the gateway. Delivery retries with exponential backoff and then gives
// up; the original caller is never told about a failed send.
type SMSDispatcher struct {
	sender     interfaces.SMSSender
	maxRetries int
	backoff    func(attempt int) time.Duration
}

func NewSMSDispatcher(sender interfaces.SMSSender) *SMSDispatcher {
	return &SMSDispatcher{
		sender:     sender,
		maxRetries: 3,
		backoff: func(attempt int) time.Duration {
			return time.Duration(1<<attempt) * time.Second
		},
	}
}

func (d *SMSDispatcher) HandleMessage(message string) error {
	var ev dto.SendCodeEvent
	if err := json.Unmarshal([]byte(message), &ev); err != nil {
		return fmt.Errorf("bad sms event: %w", err)
	}
	if ev.Phone == "" || ev.Code == "" {
		return errors.New("bad sms event: missing phone or code")
	}

	if d.sender == nil {
		// mock mode, no gateway configured
		log.Printf("[mock sms] code for %s: %s", ev.Phone, ev.Code)
		return nil
	}

	var lastErr error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(d.backoff(attempt - 1))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		lastErr = d.sender.SendCode(ctx, ev.Phone, ev.Code)
		cancel()

		if lastErr == nil {
			return nil
		}
		log.Printf("sms send attempt %d failed for %s: %v", attempt+1, ev.Phone, lastErr)
	}

	log.Printf("sms send gave up for %s after %d retries: %v", ev.Phone, d.maxRetries, lastErr)
	return lastErr
}
