package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"campaign-server/internal/config"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"

	twilio "github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	lookups "github.com/twilio/twilio-go/rest/lookups/v2"
)

type messageAPI interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type lookupAPI interface {
	FetchPhoneNumber(phoneNumber string, params *lookups.FetchPhoneNumberParams) (*lookups.LookupsV2PhoneNumber, error)
}

// TwilioSession sends through the Twilio WhatsApp sender of one connection
type TwilioSession struct {
	from     string
	messages messageAPI
	lookups  lookupAPI
	logger   *observability.Logger
}

// NewTwilioFactory returns a SessionFactory that opens Twilio sessions with
// the account credentials, sending from each connection's phone number
func NewTwilioFactory(cfg config.TwilioConfig, logger *observability.Logger) SessionFactory {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return func(conn store.WhatsappConnection) (Session, error) {
		number := DigitsOnly(conn.PhoneNumber)
		if number == "" {
			return nil, fmt.Errorf("connection %s has no phone number: %w", conn.ID, ErrInvalidTarget)
		}
		return newTwilioSession(number, rest.Api, rest.LookupsV2, logger), nil
	}
}

func newTwilioSession(fromNumber string, messages messageAPI, lookup lookupAPI, logger *observability.Logger) *TwilioSession {
	return &TwilioSession{
		from:     whatsappAddress(fromNumber),
		messages: messages,
		lookups:  lookup,
		logger:   logger,
	}
}

// SendMessage sends a text message
func (s *TwilioSession) SendMessage(ctx context.Context, target, payload string) (SendResult, error) {
	number := DigitsOnly(JIDToNumber(target))
	if number == "" {
		return SendResult{}, ErrInvalidTarget
	}
	if err := ctx.Err(); err != nil {
		return SendResult{}, err
	}

	params := &openapi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(whatsappAddress(number))
	params.SetBody(payload)

	msg, err := s.messages.CreateMessage(params)
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to send whatsapp message: %w", err)
	}

	var result SendResult
	if msg.Sid != nil {
		result.ID = *msg.Sid
	}
	if msg.Status != nil {
		result.Status = *msg.Status
	}
	return result, nil
}

// CheckNumberExists looks the number up. A 404 or an invalid number is a
// confirmed absence; any other failure, or a reply without a verdict, is
// transient.
func (s *TwilioSession) CheckNumberExists(ctx context.Context, number string) (NumberCheck, error) {
	digits := DigitsOnly(number)
	if digits == "" {
		return NumberCheck{Exists: false}, nil
	}
	if err := ctx.Err(); err != nil {
		return NumberCheck{TransientError: true}, err
	}

	resp, err := s.lookups.FetchPhoneNumber("+"+digits, &lookups.FetchPhoneNumberParams{})
	if err != nil {
		var restErr *client.TwilioRestError
		if errors.As(err, &restErr) && restErr.Status == http.StatusNotFound {
			return NumberCheck{Exists: false}, nil
		}
		return NumberCheck{TransientError: true}, fmt.Errorf("failed to look up number: %w", err)
	}

	if resp == nil || resp.Valid == nil {
		s.logger.Warn(ctx, "lookup returned no verdict", observability.Field{Key: "number", Value: digits})
		return NumberCheck{TransientError: true}, nil
	}
	if !*resp.Valid {
		return NumberCheck{Exists: false}, nil
	}

	canonical := digits
	if resp.PhoneNumber != nil {
		if d := DigitsOnly(*resp.PhoneNumber); d != "" {
			canonical = d
		}
	}
	return NumberCheck{Exists: true, JID: NumberToJID(canonical)}, nil
}

func whatsappAddress(number string) string {
	return "whatsapp:+" + number
}
