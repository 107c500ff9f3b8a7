package domain

import (
	"errors"
)

const (
	PlanPremiumMonthly = "premium_monthly"
	PlanPremiumYearly  = "premium_yearly"
)

var (
	MessageSuccessCreateTransaction = "transaction created successfully"
	MessageSuccessHandleWebhook     = "notification processed"
	MessageFailedCreateTransaction  = "failed to create transaction"
	MessageFailedHandleWebhook      = "failed to process notification"

	ErrInvalidPlan         = errors.New("invalid subscription plan")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type (
	SubscribeRequest struct {
		Plan string `json:"plan" validate:"required,oneof=premium_monthly premium_yearly"`
	}

	SubscribeResponse struct {
		OrderID     string `json:"order_id"`
		SnapURL     string `json:"snap_url"`
		GrossAmount int64  `json:"gross_amount"`
	}

	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
	}
)
