package midtrans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"StyleMate-Server/domain"
	"StyleMate-Server/entities"
	"StyleMate-Server/internal/utils"
	"StyleMate-Server/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

var planPricing = map[string]int64{
	domain.PlanPremiumMonthly: 49000,
	domain.PlanPremiumYearly:  490000,
}

var planDuration = map[string]time.Duration{
	domain.PlanPremiumMonthly: 30 * 24 * time.Hour,
	domain.PlanPremiumYearly:  365 * 24 * time.Hour,
}

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, userID string, req domain.SubscribeRequest) (domain.SubscribeResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		userRepository     user.UserRepository
		snapClient         snap.Client
	}
)

func NewMidtransService(midtransRepository MidtransRepository, userRepository user.UserRepository) MidtransService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransService{
		midtransRepository: midtransRepository,
		userRepository:     userRepository,
		snapClient:         client,
	}
}

func (s *midtransService) CreateTransaction(ctx context.Context, userID string, req domain.SubscribeRequest) (domain.SubscribeResponse, error) {
	amount, ok := planPricing[req.Plan]
	if !ok {
		return domain.SubscribeResponse{}, domain.ErrInvalidPlan
	}

	usr, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscribeResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscribeResponse{}, err
	}

	orderID := fmt.Sprintf("STYLEMATE-%s", uuid.New().String())
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: usr.Name,
			Email: usr.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.Plan,
				Name:  fmt.Sprintf("StyleMate %s subscription", req.Plan),
				Price: amount,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.SubscribeResponse{}, snapErr
	}

	transaction := entities.Transaction{
		UserID:      usr.ID,
		OrderID:     orderID,
		Plan:        req.Plan,
		GrossAmount: amount,
		Status:      "pending",
		SnapURL:     snapResp.RedirectURL,
	}
	if err := s.midtransRepository.CreateTransaction(ctx, &transaction); err != nil {
		return domain.SubscribeResponse{}, err
	}

	return domain.SubscribeResponse{
		OrderID:     orderID,
		SnapURL:     snapResp.RedirectURL,
		GrossAmount: amount,
	}, nil
}

func (s *midtransService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	transaction.Status = notification.TransactionStatus
	transaction.PaymentType = notification.PaymentType
	if err := s.midtransRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	settled := notification.TransactionStatus == "settlement" ||
		(notification.TransactionStatus == "capture" && notification.FraudStatus == "accept")
	if !settled {
		return nil
	}

	usr, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
	if err != nil {
		return err
	}

	// Extending an active subscription stacks on the current expiry.
	start := time.Now()
	if usr.IsPremium && usr.PremiumUntil != nil && usr.PremiumUntil.After(start) {
		start = *usr.PremiumUntil
	}
	until := start.Add(planDuration[transaction.Plan])

	usr.IsPremium = true
	usr.PremiumUntil = &until
	return s.userRepository.UpdateUser(ctx, usr)
}
