package services

import (
	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"github.com/Fatima-Benaya/2nConv-ELLW/repository"
	"gorm.io/gorm"
)

// OrderService is the persistence gateway: it only ever sees payloads that
// already passed ValidateOrderPayload, so every error it returns is
// infrastructure, never validation.
type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

// Create stores a validated payload as a Pending order and returns it with
// its server-assigned id and timestamps. The stored total is recomputed
// from the items; the client-sent total is not trusted.
func (s *OrderService) Create(p *OrderPayload) (*entity.Order, error) {
	items := make([]entity.OrderItem, 0, len(p.Items))
	var total float64
	for _, it := range p.Items {
		total += it.Price * it.Quantity
		items = append(items, entity.OrderItem{
			FoodID:   it.FoodID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	details := entity.PaymentDetails{}
	if p.PaymentDetails != nil {
		switch p.PaymentMethod {
		case entity.PaymentCard:
			details.CardHolder = p.PaymentDetails.CardHolder
			details.CardLast4 = p.PaymentDetails.CardLast4
			details.CardExpiry = p.PaymentDetails.CardExpiry
		case entity.PaymentInstantTransfer:
			details.BizumPhone = p.PaymentDetails.BizumPhone
		}
	}

	order := entity.Order{
		CustomerName:   p.CustomerName,
		Address:        p.Address,
		Phone:          p.Phone,
		Email:          p.Email,
		PaymentMethod:  p.PaymentMethod,
		PaymentDetails: details,
		Status:         entity.StatusPending,
		Total:          total,
		Items:          items,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &order)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.List()
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.Repo.GetByID(id)
}

// UpdateStatus is the back-office mutation path. Membership in the status
// enum is checked by the controller; no transition table is enforced.
func (s *OrderService) UpdateStatus(id uint, status string) (*entity.Order, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}
