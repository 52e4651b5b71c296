// Package storage provides the durable stores behind checkout and the
// admin panel.
package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/anamkhan-2/bzooo-webtechProject/models"
)

var ErrOrderNotFound = errors.New("storage: order not found")

// Orders persists orders with gorm.
type Orders struct {
	db *gorm.DB
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{db: db}
}

func (o *Orders) Save(ctx context.Context, order *models.Order) (uint, error) {
	err := o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (o *Orders) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := o.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (o *Orders) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := o.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *Orders) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	result := o.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
