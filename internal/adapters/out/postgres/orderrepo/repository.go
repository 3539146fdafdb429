package orderrepo

import (
	"context"
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Line items are immutable
// snapshots written at checkout, so only the order row is touched. All columns
// are written, including the cleared partner assignment after a cancellation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", "Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllClaimable retrieves confirmed, unclaimed orders, oldest first.
func (r *GormOrderRepository) GetAllClaimable(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ? AND delivery_partner_id IS NULL", order.StatusConfirmed.String()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllAssignedToPartner retrieves the non-terminal orders the partner is
// currently carrying.
func (r *GormOrderRepository) GetAllAssignedToPartner(
	ctx context.Context,
	partnerID kernel.UUID,
) ([]*order.Order, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("delivery_partner_id = ? AND status NOT IN (?, ?)",
			partnerID.Bytes(), order.StatusDelivered.String(), order.StatusCancelled.String()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Claim assigns the order to the partner with a single conditional UPDATE, so
// the database decides the winner when several partners race for the same
// order. The row only changes while it is still confirmed and unclaimed; a
// zero row count means the claim lost, and a follow-up existence check
// separates a lost race from a missing order.
func (r *GormOrderRepository) Claim(
	ctx context.Context,
	orderID kernel.UUID,
	partnerID kernel.UUID,
) error {
	if err := errors.Join(orderID.Validate(), partnerID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND delivery_partner_id IS NULL AND status = ?",
			orderID.Bytes(), order.StatusConfirmed.String()).
		Updates(map[string]any{
			"delivery_partner_id": partnerID.Bytes(),
			"status":              order.StatusPreparing.String(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}
	return errs.NewObjectAlreadyAssignedError("order", orderID.String())
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
