package booking

import (
	"context"
	"fmt"

	"deskly/models"
	"deskly/utils"

	"go.uber.org/zap"
)

// AvailabilityClient is the slice of the booking API this service
// consumes. Satisfied by *remote.Client.
type AvailabilityClient interface {
	QueryAvailability(ctx context.Context, date, spaceID string) ([]models.TimeIntervalItem, error)
}

// AvailabilityService expands coarse availability windows into
// bookable slots.
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, query models.AvailabilityQuery) ([]models.Slot, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Client AvailabilityClient
}

// GetAvailableSlots fetches the server's windows for one space/date,
// decomposes them, and attaches wall-clock labels.
func (svc *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, query models.AvailabilityQuery) ([]models.Slot, error) {
	logger := utils.GetLogger()

	intervals, err := svc.Client.QueryAvailability(ctx, query.Date, query.SpaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability for space %s: %w", query.SpaceID, err)
	}

	expanded := ProcessIntervals(intervals)
	slots := make([]models.Slot, 0, len(expanded))
	for _, item := range expanded {
		slots = append(slots, models.Slot{
			TimeIntervalItem: item,
			Label:            SlotLabel(item),
		})
	}

	logger.Debug("expanded availability",
		zap.String("spaceID", query.SpaceID),
		zap.String("date", query.Date),
		zap.Int("windows", len(intervals)),
		zap.Int("slots", len(slots)))
	return slots, nil
}
