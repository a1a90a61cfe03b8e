package consumer

import (
	"context"
	"encoding/json"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/events"
	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/facility"
	facilityerrors "github.com/YukihitoTomojiri/medical-wiki-lms/internal/facility/errors"
)

// ConsumeUserLifecycle registers the facility named on each user.created
// event so that facility-scoped views work even before an administrator
// has set the facility up by hand. Replayed events are absorbed by the
// unique facility name.
func ConsumeUserLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	facilityService facility.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.user_lifecycle")
	log.Info("user lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("user lifecycle consumer stopped")
				return
			}
			log.Error("fetch user lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.UserCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode user_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.Facility == "" {
			log.Warn("user_created event without facility, skipping",
				zap.String("user_id", event.UserID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = facilityService.Create(ctx, facility.CreateFacilityRequest{
			Name: event.Facility,
		})
		if err != nil {
			if errors.Is(err, facilityerrors.ErrFacilityNameTaken) {
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("register facility from user_created event failed",
				zap.String("user_id", event.UserID),
				zap.String("facility", event.Facility),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit user lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("facility registered from user_created event",
			zap.String("user_id", event.UserID),
			zap.String("facility", event.Facility),
		)
	}
}
