package gateway

import (
	"context"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	natspkg "github.com/deveshjhaq/gaddi24x7/internal/pkg/nats"
)

// DispatchGW pushes ride offers to drivers over NATS. Driver apps
// subscribe to their own offer subject; the poll endpoint covers clients
// without a live connection.
type DispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(natsClient *natspkg.Client) *DispatchGW {
	return &DispatchGW{natsClient: natsClient}
}

// PublishOffer sends an offer to the driver's subject
func (g *DispatchGW) PublishOffer(_ context.Context, offer *models.RideOffer) error {
	return g.natsClient.PublishJSON(natspkg.SubjectOfferPrefix+offer.DriverID, offer)
}

// PublishOfferClosed tells the driver their offer is gone, whether it was
// taken, withdrawn or timed out
func (g *DispatchGW) PublishOfferClosed(_ context.Context, offer *models.RideOffer) error {
	return g.natsClient.PublishJSON(natspkg.SubjectOfferResultPrefix+offer.ID.String(), models.OfferResult{
		OfferID:  offer.ID,
		DriverID: offer.DriverID,
		Accepted: false,
	})
}
