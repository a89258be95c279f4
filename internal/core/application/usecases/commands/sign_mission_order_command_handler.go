package commands

import (
	"context"
	"time"

	"missionops/internal/core/domain/model/audit"
	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/model/missionorder"
	"missionops/internal/core/ports"
	"missionops/internal/pkg/signature"
)

// SignatureImageContentType is the content type signature uploads are stored
// under.
const SignatureImageContentType = "image/png"

// SignatureImagePath returns the blob path of the signature image for the
// given order. The path is derived from the order ID so that the store-level
// no-overwrite guarantee maps one-to-one to the "one signature per order"
// invariant.
func SignatureImagePath(orderID kernel.UUID) string {
	return "signatures/" + orderID.String() + ".png"
}

// SignMissionOrderCommandHandler seals the final approval of a mission order
// with a signature artifact.
//
// Storing the image, persisting the signature fields, flipping the status
// and appending the audit entry form one logical unit. The image upload
// uses the blob store's atomic no-overwrite put, so of two concurrent signers
// exactly one wins the upload; the row writes share one transaction under the
// order's version check; and an upload whose surrounding transaction fails is
// compensated by deleting the blob. No path leaves the order signed without
// an audit entry, or audited without its stored image.
type SignMissionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	roles      ports.RoleResolver
	blobs      ports.BlobStore
	notifier   ports.Notifier
}

// NewSignMissionOrderCommandHandler creates a handler for signed approvals.
func NewSignMissionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	roles ports.RoleResolver,
	blobs ports.BlobStore,
	notifier ports.Notifier,
) SignMissionOrderCommandHandler {
	return SignMissionOrderCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		blobs:      blobs,
		notifier:   notifier,
	}
}

// Handle verifies the direction role, seals the signature and commits all
// effects, notifying the requester afterwards.
func (h SignMissionOrderCommandHandler) Handle(ctx context.Context, cmd SignMissionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	roles, err := h.roles.RolesOf(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if !ports.HasRole(roles, ports.RoleDirection) {
		return ErrActorLacksRole
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.MissionOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	digest := signature.Digest(cmd.SignatureBytes())
	imagePath := SignatureImagePath(order.ID())
	signedAt := time.Now().UTC()

	sig, err := missionorder.NewSignature(imagePath, digest, signedAt)
	if err != nil {
		return err
	}

	// Fails fast on "already signed" before anything touches the blob store.
	if err = order.ApproveWithSignature(cmd.ActorID(), sig, cmd.Comment()); err != nil {
		return err
	}

	// The atomic no-overwrite put decides races between concurrent signers:
	// the loser stops here and never uploaded anything to compensate.
	if err = h.blobs.Put(ctx, imagePath, cmd.SignatureBytes(), SignatureImageContentType, false); err != nil {
		return err
	}

	if err = h.commitSigned(ctx, uow, order, cmd, digest, signedAt); err != nil {
		_ = h.blobs.Delete(context.WithoutCancel(ctx), imagePath)
		return err
	}

	h.notifier.Notify(ctx, order.RequesterID(),
		"Mission order approved",
		"Your mission order to "+order.Destination()+" has been approved and signed.",
		"/missions/"+order.ID().String(),
	)
	return nil
}

func (h SignMissionOrderCommandHandler) commitSigned(
	ctx context.Context,
	uow OrderUoW,
	order *missionorder.MissionOrder,
	cmd SignMissionOrderCommand,
	digest string,
	signedAt time.Time,
) error {
	if err := uow.MissionOrderRepository().Update(ctx, order); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		order.ID(),
		cmd.ActorID(),
		audit.ActionApprovedWithSignature,
		digest,
		cmd.ClientContext(),
		signedAt,
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
