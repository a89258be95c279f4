package commands

import (
	"context"
	"fmt"

	"missionops/internal/core/domain/model/kernel"
	"missionops/internal/core/domain/services"
	"missionops/internal/core/ports"
)

// MissionDocumentContentType is the content type mission documents are
// stored with.
const MissionDocumentContentType = "application/pdf"

// MissionDocumentPath returns the blob path of the generated document for
// the given order. The path is a pure function of the order ID so repeated
// generations overwrite the same object.
func MissionDocumentPath(orderID kernel.UUID) string {
	return fmt.Sprintf("missions/%s.pdf", orderID)
}

// AttachMissionDocumentCommandHandler renders the mission order PDF, stores
// it and records its path on the order. The operation is idempotent: running
// it again for the same order state replaces the stored document with
// identical bytes and leaves the recorded path unchanged.
type AttachMissionDocumentCommandHandler struct {
	uowFactory OrderUoWFactory
	generator  services.DocumentGenerator
	blobs      ports.BlobStore
}

// NewAttachMissionDocumentCommandHandler creates a handler for document
// generation.
func NewAttachMissionDocumentCommandHandler(
	uowFactory OrderUoWFactory,
	generator services.DocumentGenerator,
	blobs ports.BlobStore,
) AttachMissionDocumentCommandHandler {
	return AttachMissionDocumentCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		blobs:      blobs,
	}
}

// Handle generates and attaches the document for the order.
func (h AttachMissionDocumentCommandHandler) Handle(ctx context.Context, cmd AttachMissionDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	// A fetch failure is deliberately swallowed: the document must still be
	// produced, with a placeholder where the signature image would render.
	var signatureImage []byte
	if sig := order.Signature(); sig != nil {
		signatureImage, _ = h.blobs.Get(ctx, sig.ImagePath())
	}

	document, err := h.generator.Generate(order, signatureImage)
	if err != nil {
		return err
	}

	path := MissionDocumentPath(order.ID())
	if err = h.blobs.Put(ctx, path, document, MissionDocumentContentType, true); err != nil {
		return err
	}

	if err = order.SetPdfPath(path); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
