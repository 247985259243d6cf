package commands

import (
	"context"
	"fmt"
	"log/slog"

	contactUseCase "github.com/allisson/phonebook/internal/contact/usecase"
)

// RunFindContact looks up a contact by ID and prints its detail block.
// A missing contact prints a message and exits cleanly; absence is a normal
// lookup outcome, not a failure.
func RunFindContact(
	ctx context.Context,
	contactService *contactUseCase.ContactService,
	logger *slog.Logger,
	rawID string,
	io IOTuple,
) error {
	id, err := parseContactID(rawID)
	if err != nil {
		return err
	}

	logger.Debug("finding contact", slog.String("contact_id", id.String()))

	output, err := contactService.FindContact(ctx, contactUseCase.FindContactRequest{ContactID: id})
	if err != nil {
		return fmt.Errorf("failed to find contact: %w", err)
	}

	if !output.Found {
		_, _ = fmt.Fprintln(io.Writer, "Contact not found")
		return nil
	}

	_, _ = fmt.Fprint(io.Writer, formatContact(output.Contact))

	return nil
}
