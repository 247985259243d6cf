package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/allisson/phonebook/internal/contact/domain"
	contactUseCase "github.com/allisson/phonebook/internal/contact/usecase"
	"github.com/allisson/phonebook/internal/errors"
)

// RunDeleteContact removes a contact after an interactive confirmation.
// With skipConfirmation the prompt is bypassed and the repository alone
// decides whether the contact exists, in a single atomic step.
func RunDeleteContact(
	ctx context.Context,
	contactService *contactUseCase.ContactService,
	logger *slog.Logger,
	rawID string,
	skipConfirmation bool,
	io IOTuple,
) error {
	id, err := parseContactID(rawID)
	if err != nil {
		return err
	}

	logger.Debug("deleting contact", slog.String("contact_id", id.String()))

	if !skipConfirmation {
		confirmed, err := confirmDeletion(ctx, contactService, id, io)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(io.Writer, "Deletion cancelled")
			return nil
		}
	}

	output, err := contactService.DeleteContact(ctx, contactUseCase.DeleteContactRequest{ContactID: id})
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	_, _ = fmt.Fprintf(io.Writer, "✓ %s\n", output.Message)

	logger.Info("contact deleted", slog.String("contact_id", id.String()))

	return nil
}

// confirmDeletion shows the contact to be removed and prompts for a y/N
// answer. Anything that does not start with "y" declines.
func confirmDeletion(
	ctx context.Context,
	contactService *contactUseCase.ContactService,
	id domain.ContactID,
	io IOTuple,
) (bool, error) {
	output, err := contactService.FindContact(ctx, contactUseCase.FindContactRequest{ContactID: id})
	if err != nil {
		return false, fmt.Errorf("failed to find contact: %w", err)
	}
	if !output.Found {
		return false, errors.Wrap(domain.ErrContactNotFound, fmt.Sprintf("contact %s", id))
	}

	_, _ = fmt.Fprintln(io.Writer, "Contact to delete:")
	_, _ = fmt.Fprint(io.Writer, formatContact(output.Contact))
	_, _ = fmt.Fprint(io.Writer, "Are you sure you want to delete this contact? (y/N): ")

	reader := bufio.NewReader(io.Reader)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y"), nil
}
