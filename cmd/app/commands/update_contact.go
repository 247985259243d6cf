package commands

import (
	"context"
	"fmt"
	"log/slog"

	contactUseCase "github.com/allisson/phonebook/internal/contact/usecase"
)

// UpdateContactOptions carries the raw CLI input for a partial contact
// update. Nil pointer fields were not provided and leave the stored value
// untouched.
type UpdateContactOptions struct {
	ID           string
	FirstName    *string
	LastName     *string
	Notes        *string
	AddPhones    []string
	RemovePhones []string
	AddEmails    []string
	RemoveEmails []string
	AddTags      []string
	RemoveTags   []string
}

// RunUpdateContact applies a partial update to an existing contact.
// All raw values are validated before the service is called.
func RunUpdateContact(
	ctx context.Context,
	contactService *contactUseCase.ContactService,
	logger *slog.Logger,
	opts UpdateContactOptions,
	io IOTuple,
) error {
	id, err := parseContactID(opts.ID)
	if err != nil {
		return err
	}

	logger.Debug("updating contact", slog.String("contact_id", id.String()))

	addPhones, err := parsePhoneNumbers(opts.AddPhones)
	if err != nil {
		return err
	}
	removePhones, err := parsePhoneNumbers(opts.RemovePhones)
	if err != nil {
		return err
	}

	addEmails, err := parseEmails(opts.AddEmails)
	if err != nil {
		return err
	}
	removeEmails, err := parseEmails(opts.RemoveEmails)
	if err != nil {
		return err
	}

	output, err := contactService.UpdateContact(ctx, contactUseCase.UpdateContactRequest{
		ContactID:          id,
		FirstName:          opts.FirstName,
		LastName:           opts.LastName,
		Notes:              opts.Notes,
		AddPhoneNumbers:    addPhones,
		RemovePhoneNumbers: removePhones,
		AddEmails:          addEmails,
		RemoveEmails:       removeEmails,
		AddTags:            opts.AddTags,
		RemoveTags:         opts.RemoveTags,
	})
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	_, _ = fmt.Fprintf(io.Writer, "✓ %s\n", output.Message)

	logger.Info("contact updated", slog.String("contact_id", id.String()))

	return nil
}
