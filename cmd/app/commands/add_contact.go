package commands

import (
	"context"
	"fmt"
	"log/slog"

	contactUseCase "github.com/allisson/phonebook/internal/contact/usecase"
)

// RunAddContact creates a new contact from raw CLI input.
// Phone numbers and emails are validated before the service is called, so a
// single bad value rejects the whole command without touching storage.
func RunAddContact(
	ctx context.Context,
	contactService *contactUseCase.ContactService,
	logger *slog.Logger,
	firstName string,
	lastName string,
	phones []string,
	emails []string,
	notes string,
	tags []string,
	io IOTuple,
) error {
	logger.Debug("adding new contact", slog.String("first_name", firstName), slog.String("last_name", lastName))

	phoneNumbers, err := parsePhoneNumbers(phones)
	if err != nil {
		return err
	}

	emailAddresses, err := parseEmails(emails)
	if err != nil {
		return err
	}

	output, err := contactService.AddContact(ctx, contactUseCase.AddContactRequest{
		FirstName:    firstName,
		LastName:     lastName,
		PhoneNumbers: phoneNumbers,
		Emails:       emailAddresses,
		Notes:        notes,
		Tags:         tags,
	})
	if err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}

	_, _ = fmt.Fprintf(io.Writer, "✓ %s\n", output.Message)
	_, _ = fmt.Fprintf(io.Writer, "Contact ID: %s\n", output.ContactID)

	logger.Info("contact added", slog.String("contact_id", output.ContactID.String()))

	return nil
}
