package commands

import (
	"context"
	"fmt"
	"log/slog"

	contactUseCase "github.com/allisson/phonebook/internal/contact/usecase"
)

// RunSearchContacts prints every contact matching a query as a table.
func RunSearchContacts(
	ctx context.Context,
	contactService *contactUseCase.ContactService,
	logger *slog.Logger,
	query string,
	io IOTuple,
) error {
	logger.Debug("searching contacts", slog.String("query", query))

	output, err := contactService.SearchContacts(ctx, contactUseCase.SearchContactsRequest{Query: query})
	if err != nil {
		return fmt.Errorf("failed to search contacts: %w", err)
	}

	_, _ = fmt.Fprintln(io.Writer, formatSearchSummary(output.Query, output.Count))

	if len(output.Contacts) > 0 {
		_, _ = fmt.Fprintln(io.Writer, formatListHeader())
		_, _ = fmt.Fprintln(io.Writer, formatSeparator())
		for _, contact := range output.Contacts {
			_, _ = fmt.Fprintln(io.Writer, formatContactCompact(contact))
		}
	}

	return nil
}
