package commands

import (
	"context"
	"fmt"
	"log/slog"

	contactUseCase "github.com/allisson/phonebook/internal/contact/usecase"
)

// RunListContacts prints one sorted page of the contact set as a table.
func RunListContacts(
	ctx context.Context,
	contactService *contactUseCase.ContactService,
	logger *slog.Logger,
	page int,
	pageSize int,
	sortBy string,
	reverse bool,
	io IOTuple,
) error {
	sortField, err := contactUseCase.ParseSortBy(sortBy)
	if err != nil {
		return err
	}

	logger.Debug("listing contacts",
		slog.Int("page", page),
		slog.Int("page_size", pageSize),
		slog.String("sort_by", sortBy),
		slog.Bool("reverse", reverse),
	)

	output, err := contactService.ListContacts(ctx, contactUseCase.ListContactsRequest{
		Page:     page,
		PageSize: pageSize,
		SortBy:   sortField,
		Reverse:  reverse,
	})
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	if len(output.Contacts) == 0 {
		_, _ = fmt.Fprintln(io.Writer, "No contacts found")
		return nil
	}

	_, _ = fmt.Fprintln(io.Writer, formatListHeader())
	_, _ = fmt.Fprintln(io.Writer, formatSeparator())
	for _, contact := range output.Contacts {
		_, _ = fmt.Fprintln(io.Writer, formatContactCompact(contact))
	}
	_, _ = fmt.Fprintln(io.Writer, formatSeparator())
	_, _ = fmt.Fprintln(io.Writer, formatPaginationInfo(output.Page, output.PageSize, output.TotalCount, output.HasMore))

	return nil
}
