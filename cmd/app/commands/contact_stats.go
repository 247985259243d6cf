package commands

import (
	"context"
	"fmt"
	"log/slog"

	contactUseCase "github.com/allisson/phonebook/internal/contact/usecase"
)

// RunContactStats prints aggregate statistics over the stored contact set.
func RunContactStats(
	ctx context.Context,
	contactService *contactUseCase.ContactService,
	logger *slog.Logger,
	io IOTuple,
) error {
	logger.Debug("collecting contact stats")

	output, err := contactService.ContactStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to collect contact stats: %w", err)
	}

	_, _ = fmt.Fprintln(io.Writer, formatStats(output.TotalContacts))

	return nil
}
