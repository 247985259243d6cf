package commands

import (
	"fmt"
	"strings"

	"github.com/allisson/phonebook/internal/contact/domain"
)

// formatContact renders the full detail block for a single contact.
func formatContact(contact *domain.Contact) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID: %s\n", contact.ID())
	fmt.Fprintf(&b, "Name: %s\n", contact.FullName())

	if phones := contact.PhoneNumbers(); len(phones) > 0 {
		b.WriteString("Phone Numbers:\n")
		for _, phone := range phones {
			fmt.Fprintf(&b, "  - %s\n", phone)
		}
	}

	if emails := contact.Emails(); len(emails) > 0 {
		b.WriteString("Emails:\n")
		for _, email := range emails {
			fmt.Fprintf(&b, "  - %s\n", email)
		}
	}

	if notes := contact.Notes(); notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", notes)
	}

	if tags := contact.Tags(); len(tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(tags, ", "))
	}

	return b.String()
}

// formatContactCompact renders a single table row for list and search output.
func formatContactCompact(contact *domain.Contact) string {
	phone := "No phone"
	if phones := contact.PhoneNumbers(); len(phones) > 0 {
		phone = phones[0].String()
	}

	email := "No email"
	if emails := contact.Emails(); len(emails) > 0 {
		email = emails[0].String()
	}

	return fmt.Sprintf(
		"%-8s %-25s %-15s %s",
		contact.ID().String()[:8],
		contact.FullName(),
		phone,
		email,
	)
}

// formatListHeader renders the table header matching formatContactCompact.
func formatListHeader() string {
	return fmt.Sprintf("%-8s %-25s %-15s %s", "ID", "Name", "Phone", "Email")
}

// formatSeparator renders a horizontal rule for table output.
func formatSeparator() string {
	return strings.Repeat("-", 80)
}

// formatSearchSummary renders the search result count line.
func formatSearchSummary(query string, count int) string {
	return fmt.Sprintf("Found %d contact(s) matching '%s'\n", count, query)
}

// formatPaginationInfo renders the footer line for a contact list page.
func formatPaginationInfo(page, pageSize, total int, hasMore bool) string {
	start := page*pageSize + 1
	end := min((page+1)*pageSize, total)

	info := fmt.Sprintf("Showing %d - %d of %d contacts", start, end, total)
	if hasMore {
		info += fmt.Sprintf(" (Page %d)", page+1)
	}

	return info
}

// formatStats renders the statistics output.
func formatStats(totalContacts int) string {
	return fmt.Sprintf("Total contacts: %d", totalContacts)
}
