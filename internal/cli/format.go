package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/evcraddock/stayfinder/internal/booking"
	"github.com/evcraddock/stayfinder/internal/property"
	"github.com/evcraddock/stayfinder/internal/wishlist"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPropertySummary prints a single listing in text format.
func printPropertySummary(p *property.Property) {
	fmt.Printf("Property #%d\n", p.ID)
	fmt.Printf("  Title:     %s\n", p.Title)
	fmt.Printf("  Location:  %s\n", p.Location)
	fmt.Printf("  Price:     %s / night\n", formatPrice(p.PricePerNight))
	fmt.Printf("  Rating:    %s (%d reviews)\n", formatRating(p.Rating), p.ReviewCount)
	fmt.Printf("  Category:  %s\n", p.Category.Label())
	fmt.Printf("  Type:      %s\n", p.PropertyType)
	fmt.Printf("  Sleeps:    %d guests, %d bedrooms, %d bathrooms\n", p.MaxGuests, p.Bedrooms, p.Bathrooms)

	host := p.HostName
	if p.HostIsSuperhost {
		host += " (Superhost)"
	}
	fmt.Printf("  Host:      %s\n", host)
	fmt.Printf("  Check-in:  %s, check-out %s\n", p.CheckInTime, p.CheckOutTime)
	fmt.Printf("  Policy:    %s\n", p.CancellationPolicy)
	if len(p.Amenities) > 0 {
		fmt.Printf("  Amenities: %s\n", strings.Join(p.Amenities, ", "))
	}
	if p.Description != "" {
		fmt.Printf("\n  %s\n", p.Description)
	}
}

// printPropertyTable prints a list of listings as a formatted table.
func printPropertyTable(props []property.Property) error {
	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tPRICE\tRATING\tCATEGORY"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t--------\t-----\t------\t--------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range props {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, truncate(p.Title, 32), truncate(p.Location, 30),
			formatPrice(p.PricePerNight), formatRating(p.Rating), p.Category.Label()); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d properties\n", len(props))
	return nil
}

// printWishlist prints saved listings in text format.
func printWishlist(items []wishlist.Item) {
	if len(items) == 0 {
		fmt.Println("Wishlist is empty.")
		return
	}

	for _, it := range items {
		fmt.Printf("[%s] property #%d (item #%d)\n",
			it.CreatedAt.Format("2006-01-02 15:04"), it.PropertyID, it.ID)
	}
}

// printBookings prints reservations as a table.
func printBookings(list []booking.Booking) error {
	if len(list) == 0 {
		fmt.Println("No bookings.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tPROPERTY\tCHECK-IN\tCHECK-OUT\tTOTAL"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, b := range list {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			b.ID, b.PropertyID, b.CheckInDate, b.CheckOutDate,
			formatPrice(fmt.Sprintf("%.2f", b.TotalPrice))); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	return w.Flush()
}

// formatPrice formats a decimal dollar string with a currency sign and
// thousands separators, dropping a zero cents part.
func formatPrice(amount string) string {
	whole, cents, _ := strings.Cut(strings.TrimSpace(amount), ".")
	if whole == "" {
		return "-"
	}

	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	s := "$" + strings.Join(parts, ",")
	if strings.Trim(cents, "0") != "" {
		s += "." + cents
	}
	return s
}

// formatRating returns a star and the rating, or "new" for unrated listings.
func formatRating(rating *string) string {
	if rating == nil || *rating == "" {
		return "new"
	}
	return "★ " + *rating
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
