package calendar

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"barberpro/models"

	"github.com/google/uuid"
)

// DraftDateLayout is the wire format for the wizard's calendar date.
const DraftDateLayout = "2006-01-02"

var durationPattern = regexp.MustCompile(`(\d+)\s*(min|hour|hr)`)

// Builder derives calendar events and export formats from completed bookings.
type Builder struct {
	Shop models.ShopInfo
}

// NewBuilder returns a Builder for the given shop.
func NewBuilder(shop models.ShopInfo) *Builder {
	return &Builder{Shop: shop}
}

// ParseTimeSlot parses a slot label of the form "H:MM AM|PM" into a 24-hour
// hour and minute. "12:xx AM" maps to hour 0, "12:xx PM" stays 12.
func ParseTimeSlot(slot string) (hour, minute int, err error) {
	parts := strings.Fields(strings.TrimSpace(slot))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}
	period := strings.ToUpper(parts[1])
	if period != "AM" && period != "PM" {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}
	hour, err = strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time slot %q", slot)
	}

	if period == "PM" && hour != 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}
	return hour, minute, nil
}

// ParseDuration converts a free-text duration spec like "45 min" or
// "2 hours" into minutes. Unrecognized specs default to 60 minutes.
func ParseDuration(spec string) int {
	m := durationPattern.FindStringSubmatch(spec)
	if m == nil {
		return 60
	}
	value, _ := strconv.Atoi(m[1])
	if m[2] == "hour" || m[2] == "hr" {
		return value * 60
	}
	return value
}

// CombineDateTime combines a calendar date with a slot label into a local
// wall-clock instant with seconds zeroed.
func CombineDateTime(date time.Time, slot string) (time.Time, error) {
	hour, minute, err := ParseTimeSlot(slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// BuildEvent transforms a completed booking into a normalized calendar event.
func (b *Builder) BuildEvent(svc models.Service, barber models.Barber, draft models.BookingDraft) (models.CalendarEvent, error) {
	date, err := time.ParseInLocation(DraftDateLayout, draft.Date, time.Local)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("invalid booking date %q: %w", draft.Date, err)
	}
	start, err := CombineDateTime(date, draft.Time)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	end := start.Add(time.Duration(ParseDuration(svc.Duration)) * time.Minute)

	lines := []string{
		fmt.Sprintf("Service: %s", svc.Name),
		fmt.Sprintf("Barber: %s", barber.Name),
		fmt.Sprintf("Client: %s %s", draft.FirstName, draft.LastName),
		fmt.Sprintf("Phone: %s", draft.Phone),
		fmt.Sprintf("Email: %s", draft.Email),
		fmt.Sprintf("Duration: %s", svc.Duration),
		fmt.Sprintf("Price: $%d", svc.Price),
	}
	if draft.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", draft.Notes))
	}
	lines = append(lines,
		"",
		"Please arrive 10 minutes early for your appointment.",
		"",
		fmt.Sprintf("To reschedule or cancel, please call %s at least 24 hours in advance.", b.Shop.Phone),
	)

	return models.CalendarEvent{
		Title:       fmt.Sprintf("%s - %s", svc.Name, b.Shop.Name),
		Description: strings.Join(lines, "\n"),
		Start:       start,
		End:         end,
		Location:    fmt.Sprintf("%s, %s", b.Shop.Name, b.Shop.Address),
		Attendees:   []string{draft.Email},
	}, nil
}

// GoogleCalendarURL builds a deep link to Google Calendar's event template.
func (b *Builder) GoogleCalendarURL(event models.CalendarEvent) string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", event.Title)
	params.Set("dates", fmt.Sprintf("%s/%s", formatUTCBasic(event.Start), formatUTCBasic(event.End)))
	params.Set("details", event.Description)
	params.Set("location", event.Location)
	params.Set("trp", "false")
	params.Set("sprop", "website:"+b.Shop.Domain)

	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

// OutlookCalendarURL builds a deep link to Outlook's compose page.
func (b *Builder) OutlookCalendarURL(event models.CalendarEvent) string {
	params := url.Values{}
	params.Set("subject", event.Title)
	params.Set("startdt", event.Start.UTC().Format(time.RFC3339))
	params.Set("enddt", event.End.UTC().Format(time.RFC3339))
	params.Set("body", event.Description)
	params.Set("location", event.Location)
	params.Set("allday", "false")

	return "https://outlook.live.com/calendar/0/deeplink/compose?" + params.Encode()
}

// ICSFile renders a downloadable single-event calendar file with a display
// alarm 15 minutes before start. Lines are CRLF-joined per RFC 5545.
func (b *Builder) ICSFile(event models.CalendarEvent) string {
	uid := fmt.Sprintf("%s@%s", uuid.New().String(), b.Shop.Domain)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		fmt.Sprintf("PRODID:-//%s//Appointment//EN", b.Shop.Name),
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTART:" + formatUTCBasic(event.Start),
		"DTEND:" + formatUTCBasic(event.End),
		"SUMMARY:" + event.Title,
		"DESCRIPTION:" + strings.ReplaceAll(event.Description, "\n", "\\n"),
		"LOCATION:" + event.Location,
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"BEGIN:VALARM",
		"TRIGGER:-PT15M",
		"ACTION:DISPLAY",
		"DESCRIPTION:Appointment reminder",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}

// formatUTCBasic renders an instant as UTC basic ISO, e.g. 20250610T150000Z.
func formatUTCBasic(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
