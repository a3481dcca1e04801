package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Config holds slot-generation and booking settings for the client.
type Config struct {
	CalendarID   string
	Timezone     string
	DayStartHour int
	DayEndHour   int
	StepMinutes  int
}

// Client wraps the Google Calendar API service with free/busy lookups,
// candidate slot generation, and event booking.
type Client struct {
	service   *calendar.Service
	cfg       Config
	location  *time.Location
	busyCache *expirable.LRU[string, map[string][]BusyInterval]
}

func newClient(svc *calendar.Service, cfg Config) *Client {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Client{
		service:  svc,
		cfg:      cfg,
		location: loc,
		// FreeBusy answers barely change within a scheduling session; a
		// short TTL keeps repeated recommendation calls cheap.
		busyCache: expirable.NewLRU[string, map[string][]BusyInterval](256, nil, 5*time.Minute),
	}
}

// NewClientFromCredentialsFile creates a Calendar client from a Service
// Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, cfg Config) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, cfg)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service
// Account JSON bytes, falling back to OAuth installed-app credentials with a
// local token.json.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, cfg Config) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return newClient(svc, cfg), nil
	}

	// Fallback: OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return newClient(svc, cfg), nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP
// client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, cfg Config) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, cfg), nil
}

// Book creates a calendar event with the given attendees. Single attempt, no
// retry; callers decide whether to rerun the flow on failure.
func (c *Client) Book(ctx context.Context, req BookEventRequest) (*BookedEvent, error) {
	attendees := make([]*calendar.EventAttendee, 0, len(req.Attendees))
	for _, email := range req.Attendees {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = c.cfg.Timezone
	}

	event := &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
		Attendees:   attendees,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = c.cfg.CalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &BookedEvent{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}
