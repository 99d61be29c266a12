package telemetry

import (
	"net/url"
	"testing"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/qrmenu/pkg/config"
)

func TestScrubEvent_DropsSessionCookie(t *testing.T) {
	event := &sentry.Event{Request: &sentry.Request{
		URL:     "https://menu.example.com/api/editor",
		Cookies: "qrmenu_session=MTcwMDAwMDAwMHxabc",
		Headers: map[string]string{"Cookie": "qrmenu_session=MTcwMDAwMDAwMHxabc", "Host": "menu.example.com"},
	}}

	got := scrubEvent(event, nil)

	if got.Request.Cookies != "" {
		t.Errorf("expected cookies to be dropped, got %q", got.Request.Cookies)
	}
	if _, ok := got.Request.Headers["Cookie"]; ok {
		t.Error("expected Cookie header to be dropped")
	}
	if got.Request.Headers["Host"] != "menu.example.com" {
		t.Error("expected other headers to be kept")
	}
}

func TestScrubEvent_CollapsesInlineMenu(t *testing.T) {
	payload := `{"restaurantName":"Joe's","items":[{"id":"1","name":"Tea","price":2,"category":"beverages"}]}`
	event := &sentry.Event{Request: &sentry.Request{
		URL:         "https://menu.example.com/menu",
		QueryString: url.Values{"data": {payload}, "table": {"4"}}.Encode(),
	}}

	got := scrubEvent(event, nil)

	q, err := url.ParseQuery(got.Request.QueryString)
	if err != nil {
		t.Fatalf("scrubbed query string does not parse: %v", err)
	}
	if q.Get("data") != inlineMenuPlaceholder {
		t.Errorf("expected data placeholder, got %q", q.Get("data"))
	}
	if q.Get("table") != "4" {
		t.Errorf("expected unrelated params to be kept, got %q", q.Get("table"))
	}
}

func TestScrubEvent_KeepsIDLinksAndEventsWithoutRequest(t *testing.T) {
	event := &sentry.Event{Request: &sentry.Request{QueryString: "id=menu_1709294400000_a1b2c3d4e"}}
	if got := scrubEvent(event, nil); got.Request.QueryString != "id=menu_1709294400000_a1b2c3d4e" {
		t.Errorf("expected id link untouched, got %q", got.Request.QueryString)
	}

	bare := &sentry.Event{Message: "startup"}
	if scrubEvent(bare, nil) != bare {
		t.Error("expected events without a request to pass through")
	}
}

func TestSetupSentry_EmptyDSNIsNoop(t *testing.T) {
	if err := SetupSentry(&config.Config{}); err != nil {
		t.Fatalf("expected no error without a DSN, got %v", err)
	}
}
