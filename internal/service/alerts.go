package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-mcp/internal/payload"
)

const alertTemplate = `
Event: %s
Area: %s
Severity: %s
Description: %s
Instructions: %s
`

func (s *weatherService) AlertsUS(ctx context.Context, state string) string {
	alertsURL := fmt.Sprintf("%s/alerts/active/area/%s", s.endpoints.NWSBase, url.PathEscape(state))

	doc, ok := s.client.Fetch(ctx, alertsURL)
	if !ok || len(doc) == 0 || !doc.Has("features") {
		return MsgAlertsUnavailable
	}

	// A null feature list means nothing is active.
	if doc["features"] == nil {
		return MsgNoActiveAlerts
	}

	features, ok := doc.Array("features")
	if !ok {
		log.Error().Str("state", state).Msg("alerts response has non-array 'features'")
		return MsgAlertsUnavailable
	}

	if len(features) == 0 {
		return MsgNoActiveAlerts
	}

	alerts := make([]string, 0, len(features))
	for _, feature := range features {
		alerts = append(alerts, formatAlert(feature))
	}

	return strings.Join(alerts, separator)
}

func formatAlert(feature any) string {
	obj, _ := payload.AsObject(feature)
	props, _ := obj.Object("properties")

	return fmt.Sprintf(alertTemplate,
		alertEvent.from(props),
		alertArea.from(props),
		alertSeverity.from(props),
		alertDescription.from(props),
		alertInstruction.from(props),
	)
}
