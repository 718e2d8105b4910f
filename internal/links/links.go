// Package links builds the apply and share links for a posting.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jimezsa/govjobs/internal/models"
)

const positionBase = "https://merkava.mrp.gov.il/giusp/index.html#/position/"

// PositionURL is the submission page for a job, used for both applying and sharing.
func PositionURL(id string) string {
	return positionBase + id
}

// ShareText is the message body shared for a job.
func ShareText(job models.JobRecord) string {
	return fmt.Sprintf("Job: %s\nOffice: %s\nLocation: %s\n\nApply: %s",
		job.TenderName.String(),
		job.OfficeName.Or(models.NotSpecified),
		job.LocationName.Or(models.NotSpecified),
		PositionURL(job.ID()),
	)
}

func WhatsAppURL(job models.JobRecord) string {
	return "https://wa.me/?text=" + encodeComponent(ShareText(job))
}

func MailtoURL(job models.JobRecord) string {
	subject := "Job: " + job.TenderName.String()
	return "mailto:?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(ShareText(job))
}

// encodeComponent escapes like a URI component: spaces become %20, not +.
func encodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// Via names a share channel.
type Via string

const (
	ViaURL      Via = "url"
	ViaWhatsApp Via = "whatsapp"
	ViaEmail    Via = "email"
)

// For returns the link for the given channel.
func For(job models.JobRecord, via Via) (string, error) {
	switch via {
	case ViaURL, "":
		return PositionURL(job.ID()), nil
	case ViaWhatsApp:
		return WhatsAppURL(job), nil
	case ViaEmail:
		return MailtoURL(job), nil
	default:
		return "", fmt.Errorf("unknown share channel: %s", via)
	}
}
