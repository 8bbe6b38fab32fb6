// Package authority maintains the catalogue of known bank and government
// authority profiles consulted during rule validation.
package authority

import (
	"github.com/scamtrap/mantis/internal/models"
)

// defaultSeeds returns the built-in authority profiles. The slice order is the
// order SeededNames reports and the order claimed-authority scans follow.
func defaultSeeds() []models.AuthorityProfile {
	return []models.AuthorityProfile{
		{
			Name:             "SBI",
			Kind:             models.KindBank,
			OfficialDomains:  []string{"sbi.co.in", "onlinesbi.sbi"},
			OfficialChannels: []string{models.ChannelSMS, models.ChannelEmail, models.ChannelApp},
			NeverAsks:        []string{"otp", "pin", "cvv", "password", "secret code"},
			NeverRequests:    []string{"upi collect", "remote access"},
		},
		{
			Name:             "HDFC",
			Kind:             models.KindBank,
			OfficialDomains:  []string{"hdfcbank.com"},
			OfficialChannels: []string{models.ChannelSMS, models.ChannelEmail, models.ChannelApp},
			NeverAsks:        []string{"otp", "pin", "cvv"},
			NeverRequests:    []string{"upi collect", "remote access"},
		},
		{
			Name:             "RBI",
			Kind:             models.KindGovt,
			OfficialDomains:  []string{"rbi.org.in"},
			OfficialChannels: []string{models.ChannelNotice, models.ChannelEmail},
			NeverAsks:        []string{"otp", "account password"},
			NeverRequests:    []string{"fine payment via upi"},
		},
		{
			Name:             "POLICE",
			Kind:             models.KindGovt,
			OfficialDomains:  []string{},
			OfficialChannels: []string{models.ChannelCall, models.ChannelNotice},
			NeverAsks:        []string{"otp", "bank account"},
			NeverRequests:    []string{"send money immediately", "upi fine payment"},
		},
	}
}
