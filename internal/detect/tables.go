// Package detect implements the scam classification engine: category scoring,
// intelligence extraction, and authority rule validation.
package detect

import (
	"regexp"
)

// ScamCategory is one row of the static classification table.
type ScamCategory struct {
	Name       string
	Keywords   []string
	Signals    []*regexp.Regexp
	BaseWeight int
}

// scamCategories is the fixed classification table. Order matters: score ties
// are broken by declaration order, first entry wins.
var scamCategories = []ScamCategory{
	{
		Name:     "Bank / KYC / OTP Scam",
		Keywords: []string{"otp", "pin", "cvv", "kyc", "verification", "blocked", "suspended", "account will be locked", "confirm identity"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`otp.*\d+`),
			regexp.MustCompile(`pin.*\d+`),
			regexp.MustCompile(`cvv.*\d+`),
		},
		BaseWeight: 50,
	},
	{
		Name:     "Fake Government / Police Scam",
		Keywords: []string{"police", "fir", "arrest", "warrant", "income tax", "fine", "penalty", "rbi"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`case.*filed`),
			regexp.MustCompile(`arrest warrant`),
			regexp.MustCompile(`government`),
		},
		BaseWeight: 40,
	},
	{
		Name:     "UPI Refund / Collect Scam",
		Keywords: []string{"upi", "refund", "collect", "transfer", "paytm", "googlepay", "phonepe"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`upi.*@\w+`),
			regexp.MustCompile(`\d{10}@\w+`),
		},
		BaseWeight: 35,
	},
	{
		Name:     "Job / Internship Scam",
		Keywords: []string{"job", "internship", "position", "hire", "salary", "work from home", "data entry"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`rs\.?\s*\d+`),
			regexp.MustCompile(`salary.*\d+`),
		},
		BaseWeight: 30,
	},
	{
		Name:     "Investment / Crypto Scam",
		Keywords: []string{"invest", "bitcoin", "crypto", "forex", "stock", "profit", "returns", "guaranteed"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`profit.*%`),
			regexp.MustCompile(`return.*guarantee`),
		},
		BaseWeight: 40,
	},
	{
		Name:     "Phishing Link Scam",
		Keywords: []string{"click", "link", "download", "update", "verify", "confirm"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`https?://\S+`),
			regexp.MustCompile(`bit\.ly`),
			regexp.MustCompile(`tinyurl`),
		},
		BaseWeight: 45,
	},
	{
		Name:     "Delivery / Courier Scam",
		Keywords: []string{"delivery", "courier", "package", "shipment", "tracking", "customs"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`tracking.*\w+`),
			regexp.MustCompile(`shipment.*\w+`),
		},
		BaseWeight: 25,
	},
	{
		Name:       "Romance Scam",
		Keywords:   []string{"love", "sweetheart", "marriage", "relationship", "need money"},
		BaseWeight: 35,
	},
	{
		Name:     "Lottery / Prize Scam",
		Keywords: []string{"lottery", "prize", "won", "congratulations", "claim", "reward"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`won.*rs\.?\s*\d+`),
		},
		BaseWeight: 40,
	},
	{
		Name:     "Remote Access Scam",
		Keywords: []string{"teamviewer", "anydesk", "screen", "remote", "access", "control"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`teamviewer|anydesk`),
		},
		BaseWeight: 50,
	},
	{
		Name:       "Fake Customer Care Scam",
		Keywords:   []string{"customer care", "support", "amazon", "flipkart", "call", "helpline"},
		BaseWeight: 30,
	},
	{
		Name:     "Missed Call Scam",
		Keywords: []string{"missed call", "call back", "callback", "dial"},
		Signals: []*regexp.Regexp{
			regexp.MustCompile(`\+91\d{10}`),
		},
		BaseWeight: 20,
	},
	{
		Name:       "Fake Course / Certificate Scam",
		Keywords:   []string{"course", "certificate", "diploma", "training", "degree", "enroll"},
		BaseWeight: 25,
	},
}

// bankRule lists what a legitimate bank never asks for. All phrases lowercase.
type bankRule struct {
	Name          string
	NeverAsks     []string
	NeverRequests []string
}

// bankRules order fixes the claimed-authority scan order.
var bankRules = []bankRule{
	{
		Name:          "SBI",
		NeverAsks:     []string{"otp", "pin", "cvv", "password", "secret code"},
		NeverRequests: []string{"upi collect", "remote access", "teamviewer", "anydesk"},
	},
	{
		Name:          "HDFC",
		NeverAsks:     []string{"otp", "pin", "cvv", "password"},
		NeverRequests: []string{"upi collect", "remote access"},
	},
	{
		Name:          "ICICI",
		NeverAsks:     []string{"otp", "pin", "cvv"},
		NeverRequests: []string{"upi collect", "remote access"},
	},
	{
		Name:          "AXIS",
		NeverAsks:     []string{"otp", "pin", "cvv"},
		NeverRequests: []string{"upi collect"},
	},
	{
		Name:          "RBI",
		NeverAsks:     []string{"otp", "account details"},
		NeverRequests: []string{"fine payment via upi"},
	},
}

// govtRule lists what a government authority never does. Keys are multi-word
// identifiers joined by underscores; any token appearing in the text matches.
type govtRule struct {
	Key       string
	Never     []string
	NeverAsks []string
}

var govtRules = []govtRule{
	{
		Key:       "POLICE",
		Never:     []string{"arrest threats on call", "upi fine payment", "send money immediately"},
		NeverAsks: []string{"otp", "bank account"},
	},
	{
		Key:       "INCOME_TAX",
		Never:     []string{"immediate payment threats", "upi payment"},
		NeverAsks: []string{"pan pin", "social security"},
	},
	{
		Key:       "RBI_OFFICIAL",
		Never:     []string{"account verification payments"},
		NeverAsks: []string{"account password"},
	},
}
