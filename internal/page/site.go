package page

import "time"

const PrivacyPolicy = "Zásady ochrany súkromia:\n\n" +
	"Vaše osobné údaje budú použité len na účely spracovania vašej rezervácie. " +
	"Nebudú poskytnuté tretím stranám bez vášho súhlasu."

type Site struct {
	Year          int    `json:"year"`
	PrivacyPolicy string `json:"privacyPolicy"`
}

func NewSite(now time.Time) Site {
	return Site{Year: now.Year(), PrivacyPolicy: PrivacyPolicy}
}
