package domain

// Trigger is the UI context that initiates ad selection.
type Trigger string

const (
	TriggerAppOpen         Trigger = "app-open"
	TriggerAuth            Trigger = "auth-interstitial"
	TriggerHomeBanner      Trigger = "home-banner"
	TriggerRewardedRequest Trigger = "rewarded-request"
)

// Valid reports whether t is one of the known triggers.
func (t Trigger) Valid() bool {
	switch t {
	case TriggerAppOpen, TriggerAuth, TriggerHomeBanner, TriggerRewardedRequest:
		return true
	}
	return false
}
